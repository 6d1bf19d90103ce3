package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/classgrid/internal/dateutil"
	"github.com/javiermolinar/classgrid/internal/export"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		format    string
		output    string
		week      string
		toClipbrd bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the timetable as JSON or iCalendar",
		Long: `Export the timetable.

JSON output can be imported again with 'classgrid import'. iCalendar output
holds one event per session for a single week, by default the current one.`,
		Example: `  classgrid export --format=json --output=timetable.json
  classgrid export --format=ics --week=2026-03-02 --output=week.ics
  classgrid export --clipboard`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			var buf bytes.Buffer
			count := a.repo.Len()

			switch format {
			case "json":
				if err := export.WriteJSON(&buf, a.repo.Entries()); err != nil {
					return err
				}
			case "ics":
				weekOf, err := dateutil.ParseWeekOf(week, time.Now())
				if err != nil {
					return fmt.Errorf("invalid week %q: %w", week, err)
				}
				n, err := export.WriteICS(&buf, a.repo.Entries(), weekOf)
				if err != nil {
					return err
				}
				if skipped := count - n; skipped > 0 {
					fmt.Fprintln(os.Stderr, formatWarning(fmt.Sprintf("Skipped %d sessions outside Monday-Friday or with invalid times", skipped)))
				}
				count = n
			default:
				return fmt.Errorf("unknown format %q (want json or ics)", format)
			}

			a.logger.Info("exported timetable",
				zap.String("format", format),
				zap.Int("entries", count),
				zap.String("output", output),
			)

			switch {
			case toClipbrd:
				if err := clipboard.WriteAll(buf.String()); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintf(a.out, "Copied %d sessions to the clipboard\n", count)
			case output != "" && output != "-":
				if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", output, err)
				}
				fmt.Fprintf(a.out, "Exported %d sessions to %s\n", count, output)
			default:
				if _, err := io.Copy(a.out, &buf); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or ics")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&week, "week", "", "Week for ics: a date (YYYY-MM-DD), this-week, next-week or last-week")
	cmd.Flags().BoolVar(&toClipbrd, "clipboard", false, "Copy the output to the clipboard")
	return cmd
}
