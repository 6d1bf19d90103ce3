package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/classgrid/internal/export"
	"github.com/javiermolinar/classgrid/internal/ingest"
	"github.com/javiermolinar/classgrid/internal/schedule"
)

func (a *App) importCmd() *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import class sessions from a spreadsheet or JSON export",
		Long: `Import class sessions into the timetable.

Spreadsheets (.xlsx, .csv) must follow the room occupancy layout: row 2
holds the day of each column, row 3 its time range, column 1 the room, and
course names start at row 4, column 5. JSON files written by
'classgrid export --format=json' are imported as-is.

Sessions already in the timetable are skipped. Overlaps are reported.`,
		Example: `  classgrid import rooms.xlsx --sheet="Week 3"
  classgrid import timetable.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			if sheet == "" {
				sheet = a.config.Import.Sheet
			}

			res, err := a.importFile(path, sheet)
			if err != nil {
				return err
			}
			if err := a.save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Imported %d sessions from %s\n", res.Committed, filepath.Base(path))
			if res.Duplicates > 0 {
				fmt.Fprintln(a.out, formatMuted(fmt.Sprintf("Skipped %d already scheduled", res.Duplicates)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name for .xlsx files (default: first sheet)")
	return cmd
}

func (a *App) importFile(path, sheet string) (schedule.Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		s, err := ingest.ReadXLSX(path, sheet)
		if err != nil {
			return schedule.Result{}, err
		}
		return ingest.NewImporter(a.repo, a.logger).Import(s), nil

	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return schedule.Result{}, fmt.Errorf("opening %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()

		s, err := ingest.ReadCSV(f)
		if err != nil {
			return schedule.Result{}, err
		}
		return ingest.NewImporter(a.repo, a.logger).Import(s), nil

	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return schedule.Result{}, fmt.Errorf("opening %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()

		entries, err := export.ReadJSON(f)
		if err != nil {
			return schedule.Result{}, err
		}
		res := a.repo.AddMany(entries)
		a.logger.Info("imported json",
			zap.String("path", path),
			zap.Int("read", len(entries)),
			zap.Int("committed", res.Committed),
			zap.Int("duplicates", res.Duplicates),
		)
		return res, nil

	default:
		return schedule.Result{}, fmt.Errorf("unsupported file type %q (want .xlsx, .csv or .json)", filepath.Ext(path))
	}
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
