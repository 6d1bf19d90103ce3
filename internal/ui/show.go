package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/summary"
	"github.com/javiermolinar/classgrid/internal/tui"
	"github.com/javiermolinar/classgrid/internal/tui/theme"
)

func (a *App) showCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the week grid",
		Long: `Print the timetable as a Monday-Friday grid of one-hour slots.

Cells holding overlapping sessions are marked with "!". Sessions that do not
start on a slot of a weekday are listed below the grid.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if a.config.UI.NoColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			if width <= 0 {
				width = termWidth()
			}

			g := grid.Build(a.repo.Entries())
			fmt.Fprintln(a.out, tui.RenderWeek(g, tui.TableOptions{
				Width:  width,
				Styles: tui.NewStyles(theme.MustLoad(a.config.UI.Theme)),
			}))

			fmt.Fprintln(a.out, formatMuted(summary.Summarize(a.repo.Entries()).String()))
			if n := len(g.Clashes()); n > 0 {
				fmt.Fprintln(a.out, formatWarning(fmt.Sprintf("%d cells hold overlapping sessions", n)))
			}
			if unplaced := g.Unplaced(); len(unplaced) > 0 {
				fmt.Fprintf(a.out, "\n%s\n", formatHeader("Outside the grid"))
				for _, e := range unplaced {
					fmt.Fprintf(a.out, "  %s\n", formatEntry(e))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Table width (default: terminal width)")
	return cmd
}
