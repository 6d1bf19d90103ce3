package ui

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/classgrid/internal/schedule"
)

func (a *App) addCmd() *cobra.Command {
	var (
		day      string
		start    string
		end      string
		location string
	)

	cmd := &cobra.Command{
		Use:   "add [course]",
		Short: "Add a class session",
		Long: `Add a class session to the timetable.

Times must fall between 08:30 and 17:30 on a 30-minute boundary, and a
session may last at most one hour. Adding a session that overlaps another is
allowed; the overlap is reported as a warning.`,
		Example: `  classgrid add "CS101" --day=monday --start=9:30 --end=10:30 --location="Room A"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := schedule.NewEntry(args[0], day, start, end, location)
			if err != nil {
				return err
			}

			res, err := a.repo.Add(e)
			if err != nil {
				return err
			}
			if res.Duplicates > 0 {
				fmt.Fprintf(a.out, "%s already scheduled on %s at %s\n", e.Name, e.Day, e.TimeStart)
				return nil
			}

			if err := a.save(cmd.Context()); err != nil {
				return err
			}
			a.logger.Info("added entry", zap.Stringer("key", e.Key()))
			fmt.Fprintf(a.out, "%s %s\n", formatSuccess("Added"), formatEntry(e))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day of the week (Monday-Friday, required)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")
	cmd.Flags().StringVar(&location, "location", "", "Room or location")

	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
