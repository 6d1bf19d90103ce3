package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/classgrid/internal/schedule"
)

func (a *App) removeCmd() *cobra.Command {
	var (
		day   string
		start string
	)

	cmd := &cobra.Command{
		Use:     "remove [course]",
		Short:   "Remove one class session",
		Example: `  classgrid remove "CS101" --day=monday --start=09:30`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.findEntry(args[0], day, start)
			if err != nil {
				return err
			}
			a.repo.RemoveOne(e.Key())

			if err := a.save(cmd.Context()); err != nil {
				return err
			}
			a.logger.Info("removed entry", zap.Stringer("key", e.Key()))
			fmt.Fprintf(a.out, "Removed %s\n", formatEntry(e))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day of the session (required)")
	cmd.Flags().StringVar(&start, "start", "", "Start time of the session (required)")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func (a *App) removeCourseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove-course [course]",
		Short:   "Remove every session of a course",
		Example: `  classgrid remove-course "CS101"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.repo.RemoveByCourse(args[0])
			if n == 0 {
				return fmt.Errorf("no sessions of %q: %w", args[0], schedule.ErrEntryNotFound)
			}
			if err := a.save(cmd.Context()); err != nil {
				return err
			}
			a.logger.Info("removed course", zap.String("name", args[0]), zap.Int("sessions", n))
			fmt.Fprintf(a.out, "Removed %d sessions of %s\n", n, formatCourse(args[0]))
			return nil
		},
	}
}

func (a *App) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every session from the timetable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := a.repo.Len()
			a.repo.Clear()
			if err := a.save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Cleared %d sessions\n", n)
			return nil
		},
	}
}

// findEntry looks an entry up by name, day and start. Day and start are
// normalized first; if that finds nothing the raw values are tried, since
// imported entries are stored as read.
func (a *App) findEntry(name, day, start string) (schedule.Entry, error) {
	raw := schedule.Key{
		Name:      name,
		Day:       schedule.Day(strings.TrimSpace(day)),
		TimeStart: strings.TrimSpace(start),
	}
	key := raw
	if d, err := schedule.NormalizeDay(day); err == nil {
		key.Day = d
	}
	if s, err := schedule.NormalizeTime(start); err == nil {
		key.TimeStart = s
	}

	for _, k := range []schedule.Key{key, raw} {
		if e, ok := a.repo.Get(k); ok {
			return e, nil
		}
	}
	return schedule.Entry{}, fmt.Errorf("%s: %w", key, schedule.ErrEntryNotFound)
}
