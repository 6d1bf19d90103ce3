package ui

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/schedule"
)

func (a *App) updateCmd() *cobra.Command {
	var (
		day      string
		start    string
		newDay   string
		newStart string
		newEnd   string
		location string
	)

	cmd := &cobra.Command{
		Use:   "update [course]",
		Short: "Edit a class session",
		Long: `Edit the day, times or location of a class session.

Fields that are not given keep their current value. The edited session must
pass the same checks as a new one; overlaps are reported but allowed.`,
		Example: `  classgrid update "CS101" --day=monday --start=09:30 --set-start=10:00 --set-end=11:00`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			old, err := a.findEntry(args[0], day, start)
			if err != nil {
				return err
			}

			next, err := schedule.NewEntry(
				old.Name,
				valueOr(newDay, string(old.Day)),
				valueOr(newStart, old.TimeStart),
				valueOr(newEnd, old.TimeEnd),
				valueOr(location, old.Location),
			)
			if err != nil {
				return err
			}

			res, err := a.repo.Update(old.Key(), next)
			if err != nil {
				return err
			}
			if res.Duplicates > 0 {
				fmt.Fprintf(a.out, "%s %s already has a session at %s %s; nothing changed\n",
					formatWarning("Not updated:"), next.Name, next.Day, next.TimeStart)
				return nil
			}
			if err := a.save(cmd.Context()); err != nil {
				return err
			}

			a.logger.Info("updated entry",
				zap.Stringer("from", old.Key()),
				zap.Stringer("to", next.Key()),
				zap.Int("conflicts", len(res.Warning.Conflicts)),
			)
			fmt.Fprintf(a.out, "%s %s\n", formatSuccess("Updated"), formatEntry(next))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Current day of the session (required)")
	cmd.Flags().StringVar(&start, "start", "", "Current start time of the session (required)")
	cmd.Flags().StringVar(&newDay, "set-day", "", "New day")
	cmd.Flags().StringVar(&newStart, "set-start", "", "New start time")
	cmd.Flags().StringVar(&newEnd, "set-end", "", "New end time")
	cmd.Flags().StringVar(&location, "set-location", "", "New location")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func (a *App) moveCmd() *cobra.Command {
	var (
		day    string
		start  string
		toDay  string
		toSlot string
	)

	cmd := &cobra.Command{
		Use:   "move [course]",
		Short: "Move a class session to another grid cell",
		Long: `Move a class session to another cell of the week grid.

A moved session always fills exactly one slot: its end time becomes one
hour after the slot start. Slots start at 08:30, 09:30, ... 17:30.`,
		Example: `  classgrid move "Phys1" --day=tuesday --start=09:30 --to-day=wednesday --to-slot=13:30`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.findEntry(args[0], day, start)
			if err != nil {
				return err
			}

			d, err := schedule.NormalizeDay(toDay)
			if err != nil {
				return err
			}
			slot, err := schedule.NormalizeTime(toSlot)
			if err != nil {
				return fmt.Errorf("slot: %w", err)
			}

			res, err := grid.Move(a.repo, e, d, slot)
			if err != nil {
				return err
			}
			if res.Duplicates > 0 {
				fmt.Fprintf(a.out, "%s %s already has a session at %s %s; nothing changed\n",
					formatWarning("Not moved:"), e.Name, d, slot)
				return nil
			}
			if res.Committed == 0 {
				fmt.Fprintln(a.out, "Session is already in that cell")
				return nil
			}
			if err := a.save(cmd.Context()); err != nil {
				return err
			}

			moved, _ := grid.Candidate(e, d, slot)
			a.logger.Info("moved entry",
				zap.Stringer("from", e.Key()),
				zap.Stringer("to", moved.Key()),
				zap.Int("conflicts", len(res.Warning.Conflicts)),
			)
			fmt.Fprintf(a.out, "%s %s\n", formatSuccess("Moved"), formatEntry(moved))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Current day of the session (required)")
	cmd.Flags().StringVar(&start, "start", "", "Current start time of the session (required)")
	cmd.Flags().StringVar(&toDay, "to-day", "", "Target day (required)")
	cmd.Flags().StringVar(&toSlot, "to-slot", "", "Target slot start time (required)")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("to-day")
	_ = cmd.MarkFlagRequired("to-slot")

	return cmd
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
