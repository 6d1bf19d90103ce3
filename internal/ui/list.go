package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List class sessions grouped by course",
		Long: `List every class session, grouped by course in the order courses were
first added. Sessions overlapping another session are flagged.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			groups := a.repo.GroupByCourse()
			if len(groups) == 0 {
				fmt.Fprintln(a.out, "No class sessions yet.")
				return nil
			}
			a.printGroups(a.out, groups)
			return nil
		},
	}
}

func (a *App) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "search [query]",
		Short:   "Find courses by name",
		Long:    `List the courses whose name contains the query, ignoring case.`,
		Example: `  classgrid search cs`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			groups := a.repo.Search(args[0])
			if len(groups) == 0 {
				fmt.Fprintf(a.out, "No courses match %q.\n", args[0])
				return nil
			}
			a.printGroups(a.out, groups)
			return nil
		},
	}
}
