package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexvidal/xptrack/internal/cli/formatter"
	"github.com/alexvidal/xptrack/internal/view"
)

func newHomeCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the day at a glance",
		RunE: func(cmd *cobra.Command, args []string) error {
			home := view.HomeScreen(a.State.Tasks(), a.State.Habits(), a.State.Budgets(), a.State.Notes(), a.State.Now())
			fmt.Fprintln(cmd.OutOrStdout(),
				formatter.FormatHome(home, a.Today(), a.State.Now(), a.State.VisitCount(), a.Bundle()))
			return nil
		},
	}
}
