package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexvidal/xptrack/internal/app"
	"github.com/alexvidal/xptrack/internal/cli/formatter"
	"github.com/alexvidal/xptrack/internal/view"
)

func newHabitCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage daily habits",
	}

	cmd.AddCommand(
		newHabitAddCmd(a),
		newHabitListCmd(a),
		newHabitToggleCmd(a),
		newHabitRemoveCmd(a),
		newHabitTemplatesCmd(a),
		newHabitAdoptCmd(a),
	)

	return cmd
}

func newHabitAddCmd(a *App) *cobra.Command {
	var title, description, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new habit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if promptForInput(cmd, a, "title") {
				vals := habitFormValues{Title: title, Description: description, Color: color}
				done, err := runForm(habitForm(&SharedState{App: a}, &vals))
				if err != nil || !done {
					return err
				}
				title, description, color = vals.Title, vals.Description, vals.Color
			}
			habit, err := a.State.CreateHabit(cmd.Context(), app.HabitInput{
				Title: title, Description: description, Color: color,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.T("habits.created", map[string]any{"title": habit.Title}))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Habit title")
	cmd.Flags().StringVar(&description, "desc", "", "Habit description")
	cmd.Flags().StringVar(&color, "color", "#00ff88", "Accent color (hex)")

	return cmd
}

func newHabitListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the habit board for the last 7 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			board := view.Habits(a.State.Habits(), a.State.Now())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHabitBoard(board, a.Bundle()))
			return nil
		},
	}
}

func newHabitToggleCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle REF",
		Short: "Toggle today's record for a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			habitID, err := resolveHabitID(a, args[0])
			if err != nil {
				return err
			}
			a.State.ToggleHabit(cmd.Context(), habitID)
			for _, h := range a.State.Habits() {
				if h.ID == habitID {
					fmt.Fprintln(cmd.OutOrStdout(),
						a.T("habits.streak", map[string]any{"count": h.Streak}))
					break
				}
			}
			return nil
		},
	}
}

func newHabitRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REF",
		Short: "Delete a habit and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			habitID, err := resolveHabitID(a, args[0])
			if err != nil {
				return err
			}
			a.State.DeleteHabit(cmd.Context(), habitID)
			fmt.Fprintln(cmd.OutOrStdout(), a.T("habits.deleted"))
			return nil
		},
	}
}

func newHabitTemplatesCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the suggested habit catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, tpl := range app.HabitTemplates {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s  %s\n",
					i+1, formatter.PadRight(tpl.Title, 34), formatter.Dim(tpl.Description))
			}
			return nil
		},
	}
}

func newHabitAdoptCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "adopt N",
		Short: "Adopt a habit from the catalog by number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(app.HabitTemplates) {
				return fmt.Errorf("catalog number must be 1-%d", len(app.HabitTemplates))
			}
			habit, err := a.State.CreateHabitFromTemplate(cmd.Context(), n-1)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.T("habits.created", map[string]any{"title": habit.Title}))
			return nil
		},
	}
}
