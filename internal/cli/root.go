// Package cli wires the application state to the cobra command tree and
// the bubbletea TUI.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexvidal/xptrack/internal/app"
	"github.com/alexvidal/xptrack/internal/dateutil"
	"github.com/alexvidal/xptrack/internal/i18n"
)

// App bundles everything commands need: the initialized application state
// plus the translation bundle for the active language.
type App struct {
	State *app.App

	// IsInteractive reports whether stdin is a terminal; the bare
	// invocation opens the TUI only when it is.
	IsInteractive func() bool

	bundle *i18n.Bundle
}

// Bundle returns the translation bundle for the active language,
// reloading it when the language has changed.
func (a *App) Bundle() *i18n.Bundle {
	if a.bundle == nil || a.bundle.Language() != a.State.Language() {
		a.bundle = i18n.MustLoad(a.State.Language())
	}
	return a.bundle
}

// T translates a message key in the active language.
func (a *App) T(key string, params ...map[string]any) string {
	return a.Bundle().T(key, params...)
}

// Today returns the current date key.
func (a *App) Today() string {
	return dateutil.DateKey(a.State.Now())
}

// NewRootCmd creates the top-level "xptrack" command and registers all
// subcommands against the provided App. A bare invocation on a terminal
// opens the TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "xptrack",
		Short: "Personal tracker for tasks, habits, budgets and notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newHomeCmd(app),
		newTaskCmd(app),
		newHabitCmd(app),
		newBudgetCmd(app),
		newNoteCmd(app),
		newDataCmd(app),
		newLangCmd(app),
		newThemeCmd(app),
		newTUICmd(app),
	)

	return root
}
