package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexvidal/xptrack/internal/cli/formatter"
	"github.com/alexvidal/xptrack/internal/dateutil"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// promptForInput reports whether a create command should fall back to an
// interactive form: the keystone flag was not given and stdin is a terminal.
func promptForInput(cmd *cobra.Command, a *App, flag string) bool {
	return !cmd.Flags().Changed(flag) && a.IsInteractive != nil && a.IsInteractive()
}

// runForm runs a standalone form and reports whether it completed. Aborting
// with esc is not an error.
func runForm(f *huh.Form) (bool, error) {
	if err := f.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("running form: %w", err)
	}
	return true, nil
}

// xptrackHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func xptrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequired rejects empty strings with a localized message.
func validateRequired(state *SharedState) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New(state.T("form.err_required"))
		}
		return nil
	}
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(state *SharedState) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		if _, err := time.Parse(dateutil.LayoutKey, s); err != nil {
			return errors.New(state.T("form.err_date"))
		}
		return nil
	}
}

// validateAmount accepts empty or a non-negative decimal number.
func validateAmount(state *SharedState) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return errors.New(state.T("form.err_amount"))
		}
		return nil
	}
}

// parseAmount converts a validated amount string, empty meaning zero.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// taskFormValues backs the task create/edit form fields.
type taskFormValues struct {
	Title       string
	Description string
	Due         string
	Priority    string
	Tags        string
	Subtasks    string
}

// taskForm builds the create/edit form for a task.
func taskForm(state *SharedState, vals *taskFormValues) *huh.Form {
	if vals.Priority == "" {
		vals.Priority = string(domain.PriorityMedium)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(state.T("form.title")).
				Value(&vals.Title).
				Validate(validateRequired(state)),
			huh.NewInput().
				Title(state.T("form.description")).
				Value(&vals.Description),
			huh.NewInput().
				Title(state.T("form.due")).
				Placeholder(dateutil.DateKey(state.App.State.Now())).
				Value(&vals.Due).
				Validate(validateOptionalDate(state)),
			huh.NewSelect[string]().
				Title(state.T("form.priority")).
				Options(
					huh.NewOption(state.T("tasks.priority.low"), string(domain.PriorityLow)),
					huh.NewOption(state.T("tasks.priority.medium"), string(domain.PriorityMedium)),
					huh.NewOption(state.T("tasks.priority.high"), string(domain.PriorityHigh)),
				).
				Value(&vals.Priority),
			huh.NewInput().
				Title(state.T("form.tags")).
				Value(&vals.Tags),
			huh.NewText().
				Title(state.T("form.subtasks")).
				Value(&vals.Subtasks),
		),
	).WithTheme(xptrackHuhTheme()).WithShowHelp(false)
}

// habitFormValues backs the habit create form fields.
type habitFormValues struct {
	Title       string
	Description string
	Color       string
}

// habitForm builds the create form for a custom habit.
func habitForm(state *SharedState, vals *habitFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(state.T("form.title")).
				Value(&vals.Title).
				Validate(validateRequired(state)),
			huh.NewInput().
				Title(state.T("form.description")).
				Value(&vals.Description),
			huh.NewInput().
				Title(state.T("form.color")).
				Placeholder("#00ff88").
				Value(&vals.Color),
		),
	).WithTheme(xptrackHuhTheme()).WithShowHelp(false)
}

// budgetFormValues backs the budget create form fields.
type budgetFormValues struct {
	Name     string
	Currency string
}

func budgetForm(state *SharedState, vals *budgetFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(state.T("form.name")).
				Value(&vals.Name).
				Validate(validateRequired(state)),
			huh.NewInput().
				Title(state.T("form.currency")).
				Placeholder("USD").
				Value(&vals.Currency),
		),
	).WithTheme(xptrackHuhTheme()).WithShowHelp(false)
}

// budgetItemFormValues backs the budget line item form fields.
type budgetItemFormValues struct {
	Title  string
	Amount string
	Notes  string
}

func budgetItemForm(state *SharedState, vals *budgetItemFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(state.T("form.title")).
				Value(&vals.Title).
				Validate(validateRequired(state)),
			huh.NewInput().
				Title(state.T("form.amount")).
				Placeholder("0.00").
				Value(&vals.Amount).
				Validate(validateAmount(state)),
			huh.NewInput().
				Title(state.T("form.notes")).
				Value(&vals.Notes),
		),
	).WithTheme(xptrackHuhTheme()).WithShowHelp(false)
}

// transactionFormValues backs the transaction form fields.
type transactionFormValues struct {
	Description string
	Amount      string
}

func transactionForm(state *SharedState, vals *transactionFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(state.T("form.description")).
				Value(&vals.Description).
				Validate(validateRequired(state)),
			huh.NewInput().
				Title(state.T("form.amount")).
				Placeholder("0.00").
				Value(&vals.Amount).
				Validate(validateAmount(state)),
		),
	).WithTheme(xptrackHuhTheme()).WithShowHelp(false)
}

// noteFormValues backs the note create/edit form fields.
type noteFormValues struct {
	Title string
	Body  string
	Tags  string
}

func noteForm(state *SharedState, vals *noteFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(state.T("form.title")).
				Value(&vals.Title).
				Validate(validateRequired(state)),
			huh.NewText().
				Title(state.T("form.body")).
				Value(&vals.Body),
			huh.NewInput().
				Title(state.T("form.tags")).
				Value(&vals.Tags),
		),
	).WithTheme(xptrackHuhTheme()).WithShowHelp(false)
}

// confirmForm builds a yes/no confirmation.
func confirmForm(state *SharedState, title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative(state.T("common.yes")).
				Negative(state.T("common.no")).
				Value(result),
		),
	).WithTheme(xptrackHuhTheme()).WithShowHelp(false)
}
