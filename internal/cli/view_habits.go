package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexvidal/xptrack/internal/app"
	"github.com/alexvidal/xptrack/internal/cli/formatter"
	"github.com/alexvidal/xptrack/internal/view"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// habitsView shows the 7-day habit board with a movable cursor.
type habitsView struct {
	state  *SharedState
	cursor int
}

func newHabitsView(state *SharedState) *habitsView {
	return &habitsView{state: state}
}

func (v *habitsView) ID() ViewID    { return ViewHabits }
func (v *habitsView) Title() string { return v.state.T("habits.title") }

func (v *habitsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "✔")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "+")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "☰")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "✗")),
	}
}

func (v *habitsView) Init() tea.Cmd { return nil }

func (v *habitsView) board() view.HabitBoard {
	st := v.state.App.State
	return view.Habits(st.Habits(), st.Now())
}

func (v *habitsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		if n := len(v.state.App.State.Habits()); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *habitsView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	st := v.state.App.State
	habits := st.Habits()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}

	case "down", "j":
		if v.cursor < len(habits)-1 {
			v.cursor++
		}

	case " ":
		if v.cursor < len(habits) {
			st.ToggleHabit(ctx, habits[v.cursor].ID)
			return v, refreshViews()
		}

	case "a":
		vals := &habitFormValues{}
		return v, startFormCmd(v.state, v.Title(), habitForm(v.state, vals), func() tea.Cmd {
			_, err := st.CreateHabit(ctx, app.HabitInput{
				Title:       vals.Title,
				Description: vals.Description,
				Color:       vals.Color,
			})
			if err != nil {
				return toast(formatter.StyleRed.Render(err.Error()))
			}
			return toast(v.state.T("habits.created", map[string]any{"title": vals.Title}))
		})

	case "c":
		var picked int
		return v, startFormCmd(v.state, v.Title(), v.templateForm(&picked), func() tea.Cmd {
			h, err := st.CreateHabitFromTemplate(ctx, picked)
			if err != nil {
				return toast(formatter.StyleRed.Render(err.Error()))
			}
			return toast(v.state.T("habits.created", map[string]any{"title": h.Title}))
		})

	case "d":
		if v.cursor < len(habits) {
			st.DeleteHabit(ctx, habits[v.cursor].ID)
			return v, tea.Batch(refreshViews(), toast(v.state.T("habits.deleted")))
		}
	}

	return v, nil
}

// templateForm builds a selector over the built-in habit catalog.
func (v *habitsView) templateForm(picked *int) *huh.Form {
	options := make([]huh.Option[int], 0, len(app.HabitTemplates))
	for i, t := range app.HabitTemplates {
		options = append(options, huh.NewOption(t.Title, i))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(v.state.T("habits.title")).
				Options(options...).
				Value(picked),
		),
	).WithTheme(xptrackHuhTheme()).WithShowHelp(false)
}

func (v *habitsView) View() string {
	board := v.board()
	tr := v.state.Bundle()

	var b strings.Builder
	b.WriteString("\n")

	if len(board.Rows) == 0 {
		b.WriteString("  " + formatter.Dim(tr.T("habits.empty")) + "\n")
		return b.String()
	}

	b.WriteString("  " + formatter.Dim(tr.T("habits.last_week")) + "\n\n")

	for i, row := range board.Rows {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}

		var cells []string
		for _, done := range row.Cells {
			if done {
				cells = append(cells, formatter.StyleGreen.Render("■"))
			} else {
				cells = append(cells, formatter.Dim("·"))
			}
		}

		streak := formatter.StreakStyle(row.Habit.Streak).Render(
			tr.T("habits.streak", map[string]any{"count": fmt.Sprint(row.Habit.Streak)}))

		b.WriteString(fmt.Sprintf("%s%s %s %s  %s\n",
			cursor,
			formatter.CheckMark(row.DoneToday),
			titleStyle.Render(formatter.PadRight(row.Habit.Title, 34)),
			strings.Join(cells, " "),
			streak,
		))
	}

	b.WriteString("\n  " + tr.T("habits.completion", map[string]any{
		"done":    fmt.Sprint(board.DoneToday),
		"total":   fmt.Sprint(len(board.Rows)),
		"percent": fmt.Sprint(board.CompletionRate),
	}) + "  " + formatter.RenderCompletion(float64(board.CompletionRate)/100, 14) + "\n")

	if board.MaxStreak > 0 {
		b.WriteString("  " + formatter.Dim(tr.T("habits.best_streak", map[string]any{
			"count": fmt.Sprint(board.MaxStreak),
		})) + "\n")
	}

	return b.String()
}
