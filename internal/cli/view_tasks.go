package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexvidal/xptrack/internal/app"
	"github.com/alexvidal/xptrack/internal/cli/formatter"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/view"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// filterCycle is the order the f key walks through task filters.
var filterCycle = []domain.TaskFilter{
	domain.FilterAll,
	domain.FilterToday,
	domain.FilterHigh,
	domain.FilterCompleted,
}

// tasksView shows the filtered, sorted task list with a movable cursor.
type tasksView struct {
	state  *SharedState
	cursor int
}

func newTasksView(state *SharedState) *tasksView {
	return &tasksView{state: state}
}

func (v *tasksView) ID() ViewID    { return ViewTasks }
func (v *tasksView) Title() string { return v.state.T("tasks.title") }

func (v *tasksView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "✔")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "+")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "✎")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "✗")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", v.state.T("tasks.filter."+string(v.state.App.State.Filter())))),
	}
}

func (v *tasksView) Init() tea.Cmd { return nil }

// visibleTasks projects the current list through the active filter.
func (v *tasksView) visibleTasks() []domain.Task {
	st := v.state.App.State
	return view.TaskList(st.Tasks(), st.Filter(), v.state.App.Today())
}

func (v *tasksView) clampCursor(n int) {
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *tasksView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.clampCursor(len(v.visibleTasks()))
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *tasksView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	st := v.state.App.State
	visible := v.visibleTasks()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}

	case "down", "j":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}

	case "f":
		cur := st.Filter()
		for i, f := range filterCycle {
			if f == cur {
				st.SetFilter(filterCycle[(i+1)%len(filterCycle)])
				break
			}
		}
		v.cursor = 0

	case " ":
		if v.cursor < len(visible) {
			st.ToggleTask(ctx, visible[v.cursor].ID)
			return v, refreshViews()
		}

	case "K":
		if v.cursor < len(visible) {
			st.MoveTask(ctx, visible[v.cursor].ID, -1)
			return v, refreshViews()
		}

	case "J":
		if v.cursor < len(visible) {
			st.MoveTask(ctx, visible[v.cursor].ID, 1)
			return v, refreshViews()
		}

	case "a":
		vals := &taskFormValues{}
		return v, startFormCmd(v.state, v.Title(), taskForm(v.state, vals), func() tea.Cmd {
			_, err := st.CreateTask(ctx, app.TaskInput{
				Title:       vals.Title,
				Description: vals.Description,
				DueDate:     vals.Due,
				Priority:    domain.Priority(vals.Priority),
				Tags:        vals.Tags,
				Subtasks:    splitLines(vals.Subtasks),
			})
			if err != nil {
				return toast(formatter.StyleRed.Render(err.Error()))
			}
			return toast(v.state.T("tasks.created", map[string]any{"title": vals.Title}))
		})

	case "e":
		if v.cursor >= len(visible) {
			break
		}
		t := visible[v.cursor]
		vals := &taskFormValues{
			Title:       t.Title,
			Description: t.Description,
			Due:         t.DueDate,
			Priority:    string(t.Priority),
			Tags:        strings.Join(t.Tags, ", "),
			Subtasks:    joinSubtaskLines(t.Subtasks),
		}
		return v, startFormCmd(v.state, v.Title(), taskForm(v.state, vals), func() tea.Cmd {
			err := st.UpdateTask(ctx, t.ID, app.TaskInput{
				Title:       vals.Title,
				Description: vals.Description,
				DueDate:     vals.Due,
				Priority:    domain.Priority(vals.Priority),
				Tags:        vals.Tags,
				Subtasks:    splitLines(vals.Subtasks),
			})
			if err != nil {
				return toast(formatter.StyleRed.Render(err.Error()))
			}
			return toast(v.state.T("tasks.updated", map[string]any{"title": vals.Title}))
		})

	case "d":
		if v.cursor < len(visible) {
			st.DeleteTask(ctx, visible[v.cursor].ID)
			hint := v.state.T("tasks.undo_hint", map[string]any{"seconds": "5"})
			return v, tea.Batch(refreshViews(), toast(v.state.T("tasks.deleted")+" · "+hint))
		}
	}

	return v, nil
}

func (v *tasksView) View() string {
	visible := v.visibleTasks()
	today := v.state.App.Today()
	tr := v.state.Bundle()

	var b strings.Builder
	b.WriteString("\n")

	filterLabel := tr.T("tasks.filter." + string(v.state.App.State.Filter()))
	b.WriteString("  " + formatter.Dim(filterLabel) + "\n\n")

	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim(tr.T("tasks.empty")) + "\n")
		return b.String()
	}

	for i, t := range visible {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if t.Done {
			titleStyle = formatter.StyleDim
		}
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			if !t.Done {
				titleStyle = formatter.StyleBold
			}
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s  %s  %s\n",
			cursor,
			formatter.CheckMark(t.Done),
			titleStyle.Render(formatter.PadRight(t.Title, 34)),
			formatter.PriorityBadge(t.Priority),
			formatter.DueDateStyled(t.DueDate, today),
			formatter.TagList(t.Tags),
		))

		if len(t.Subtasks) > 0 {
			done := 0
			for _, s := range t.Subtasks {
				if s.Done {
					done++
				}
			}
			b.WriteString("      " + formatter.Dim(tr.T("tasks.subtasks", map[string]any{
				"done":  fmt.Sprint(done),
				"total": fmt.Sprint(len(t.Subtasks)),
			})) + "\n")
		}
	}

	return b.String()
}

// splitLines splits textarea content into trimmed lines, dropping blanks.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// joinSubtaskLines renders existing subtasks back into textarea form.
func joinSubtaskLines(subs []domain.Subtask) string {
	lines := make([]string, 0, len(subs))
	for _, s := range subs {
		lines = append(lines, s.Text)
	}
	return strings.Join(lines, "\n")
}
