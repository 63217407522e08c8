package cli

import (
	"github.com/alexvidal/xptrack/internal/cli/formatter"
	"github.com/alexvidal/xptrack/internal/view"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// homeView is the landing dashboard: MITs, today's counters and recent notes.
type homeView struct {
	state *SharedState
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return v.state.T("nav.home") }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("1-5/tab", v.state.T("nav.tasks"))),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *homeView) View() string {
	st := v.state.App.State
	now := st.Now()
	home := view.HomeScreen(st.Tasks(), st.Habits(), st.Budgets(), st.Notes(), now)
	return "\n" + formatter.FormatHome(home, v.state.App.Today(), now, st.VisitCount(), v.state.Bundle())
}
