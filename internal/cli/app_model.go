package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/alexvidal/xptrack/internal/app"
	"github.com/alexvidal/xptrack/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// toastDuration is how long a transient status message stays on screen.
const toastDuration = 3 * time.Second

// clearToastMsg dismisses the current toast if its sequence number still matches.
type clearToastMsg struct{ seq int }

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack; the bottom view always mirrors the active screen.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	toastText string
	toastSeq  int
}

func newAppModel(a *App) appModel {
	state := &SharedState{App: a}
	m := appModel{state: state}
	m.viewStack = []View{viewForScreen(state, a.State.CurrentScreen())}
	return m
}

// viewForScreen builds the root view matching a navigation screen.
func viewForScreen(state *SharedState, s app.Screen) View {
	switch s {
	case app.ScreenTasks:
		return newTasksView(state)
	case app.ScreenHabits:
		return newHabitsView(state)
	case app.ScreenBudgets:
		return newBudgetsView(state)
	case app.ScreenNotes:
		return newNotesView(state)
	default:
		return newHomeView(state)
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// switchScreen navigates to a screen and resets the stack to its root view.
func (m *appModel) switchScreen(s app.Screen) tea.Cmd {
	m.state.App.State.NavigateTo(s)
	v := viewForScreen(m.state, s)
	m.viewStack = []View{v}
	return v.Init()
}

// showToast sets the transient status line and schedules its dismissal.
func (m *appModel) showToast(text string) tea.Cmd {
	m.toastText = text
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}

// ── bubbletea interface ──────────────────────────────────────────────────────

// timeTickMsg re-renders the stack once a minute so relative timestamps
// ("2h ago") stay current without any mutation.
type timeTickMsg struct{}

func timeTick() tea.Cmd {
	return tea.Tick(time.Minute, func(time.Time) tea.Msg { return timeTickMsg{} })
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return tea.Batch(v.Init(), timeTick())
	}
	return timeTick()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast to the whole stack so views under a form reload their
		// data after a mutation made above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case formCompleteMsg:
		// Atomically pop the form view and run the follow-up command,
		// then refresh the views underneath.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, refreshViews())

	case timeTickMsg:
		return m, tea.Batch(refreshViews(), timeTick())

	case toastMsg:
		return m, m.showToast(msg.text)

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toastText = ""
		}
		return m, nil
	}

	// Forward other messages (timers, form blink, etc.) to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms own the keyboard entirely while active.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	// Views with their own text input (note search) get letter keys first.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "1", "2", "3", "4", "5":
		idx := int(msg.String()[0] - '1')
		if idx < len(app.Screens) {
			return m, m.switchScreen(app.Screens[idx])
		}
		return m, nil

	case "tab":
		return m, m.switchScreen(nextScreen(m.state.Screen()))

	case "shift+tab":
		return m, m.switchScreen(prevScreen(m.state.Screen()))

	case "t":
		theme := m.state.App.State.ToggleTheme(context.Background())
		return m, m.showToast(formatter.Dim(string(theme)))

	case "u":
		if m.state.App.State.Undo(context.Background()) {
			return m, tea.Batch(refreshViews(), m.showToast(m.state.T("tasks.restored")))
		}
		return m, nil
	}

	if msg.Type == tea.KeyEsc {
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("xptrack")

	active := m.state.Screen()
	var tabs []string
	for i, s := range app.Screens {
		label := m.state.T("nav." + string(s))
		if s == active {
			tabs = append(tabs, formatter.StyleGreen.Render(label))
		} else {
			tabs = append(tabs, formatter.Dim(strconv.Itoa(i+1)+" "+label))
		}
	}

	header := title + "  " + strings.Join(tabs, formatter.Dim(" · "))

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.toastText != "" {
		hints = append(hints, m.toastText)
	} else if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: "+m.state.T("common.back")))
		}
		hints = append(hints, formatter.Dim("q: "+m.state.T("common.quit")))
	}

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// nextScreen cycles forward through the screen tabs.
func nextScreen(s app.Screen) app.Screen {
	for i, cur := range app.Screens {
		if cur == s {
			return app.Screens[(i+1)%len(app.Screens)]
		}
	}
	return app.ScreenHome
}

// prevScreen cycles backward through the screen tabs.
func prevScreen(s app.Screen) app.Screen {
	for i, cur := range app.Screens {
		if cur == s {
			return app.Screens[(i-1+len(app.Screens))%len(app.Screens)]
		}
	}
	return app.ScreenHome
}

// viewCapturesInput reports whether the active view owns raw text input
// and should receive keys before the global bindings run.
func viewCapturesInput(v View) bool {
	c, ok := v.(interface{ capturesInput() bool })
	return ok && c.capturesInput()
}
