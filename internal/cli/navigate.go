package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// refreshViewMsg tells every view on the stack to re-read application
// state after a mutation.
type refreshViewMsg struct{}

// toastMsg shows a transient one-line message in the status area.
type toastMsg struct {
	text string
}

// formCompleteMsg is sent when a form finishes or is cancelled. The
// appModel pops the form view atomically, then runs nextCmd.
type formCompleteMsg struct {
	nextCmd tea.Cmd
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// toast returns a tea.Cmd that shows a transient status message.
func toast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text} }
}

// refreshViews returns a tea.Cmd that broadcasts a state refresh.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}
