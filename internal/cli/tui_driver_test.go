package cli

import (
	"testing"

	"github.com/alexvidal/xptrack/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection helpers for appModel
// internals (view stack, shared state, toast line) that the generic
// driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel over a test App, sets terminal size,
// and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Toast returns the transient status message currently displayed.
func (d *TestDriver) Toast() string {
	return d.appModel().toastText
}

// IsQuitting reports whether the app has signaled a quit, either via the
// model flag (q/Ctrl+C) or a drained tea.QuitMsg.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
