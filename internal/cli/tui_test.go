package cli

import (
	"strings"
	"testing"

	"github.com/alexvidal/xptrack/internal/app"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_HomeLoadsOnStartup(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	view := d.View()
	assert.Contains(t, view, "xptrack")
	assert.Contains(t, view, strings.ToUpper(a.T("home.mits")))
}

func TestTUI_QuitWithQ(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
}

func TestTUI_NumberKeysSwitchScreens(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('2')
	assert.Equal(t, ViewTasks, d.ActiveViewID())
	assert.Equal(t, app.ScreenTasks, a.State.CurrentScreen())

	d.PressKey('3')
	assert.Equal(t, ViewHabits, d.ActiveViewID())

	d.PressKey('4')
	assert.Equal(t, ViewBudgets, d.ActiveViewID())

	d.PressKey('5')
	assert.Equal(t, ViewNotes, d.ActiveViewID())

	d.PressKey('1')
	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, app.ScreenHome, a.State.CurrentScreen())
}

func TestTUI_TabCyclesScreens(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressTab()
	assert.Equal(t, app.ScreenTasks, a.State.CurrentScreen())

	d.PressTab()
	assert.Equal(t, app.ScreenHabits, a.State.CurrentScreen())

	// Cycling wraps back to home from the last screen.
	d.PressTab()
	d.PressTab()
	d.PressTab()
	assert.Equal(t, app.ScreenHome, a.State.CurrentScreen())
}

func TestTUI_ThemeToggleShowsToast(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('t')

	assert.Equal(t, domain.ThemeDark, a.State.Theme())
	assert.NotEmpty(t, d.Toast())
}

func TestTUI_TaskToggleWithSpace(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('2')

	// The cursor starts on the first sorted task.
	d.PressSpace()

	done := 0
	for _, task := range a.State.Tasks() {
		if task.Done {
			done++
		}
	}
	assert.Equal(t, 1, done)
}

func TestTUI_TaskFilterCycles(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('2')
	assert.Equal(t, domain.FilterAll, a.State.Filter())

	d.PressKey('f')
	assert.Equal(t, domain.FilterToday, a.State.Filter())

	d.PressKey('f')
	assert.Equal(t, domain.FilterHigh, a.State.Filter())

	d.PressKey('f')
	assert.Equal(t, domain.FilterCompleted, a.State.Filter())

	d.PressKey('f')
	assert.Equal(t, domain.FilterAll, a.State.Filter())
}

func TestTUI_TaskDeleteAndUndo(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)
	before := len(a.State.Tasks())

	d.PressKey('2')
	d.PressKey('d')

	assert.Len(t, a.State.Tasks(), before-1)
	assert.NotEmpty(t, d.Toast())

	d.PressKey('u')

	assert.Len(t, a.State.Tasks(), before)
}

func TestTUI_TaskFormPushAndCancel(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('2')
	d.PressKey('a')
	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())

	d.PressEsc()
	assert.Equal(t, ViewTasks, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_HabitToggleWithSpace(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	habits := a.State.Habits()
	require.NotEmpty(t, habits)
	today := a.Today()
	wasDone := habits[0].DailyRecords[today]

	d.PressKey('3')
	d.PressSpace()

	assert.Equal(t, !wasDone, a.State.Habits()[0].DailyRecords[a.Today()])
}

func TestTUI_HabitCatalogFormPush(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('3')
	d.PressKey('c')

	assert.Equal(t, ViewForm, d.ActiveViewID())
}

func TestTUI_BudgetDetailPushAndPop(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('4')
	d.PressEnter()

	assert.Equal(t, 2, d.ViewStackLen())
	assert.Contains(t, d.View(), "Groceries")

	d.PressEsc()
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_BudgetDetailDeleteItem(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('4')
	d.PressEnter()
	before := len(a.State.Budgets()[0].Items)

	d.PressKey('d')

	assert.Len(t, a.State.Budgets()[0].Items, before-1)
	assert.Contains(t, d.View(), a.T("budgets.item_deleted", map[string]any{"title": "Groceries"}))
	assert.True(t, a.State.CanUndo(), "the deleted item can be restored")
}

func TestTUI_BudgetDetailDeleteTransaction(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('4')
	d.PressEnter()
	items := len(a.State.Budgets()[0].Items)
	txns := len(a.State.Budgets()[0].Transactions)

	for i := 0; i < items; i++ {
		d.PressKey('j')
	}
	d.PressKey('d')

	assert.Len(t, a.State.Budgets()[0].Transactions, txns-1)
	assert.True(t, a.State.CanUndo())
}

func TestTUI_NoteSearchFilters(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('5')
	d.PressKey('/')
	d.Type("stoic")

	view := d.View()
	assert.Contains(t, view, "Stoic Meditation Notes")
	assert.NotContains(t, view, "Project Ideas")

	d.PressEsc()
	assert.Contains(t, d.View(), "Project Ideas")
}

func TestTUI_NoteDetailRendersBody(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('5')
	d.PressEnter()

	assert.Equal(t, ViewNoteDetail, d.ActiveViewID())
	assert.Contains(t, d.View(), "Pomodoro")
}

func TestTUI_ScreenSwitchResetsStack(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	d.PressKey('4')
	d.PressEnter()
	assert.Equal(t, 2, d.ViewStackLen())

	d.PressKey('1')
	assert.Equal(t, []ViewID{ViewHome}, d.ViewStackIDs())
}
