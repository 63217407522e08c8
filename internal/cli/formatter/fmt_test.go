package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexvidal/xptrack/internal/dateutil"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/i18n"
	"github.com/alexvidal/xptrack/internal/testutil"
	"github.com/alexvidal/xptrack/internal/view"
)

var (
	now   = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	today = dateutil.DateKey(now)
	tr    = i18n.MustLoad("en")
)

func TestFormatTaskList_Empty(t *testing.T) {
	out := FormatTaskList(nil, today, tr)
	assert.Contains(t, out, "No tasks yet")
}

func TestFormatTaskList_RowsAndSubtaskProgress(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTask("Ship release", testutil.WithPriority(domain.PriorityHigh),
			testutil.WithSubtasks(
				domain.Subtask{ID: "s1", Text: "tag", Done: true},
				domain.Subtask{ID: "s2", Text: "announce"},
			)),
		testutil.NewTask("Water plants", testutil.WithTags("garden")),
	}

	out := FormatTaskList(tasks, today, tr)
	assert.Contains(t, out, "Ship release")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "1/2 subtasks")
	assert.Contains(t, out, "#garden")
}

func TestFormatTaskDetail(t *testing.T) {
	task := testutil.NewTask("Plan trip", testutil.WithDueDate(today))
	task.Description = "Book flights and hotel"

	out := FormatTaskDetail(task, today, tr)
	assert.Contains(t, out, "PLAN TRIP")
	assert.Contains(t, out, "Book flights and hotel")
	assert.Contains(t, out, "today")
}

func TestDueDateStyled(t *testing.T) {
	assert.Contains(t, DueDateStyled("2026-08-30", today), "overdue")
	assert.Contains(t, DueDateStyled(today, today), "today")
	assert.Contains(t, DueDateStyled("2026-09-02", today), "tomorrow")
	assert.Contains(t, DueDateStyled("2026-12-25", today), "2026-12-25")
	assert.Contains(t, DueDateStyled("", today), "—")
}

func TestFormatHabitBoard(t *testing.T) {
	habits := []domain.Habit{
		testutil.NewHabit("Stretch", testutil.WithRecord(today, true), testutil.WithStreak(8)),
		testutil.NewHabit("Read"),
	}
	board := view.Habits(habits, now)

	out := FormatHabitBoard(board, tr)
	assert.Contains(t, out, "Stretch")
	assert.Contains(t, out, "Streak: 8 days")
	assert.Contains(t, out, "Today: 1/2 (50%)")
	assert.Contains(t, out, "Best streak: 8")
}

func TestFormatHabitBoard_Empty(t *testing.T) {
	out := FormatHabitBoard(view.Habits(nil, now), tr)
	assert.Contains(t, out, "No habits yet")
}

func TestFormatBudgets(t *testing.T) {
	budgets := []domain.Budget{
		testutil.NewBudget("Monthly",
			testutil.WithItem("Rent", 1000),
			testutil.WithTransaction("groceries", -250),
		),
	}

	out := FormatBudgets(view.Budgets(budgets), tr)
	assert.Contains(t, out, "Monthly")
	assert.Contains(t, out, "Budgeted: 1000.00 USD")
	assert.Contains(t, out, "Spent: 250.00 USD")
	assert.Contains(t, out, "Remaining: 750.00 USD")
	assert.Contains(t, out, "25%")
}

func TestFormatBudgetDetail(t *testing.T) {
	budgets := view.Budgets([]domain.Budget{
		testutil.NewBudget("Trip",
			testutil.WithItem("Hotel", 600),
			testutil.WithTransaction("deposit", -150),
		),
	})

	out := FormatBudgetDetail(budgets[0], tr)
	assert.Contains(t, out, "TRIP")
	assert.Contains(t, out, "Hotel")
	assert.Contains(t, out, "deposit")
}

func TestFormatNoteList(t *testing.T) {
	notes := []domain.Note{
		testutil.NewNote("Reading list", testutil.WithUpdatedAt(now.Add(-30*time.Minute)), testutil.WithNoteTags("books")),
	}

	out := FormatNoteList(notes, now, tr)
	assert.Contains(t, out, "Reading list")
	assert.Contains(t, out, "30m ago")
	assert.Contains(t, out, "#books")
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("# Agenda\n\n- item one\n", 60)
	assert.Contains(t, out, "Agenda")
	assert.Contains(t, out, "item one")
}

func TestRenderMarkdown_PlainFallbackWidth(t *testing.T) {
	out := RenderMarkdown("hello", 0)
	assert.Contains(t, out, "hello")
}

func TestFormatHome(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTask("Urgent thing", testutil.WithPriority(domain.PriorityHigh)),
	}
	home := view.HomeScreen(tasks, nil, nil, nil, now)

	out := FormatHome(home, today, now, 12, tr)
	assert.Contains(t, out, "Welcome back")
	assert.Contains(t, out, "Visit #12")
	assert.Contains(t, out, "Urgent thing")
	assert.Contains(t, out, "1 open tasks")
	assert.Contains(t, out, "Today: 0/0 tasks done")
	assert.Contains(t, out, "0 notes")
}

func TestFormatHome_RecentActivity(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTask("Shipped it", testutil.WithCompletedAt(now)),
	}
	budgets := []domain.Budget{
		testutil.NewBudget("Monthly", testutil.WithItem("Rent", 900)),
	}
	home := view.HomeScreen(tasks, nil, budgets, nil, now)

	out := FormatHome(home, today, now, 1, tr)
	assert.Contains(t, out, strings.ToUpper(tr.T("home.recent_activity")))
	assert.Contains(t, out, "Shipped it")
	assert.Contains(t, out, Money(900, "USD"))
}

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, RenderProgress(-0.5, 10), "0%")
	assert.Contains(t, RenderProgress(1.5, 10), "100%")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable([]string{"A", "Long header"}, [][]string{{"x", "y"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
}

func TestPadRight_Truncates(t *testing.T) {
	assert.Equal(t, "abc ", PadRight("abc", 4))
	assert.Equal(t, "abc…", PadRight("abcdef", 4))
}
