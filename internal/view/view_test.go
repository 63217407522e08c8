package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexvidal/xptrack/internal/dateutil"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/testutil"
)

var (
	anchor = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	today  = dateutil.DateKey(anchor)
)

func TestMITs_HighPriorityFirstThenDueToday(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTask("due today", testutil.WithDueDate(today)),
		testutil.NewTask("high", testutil.WithPriority(domain.PriorityHigh)),
		testutil.NewTask("plain"),
	}

	mits := MITs(tasks, today)
	require.Len(t, mits, 2)
	assert.Equal(t, "high", mits[0].Title)
	assert.Equal(t, "due today", mits[1].Title)
}

func TestMITs_ExcludesCompleted(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTask("done high", testutil.WithPriority(domain.PriorityHigh), testutil.WithDone(true)),
	}
	assert.Empty(t, MITs(tasks, today))
}

func TestMITs_CappedAtThree(t *testing.T) {
	var tasks []domain.Task
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		tasks = append(tasks, testutil.NewTask(title, testutil.WithPriority(domain.PriorityHigh)))
	}

	mits := MITs(tasks, today)
	require.Len(t, mits, 3)
	assert.Equal(t, "a", mits[0].Title, "selection is stable")
}

func TestFilterTasks(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTask("today", testutil.WithDueDate(today)),
		testutil.NewTask("today done", testutil.WithDueDate(today), testutil.WithDone(true)),
		testutil.NewTask("high", testutil.WithPriority(domain.PriorityHigh)),
		testutil.NewTask("done", testutil.WithDone(true)),
		testutil.NewTask("plain"),
	}

	assert.Len(t, FilterTasks(tasks, domain.FilterAll, today), 5)
	assert.Len(t, FilterTasks(tasks, domain.FilterToday, today), 1, "today excludes completed tasks")
	assert.Len(t, FilterTasks(tasks, domain.FilterHigh, today), 1)
	assert.Len(t, FilterTasks(tasks, domain.FilterCompleted, today), 2)
}

func TestFilterTasks_TodayAndHighExcludeCompleted(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTask("open today", testutil.WithDueDate(today)),
		testutil.NewTask("done today", testutil.WithDueDate(today), testutil.WithDone(true)),
		testutil.NewTask("done high", testutil.WithPriority(domain.PriorityHigh), testutil.WithDone(true)),
	}

	matched := FilterTasks(tasks, domain.FilterToday, today)
	require.Len(t, matched, 1)
	assert.Equal(t, "open today", matched[0].Title)

	assert.Empty(t, FilterTasks(tasks, domain.FilterHigh, today))
}

func TestSortTasks(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTask("done high", testutil.WithPriority(domain.PriorityHigh), testutil.WithDone(true), testutil.WithOrder(0)),
		testutil.NewTask("late plain", testutil.WithOrder(5)),
		testutil.NewTask("early plain", testutil.WithOrder(1)),
		testutil.NewTask("high", testutil.WithPriority(domain.PriorityHigh), testutil.WithOrder(9)),
	}

	sorted := SortTasks(tasks)
	titles := make([]string, len(sorted))
	for i, task := range sorted {
		titles[i] = task.Title
	}
	assert.Equal(t, []string{"high", "early plain", "late plain", "done high"}, titles)
}

func TestSortTasks_DoesNotMutateInput(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTask("b", testutil.WithOrder(2)),
		testutil.NewTask("a", testutil.WithOrder(1)),
	}
	SortTasks(tasks)
	assert.Equal(t, "b", tasks[0].Title)
}

func TestHabits_Board(t *testing.T) {
	yesterday := dateutil.Yesterday(anchor)
	habits := []domain.Habit{
		testutil.NewHabit("done today", testutil.WithRecord(today, true), testutil.WithStreak(4)),
		testutil.NewHabit("done yesterday", testutil.WithRecord(yesterday, true), testutil.WithStreak(9)),
		testutil.NewHabit("never"),
		testutil.NewHabit("skipped today", testutil.WithRecord(today, false)),
	}

	board := Habits(habits, anchor)
	require.Len(t, board.Rows, 4)
	require.Len(t, board.Days, 7)
	assert.Equal(t, today, board.Days[6], "today is the last cell")

	assert.True(t, board.Rows[0].DoneToday)
	assert.True(t, board.Rows[0].Cells[6])
	assert.True(t, board.Rows[1].Cells[5])
	assert.False(t, board.Rows[1].DoneToday)
	assert.False(t, board.Rows[3].DoneToday, "an explicit false record is not done")

	assert.Equal(t, 1, board.DoneToday)
	assert.Equal(t, 25, board.CompletionRate)
	assert.Equal(t, 9, board.MaxStreak)
}

func TestHabits_CompletionRateRoundsToNearest(t *testing.T) {
	habits := []domain.Habit{
		testutil.NewHabit("a", testutil.WithRecord(today, true)),
		testutil.NewHabit("b", testutil.WithRecord(today, true)),
		testutil.NewHabit("c"),
	}
	assert.Equal(t, 67, Habits(habits, anchor).CompletionRate)
}

func TestHabits_EmptyBoard(t *testing.T) {
	board := Habits(nil, anchor)
	assert.Empty(t, board.Rows)
	assert.Equal(t, 0, board.CompletionRate)
}

func TestBudgets_Summaries(t *testing.T) {
	budgets := []domain.Budget{
		testutil.NewBudget("Monthly",
			testutil.WithItem("Rent", 900),
			testutil.WithItem("Food", 300),
			testutil.WithTransaction("groceries", -120),
		),
	}

	summaries := Budgets(budgets)
	require.Len(t, summaries, 1)
	assert.InDelta(t, 1200.0, summaries[0].Total, 0.001)
	assert.InDelta(t, 120.0, summaries[0].Spent, 0.001)
	assert.InDelta(t, 1080.0, summaries[0].Remaining, 0.001)
	assert.InDelta(t, 10.0, summaries[0].PercentUsed, 0.001)
}

func TestNotes_SearchAndSort(t *testing.T) {
	notes := []domain.Note{
		testutil.NewNote("Older go notes", testutil.WithUpdatedAt(anchor.Add(-2*time.Hour)), testutil.WithNoteTags("go")),
		testutil.NewNote("Newer go notes", testutil.WithUpdatedAt(anchor), testutil.WithNoteTags("go")),
		testutil.NewNote("Cooking", testutil.WithUpdatedAt(anchor.Add(-time.Hour))),
	}

	all := Notes(notes, "")
	require.Len(t, all, 3)
	assert.Equal(t, "Newer go notes", all[0].Title)
	assert.Equal(t, "Cooking", all[1].Title)

	matched := Notes(notes, "go")
	require.Len(t, matched, 2)
	assert.Equal(t, "Newer go notes", matched[0].Title)
}

func TestHomeScreen(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTask("high open", testutil.WithPriority(domain.PriorityHigh)),
		testutil.NewTask("due today", testutil.WithDueDate(today)),
		testutil.NewTask("done today", testutil.WithDueDate(today), testutil.WithCompletedAt(anchor)),
		testutil.NewTask("done", testutil.WithCompletedAt(anchor.Add(-time.Hour))),
	}
	habits := []domain.Habit{
		testutil.NewHabit("done", testutil.WithRecord(today, true), testutil.WithStreak(6)),
		testutil.NewHabit("pending", testutil.WithStreak(2)),
	}
	budgets := []domain.Budget{
		testutil.NewBudget("Monthly", testutil.WithItem("Rent", 900), testutil.WithTransaction("groceries", -120)),
		testutil.NewBudget("Trip", testutil.WithItem("Flights", 400)),
	}
	notes := []domain.Note{
		testutil.NewNote("n1", testutil.WithUpdatedAt(anchor)),
		testutil.NewNote("n2", testutil.WithUpdatedAt(anchor.Add(-time.Hour))),
		testutil.NewNote("n3", testutil.WithUpdatedAt(anchor.Add(-2*time.Hour))),
	}

	home := HomeScreen(tasks, habits, budgets, notes, anchor)
	assert.Len(t, home.MITs, 2)
	assert.Equal(t, 2, home.OpenTasks)
	assert.Equal(t, 1, home.DueToday)
	assert.Equal(t, 1, home.DoneToday)
	assert.Equal(t, 2, home.TotalToday)
	assert.Equal(t, 1, home.HabitsDone)
	assert.Equal(t, 2, home.HabitsTotal)
	assert.Equal(t, 6, home.MaxStreak)
	assert.InDelta(t, 1180.0, home.BudgetRemaining, 0.001)
	assert.Equal(t, "USD", home.BudgetCurrency)
	assert.Equal(t, 3, home.NoteCount)

	require.Len(t, home.RecentTasks, 2)
	assert.Equal(t, "done today", home.RecentTasks[0].Title, "newest completion first")
	require.Len(t, home.RecentNotes, 2)
	assert.Equal(t, "n1", home.RecentNotes[0].Title)
}
