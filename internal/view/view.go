// Package view derives read-only screen projections from the domain
// collections. Nothing here mutates state: every function takes plain
// slices and returns freshly computed values, so projections are trivially
// testable and safe to call on every render.
package view

import (
	"math"
	"sort"
	"time"

	"github.com/alexvidal/xptrack/internal/dateutil"
	"github.com/alexvidal/xptrack/internal/domain"
)

// mitLimit caps the most-important-tasks strip on the home screen.
const mitLimit = 3

// MITs selects the most important tasks: incomplete tasks that are either
// high priority or due today, high priority first, keeping insertion order
// within each group, capped at three.
func MITs(tasks []domain.Task, today string) []domain.Task {
	picked := make([]domain.Task, 0, mitLimit)
	for _, t := range tasks {
		if !t.Done && t.Priority == domain.PriorityHigh {
			picked = append(picked, t)
		}
	}
	for _, t := range tasks {
		if !t.Done && t.Priority != domain.PriorityHigh && t.DueToday(today) {
			picked = append(picked, t)
		}
	}
	if len(picked) > mitLimit {
		picked = picked[:mitLimit]
	}
	return picked
}

// FilterTasks keeps the tasks matching the active filter. FilterToday and
// FilterHigh exclude completed tasks; FilterCompleted is their complement;
// FilterAll passes everything through.
func FilterTasks(tasks []domain.Task, filter domain.TaskFilter, today string) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		switch filter {
		case domain.FilterToday:
			if t.Done || !t.DueToday(today) {
				continue
			}
		case domain.FilterHigh:
			if t.Done || t.Priority != domain.PriorityHigh {
				continue
			}
		case domain.FilterCompleted:
			if !t.Done {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// SortTasks orders a copy of the tasks for display: incomplete before
// completed, high priority before the rest, then the manual order. The
// sort is stable so equal tasks keep their relative positions.
func SortTasks(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Done != out[j].Done {
			return !out[i].Done
		}
		iHigh := out[i].Priority == domain.PriorityHigh
		jHigh := out[j].Priority == domain.PriorityHigh
		if iHigh != jHigh {
			return iHigh
		}
		return out[i].Order < out[j].Order
	})
	return out
}

// TaskList applies the filter and then the display sort.
func TaskList(tasks []domain.Task, filter domain.TaskFilter, today string) []domain.Task {
	return SortTasks(FilterTasks(tasks, filter, today))
}

// HabitRow is one habit prepared for the habit screen: the last seven days
// as cells, oldest first, with today's state called out.
type HabitRow struct {
	Habit     domain.Habit
	Cells     []bool
	DoneToday bool
}

// HabitBoard is the habit screen projection.
type HabitBoard struct {
	Rows           []HabitRow
	Days           []string
	DoneToday      int
	CompletionRate int
	MaxStreak      int
}

// Habits projects the habit collection onto a seven-day board anchored at
// now. CompletionRate is today's done percentage rounded to the nearest
// whole percent; an empty collection yields a zero board.
func Habits(habits []domain.Habit, now time.Time) HabitBoard {
	days := dateutil.Last7Days(now)
	today := dateutil.DateKey(now)
	board := HabitBoard{Days: days, Rows: make([]HabitRow, 0, len(habits))}

	for _, h := range habits {
		row := HabitRow{Habit: h, Cells: make([]bool, len(days))}
		for i, day := range days {
			row.Cells[i] = h.DoneOn(day)
		}
		row.DoneToday = h.DoneOn(today)
		if row.DoneToday {
			board.DoneToday++
		}
		if h.Streak > board.MaxStreak {
			board.MaxStreak = h.Streak
		}
		board.Rows = append(board.Rows, row)
	}
	if len(habits) > 0 {
		board.CompletionRate = int(math.Round(float64(board.DoneToday) / float64(len(habits)) * 100))
	}
	return board
}

// BudgetSummary is one budget with its aggregates precomputed.
type BudgetSummary struct {
	Budget      domain.Budget
	Total       float64
	Spent       float64
	Remaining   float64
	PercentUsed float64
}

// Budgets projects each budget with its totals.
func Budgets(budgets []domain.Budget) []BudgetSummary {
	out := make([]BudgetSummary, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, BudgetSummary{
			Budget:      b,
			Total:       b.Total(),
			Spent:       b.Spent(),
			Remaining:   b.Remaining(),
			PercentUsed: b.PercentUsed(),
		})
	}
	return out
}

// Notes filters the notes by a search query (empty matches all) and sorts
// the result most recently updated first.
func Notes(notes []domain.Note, query string) []domain.Note {
	out := make([]domain.Note, 0, len(notes))
	for _, n := range notes {
		if n.Matches(query) {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt > out[j].UpdatedAt })
	return out
}

// Home is the landing screen projection: the MIT strip, the day's headline
// numbers and the latest activity.
type Home struct {
	MITs        []domain.Task
	DueToday    int // open tasks due today
	DoneToday   int // completed tasks due today
	TotalToday  int // all tasks due today
	OpenTasks   int
	HabitsDone  int
	HabitsTotal int
	MaxStreak   int

	BudgetRemaining float64
	BudgetCurrency  string
	NoteCount       int

	RecentTasks []domain.Task // most recently completed first
	RecentNotes []domain.Note
}

// recentLimit caps each half of the home activity feed.
const recentLimit = 2

// HomeScreen assembles the landing screen from all collections.
func HomeScreen(tasks []domain.Task, habits []domain.Habit, budgets []domain.Budget, notes []domain.Note, now time.Time) Home {
	today := dateutil.DateKey(now)
	home := Home{
		MITs:        MITs(tasks, today),
		HabitsTotal: len(habits),
		NoteCount:   len(notes),
	}

	completed := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.DueToday(today) {
			home.TotalToday++
			if t.Done {
				home.DoneToday++
			} else {
				home.DueToday++
			}
		}
		if t.Done {
			completed = append(completed, t)
		} else {
			home.OpenTasks++
		}
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].CompletedAt > completed[j].CompletedAt
	})
	if len(completed) > recentLimit {
		completed = completed[:recentLimit]
	}
	home.RecentTasks = completed

	for _, h := range habits {
		if h.DoneOn(today) {
			home.HabitsDone++
		}
		if h.Streak > home.MaxStreak {
			home.MaxStreak = h.Streak
		}
	}

	for _, b := range budgets {
		home.BudgetRemaining += b.Remaining()
		if home.BudgetCurrency == "" {
			home.BudgetCurrency = b.Currency
		}
	}

	recent := Notes(notes, "")
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	home.RecentNotes = recent
	return home
}
