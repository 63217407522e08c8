package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexvidal/xptrack/internal/domain"
)

var fixtureCounter atomic.Int64

func nextID(kind string) string {
	return fmt.Sprintf("%s-%04d", kind, fixtureCounter.Add(1))
}

// Task options

type TaskOption func(*domain.Task)

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) { t.Priority = p }
}

func WithDueDate(d string) TaskOption {
	return func(t *domain.Task) { t.DueDate = d }
}

func WithDone(done bool) TaskOption {
	return func(t *domain.Task) { t.Done = done }
}

func WithCompletedAt(ts time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Done = true
		t.CompletedAt = ts.UnixMilli()
	}
}

func WithOrder(n int) TaskOption {
	return func(t *domain.Task) { t.Order = n }
}

func WithTags(tags ...string) TaskOption {
	return func(t *domain.Task) { t.Tags = tags }
}

func WithSubtasks(subtasks ...domain.Subtask) TaskOption {
	return func(t *domain.Task) { t.Subtasks = subtasks }
}

// NewTask builds a task fixture with sensible defaults.
func NewTask(title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:       nextID("task"),
		Title:    title,
		Priority: domain.PriorityMedium,
		Tags:     []string{},
		Subtasks: []domain.Subtask{},
		Order:    int(fixtureCounter.Load()),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Habit options

type HabitOption func(*domain.Habit)

func WithStreak(n int) HabitOption {
	return func(h *domain.Habit) { h.Streak = n }
}

func WithRecord(day string, done bool) HabitOption {
	return func(h *domain.Habit) { h.DailyRecords[day] = done }
}

// NewHabit builds a habit fixture with an empty record map.
func NewHabit(title string, opts ...HabitOption) domain.Habit {
	h := domain.Habit{
		ID:           nextID("habit"),
		Title:        title,
		Schedule:     domain.ScheduleDaily,
		DailyRecords: map[string]bool{},
		Color:        "#00ff88",
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Budget options

type BudgetOption func(*domain.Budget)

func WithItem(title string, amount float64) BudgetOption {
	return func(b *domain.Budget) {
		b.Items = append(b.Items, domain.BudgetItem{
			ID: nextID("item"), Title: title, Amount: amount,
		})
	}
}

func WithTransaction(description string, amount float64) BudgetOption {
	return func(b *domain.Budget) {
		b.Transactions = append(b.Transactions, domain.Transaction{
			ID: nextID("tx"), Description: description, Amount: amount,
		})
	}
}

// NewBudget builds a budget fixture.
func NewBudget(name string, opts ...BudgetOption) domain.Budget {
	b := domain.Budget{
		ID:           nextID("budget"),
		Name:         name,
		Currency:     "USD",
		Items:        []domain.BudgetItem{},
		Transactions: []domain.Transaction{},
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Note options

type NoteOption func(*domain.Note)

func WithBody(markdown string) NoteOption {
	return func(n *domain.Note) { n.BodyMarkdown = markdown }
}

func WithNoteTags(tags ...string) NoteOption {
	return func(n *domain.Note) { n.Tags = tags }
}

func WithUpdatedAt(ts time.Time) NoteOption {
	return func(n *domain.Note) { n.UpdatedAt = ts.UnixMilli() }
}

// NewNote builds a note fixture.
func NewNote(title string, opts ...NoteOption) domain.Note {
	n := domain.Note{
		ID:        nextID("note"),
		Title:     title,
		Tags:      []string{},
		UpdatedAt: time.Now().UnixMilli(),
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// FixedClock returns a clock function pinned to t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
