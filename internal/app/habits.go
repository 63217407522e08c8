package app

import (
	"context"
	"slices"
	"strings"

	"github.com/alexvidal/xptrack/internal/dateutil"
	"github.com/alexvidal/xptrack/internal/domain"
)

// HabitTemplate is a predefined habit the user can adopt in one step.
type HabitTemplate struct {
	Title       string
	Description string
	Color       string
}

// HabitTemplates is the fixed catalog of suggested daily habits.
var HabitTemplates = []HabitTemplate{
	{"🌅 Wake without snooze", "Wake up at target time without hitting snooze", "#00ff88"},
	{"💧 Hydrate (500ml water)", "Drink 500ml water with lemon immediately after waking", "#0099ff"},
	{"🧘 Stoic meditation (10 min)", "Morning meditation and journaling", "#9333ea"},
	{"🏃 Mobility routine", "15-20 minutes of stretching and calisthenics", "#f59e0b"},
	{"⭐ Define 3 MITs", "Plan the 3 most important tasks during breakfast", "#00ff88"},
	{"🎯 Complete first deep work block", "60-minute focused work session", "#ef4444"},
	{"📚 Learning block (30-45 min)", "Dedicated time for learning new skills", "#8b5cf6"},
	{"📝 End of day review", "Review accomplishments and plan tomorrow", "#10b981"},
	{"🌙 Digital sunset (6 PM)", "Disconnect from screens by 6 PM", "#f97316"},
	{"😴 Sleep prep by 9 PM", "Begin sleep routine, target sleep by 11 PM", "#06b6d4"},
}

// HabitInput carries the user-editable fields of a habit.
type HabitInput struct {
	Title       string
	Description string
	Color       string
}

// CreateHabit validates the input and appends a new daily habit with an
// empty history.
func (a *App) CreateHabit(ctx context.Context, in HabitInput) (domain.Habit, error) {
	habit := domain.Habit{
		ID:           a.newID(),
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Schedule:     domain.ScheduleDaily,
		DailyRecords: map[string]bool{},
		Color:        in.Color,
	}
	if err := habit.Validate(); err != nil {
		return domain.Habit{}, err
	}
	a.habits = append(a.habits, habit)
	a.persistHabits(ctx)
	a.emit("habit_create", map[string]any{"id": habit.ID, "title": habit.Title})
	return habit, nil
}

// CreateHabitFromTemplate adds the catalog habit at the given index.
func (a *App) CreateHabitFromTemplate(ctx context.Context, index int) (domain.Habit, error) {
	if index < 0 || index >= len(HabitTemplates) {
		return domain.Habit{}, domain.ErrValidation
	}
	tpl := HabitTemplates[index]
	return a.CreateHabit(ctx, HabitInput{Title: tpl.Title, Description: tpl.Description, Color: tpl.Color})
}

// ToggleHabit flips today's record for a habit and recomputes its streak:
// marking done continues the streak when yesterday was done (or starts a
// new one), otherwise resets it to 1; unmarking steps the streak back down.
// Completing the last remaining habit of the day raises a celebration.
func (a *App) ToggleHabit(ctx context.Context, habitID string) {
	idx := a.habitIndex(habitID)
	if idx < 0 {
		return
	}
	habit := &a.habits[idx]
	today := dateutil.DateKey(a.now())
	yesterday := dateutil.Yesterday(a.now())

	markingDone := !habit.DoneOn(today)
	if habit.DailyRecords == nil {
		habit.DailyRecords = map[string]bool{}
	}
	habit.DailyRecords[today] = markingDone
	habit.Streak = domain.NextStreak(habit.Streak, markingDone, habit.DoneOn(yesterday))

	a.persistHabits(ctx)
	status := "pending"
	if markingDone {
		status = "done"
	}
	a.emit("habit_toggle", map[string]any{
		"id": habit.ID, "title": habit.Title, "status": status, "streak": habit.Streak,
	})
	if markingDone && a.allHabitsDone(today) {
		a.emit("celebration", map[string]any{"reason": "all_habits_done", "date": today})
	}
}

// DeleteHabit removes a habit and arms the undo slot; unknown ids are
// no-ops.
func (a *App) DeleteHabit(ctx context.Context, habitID string) {
	idx := a.habitIndex(habitID)
	if idx < 0 {
		return
	}
	removed := a.habits[idx]
	a.habits = append(a.habits[:idx], a.habits[idx+1:]...)
	a.armUndo(func(ctx context.Context) {
		a.habits = slices.Insert(a.habits, min(idx, len(a.habits)), removed)
		a.persistHabits(ctx)
		a.emit("habit_restore", map[string]any{"id": removed.ID, "title": removed.Title})
	})
	a.persistHabits(ctx)
	a.emit("habit_delete", map[string]any{"id": removed.ID, "title": removed.Title})
}

// HabitsDoneToday returns how many habits are marked done for today.
func (a *App) HabitsDoneToday() int {
	today := dateutil.DateKey(a.now())
	n := 0
	for _, h := range a.habits {
		if h.DoneOn(today) {
			n++
		}
	}
	return n
}

func (a *App) allHabitsDone(day string) bool {
	if len(a.habits) == 0 {
		return false
	}
	for _, h := range a.habits {
		if !h.DoneOn(day) {
			return false
		}
	}
	return true
}

func (a *App) habitIndex(habitID string) int {
	for i := range a.habits {
		if a.habits[i].ID == habitID {
			return i
		}
	}
	return -1
}

// Habits returns a copy of the habit collection.
func (a *App) Habits() []domain.Habit {
	out := make([]domain.Habit, len(a.habits))
	copy(out, a.habits)
	return out
}
