package store

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/alexvidal/xptrack/internal/dateutil"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/id"
)

// Seed writes demo content into every collection namespace that has never
// been written, so a first run opens onto a populated screen. Collections
// that already exist are left untouched.
func (s *Store) Seed(ctx context.Context, now time.Time, rng *rand.Rand) error {
	today := dateutil.Today(now)
	tomorrow := dateutil.DateKey(now.AddDate(0, 0, 1))

	seeds := []struct {
		namespace string
		write     func() error
	}{
		{NamespaceTasks, func() error { return s.SaveTasks(ctx, demoTasks(today, tomorrow)) }},
		{NamespaceHabits, func() error { return s.SaveHabits(ctx, demoHabits(now, rng)) }},
		{NamespaceBudgets, func() error { return s.SaveBudgets(ctx, demoBudgets(today)) }},
		{NamespaceNotes, func() error { return s.SaveNotes(ctx, demoNotes(now)) }},
	}
	for _, seed := range seeds {
		exists, err := s.Has(ctx, seed.namespace)
		if err != nil {
			return fmt.Errorf("checking %s: %w", seed.namespace, err)
		}
		if exists {
			continue
		}
		if err := seed.write(); err != nil {
			return fmt.Errorf("seeding %s: %w", seed.namespace, err)
		}
	}
	return nil
}

// DemoTasks returns the fixed demo task set dated relative to now.
// Exposed for the reset-to-demo operation.
func DemoTasks(now time.Time) []domain.Task {
	return demoTasks(dateutil.Today(now), dateutil.DateKey(now.AddDate(0, 0, 1)))
}

// DemoHabits returns the fixed demo habit set with synthetic history.
func DemoHabits(now time.Time, rng *rand.Rand) []domain.Habit {
	return demoHabits(now, rng)
}

// DemoBudgets returns the fixed demo budget set dated relative to now.
func DemoBudgets(now time.Time) []domain.Budget {
	return demoBudgets(dateutil.Today(now))
}

// DemoNotes returns the fixed demo note set timestamped relative to now.
func DemoNotes(now time.Time) []domain.Note {
	return demoNotes(now)
}

func demoTasks(today, tomorrow string) []domain.Task {
	return []domain.Task{
		{
			ID:          id.New(),
			Title:       "Define 3 MITs for today",
			Description: "Plan the most important tasks during breakfast",
			DueDate:     today,
			Priority:    domain.PriorityHigh,
			Tags:        []string{"planning", "morning"},
			Subtasks:    []domain.Subtask{},
			Order:       1,
		},
		{
			ID:          id.New(),
			Title:       "Complete first deep work block",
			Description: "60-minute focused coding session",
			DueDate:     today,
			Priority:    domain.PriorityHigh,
			Tags:        []string{"deepwork", "coding"},
			Subtasks: []domain.Subtask{
				{ID: id.New(), Text: "Review yesterday's progress"},
				{ID: id.New(), Text: "Work on main feature"},
				{ID: id.New(), Text: "Commit and push changes"},
			},
			Order: 2,
		},
		{
			ID:          id.New(),
			Title:       "Learning block: new language patterns",
			Description: "30-45 minutes of focused learning",
			DueDate:     today,
			Priority:    domain.PriorityMedium,
			Tags:        []string{"learning"},
			Subtasks:    []domain.Subtask{},
			Order:       3,
		},
		{
			ID:          id.New(),
			Title:       "End of day review",
			Description: "Review accomplishments and plan tomorrow",
			DueDate:     today,
			Priority:    domain.PriorityMedium,
			Tags:        []string{"planning", "review"},
			Subtasks:    []domain.Subtask{},
			Order:       4,
		},
		{
			ID:          id.New(),
			Title:       "Refactor authentication module",
			Description: "Improve code quality and add tests",
			DueDate:     tomorrow,
			Priority:    domain.PriorityHigh,
			Tags:        []string{"coding", "refactor"},
			Subtasks:    []domain.Subtask{},
			Order:       5,
		},
	}
}

// demoHabitSpec pairs each demo habit with the success probability used to
// synthesize its last 7 days of records.
type demoHabitSpec struct {
	title       string
	description string
	rate        float64
	streak      int
	color       string
}

var demoHabitSpecs = []demoHabitSpec{
	{"🌅 Wake without snooze", "Wake up at target time without hitting snooze", 0.8, 5, "#00ff88"},
	{"💧 Hydrate (500ml water)", "Drink 500ml water with lemon immediately after waking", 0.9, 7, "#0099ff"},
	{"🧘 Stoic meditation (10 min)", "Morning meditation and journaling", 0.7, 3, "#9333ea"},
	{"🏃 Mobility routine", "15-20 minutes of stretching and calisthenics", 0.6, 2, "#f59e0b"},
	{"⭐ Define 3 MITs", "Plan the 3 most important tasks during breakfast", 0.85, 6, "#00ff88"},
	{"🎯 Complete first deep work block", "60-minute focused work session", 0.75, 4, "#ef4444"},
	{"📚 Learning block (30-45 min)", "Dedicated time for learning new skills", 0.8, 5, "#8b5cf6"},
	{"📝 End of day review", "Review accomplishments and plan tomorrow", 0.7, 3, "#10b981"},
	{"🌙 Digital sunset (6 PM)", "Disconnect from screens by 6 PM", 0.5, 1, "#f97316"},
	{"😴 Sleep prep by 9 PM", "Begin sleep routine, target sleep by 11 PM", 0.6, 2, "#06b6d4"},
}

func demoHabits(now time.Time, rng *rand.Rand) []domain.Habit {
	habits := make([]domain.Habit, 0, len(demoHabitSpecs))
	for _, spec := range demoHabitSpecs {
		habits = append(habits, domain.Habit{
			ID:           id.New(),
			Title:        spec.title,
			Description:  spec.description,
			Schedule:     domain.ScheduleDaily,
			DailyRecords: dateutil.PastRecords(now, 7, spec.rate, rng),
			Streak:       spec.streak,
			Color:        spec.color,
		})
	}
	return habits
}

func demoBudgets(today string) []domain.Budget {
	return []domain.Budget{
		{
			ID:       id.New(),
			Name:     "Monthly Personal Budget",
			Currency: "USD",
			Items: []domain.BudgetItem{
				{ID: id.New(), Title: "Groceries", Amount: 500, Date: today, Notes: "Weekly shopping"},
				{ID: id.New(), Title: "Tech & Software", Amount: 200, Date: today, Notes: "Subscriptions and tools"},
				{ID: id.New(), Title: "Learning", Amount: 100, Date: today, Notes: "Books and courses"},
				{ID: id.New(), Title: "Entertainment", Amount: 150, Date: today, Notes: "Games and movies"},
			},
			Transactions: []domain.Transaction{
				{ID: id.New(), Amount: -45, Description: "Weekly groceries", Date: today},
				{ID: id.New(), Amount: -15, Description: "GitHub Pro subscription", Date: today},
			},
		},
	}
}

func demoNotes(now time.Time) []domain.Note {
	nowMs := now.UnixMilli()
	return []domain.Note{
		{
			ID:    id.New(),
			Title: "Daily Programming Tips",
			BodyMarkdown: "# Daily Programming Tips\n\n" +
				"## Code Quality\n- Write **clean, readable code** first\n- Optimize only when necessary\n- Use *meaningful variable names*\n\n" +
				"## Productivity\n- Use the **Pomodoro Technique**\n- Take regular breaks\n- Stay hydrated 💧",
			Tags:      []string{"programming", "tips"},
			UpdatedAt: nowMs,
		},
		{
			ID:    id.New(),
			Title: "Project Ideas",
			BodyMarkdown: "# Project Ideas 💡\n\n" +
				"## Web Apps\n- Personal dashboard\n- Habit tracker\n- Budget manager\n\n" +
				"**Next Steps:**\n1. Research tech stack\n2. Create wireframes\n3. Build MVP",
			Tags:      []string{"ideas", "projects"},
			UpdatedAt: nowMs - time.Hour.Milliseconds(),
		},
		{
			ID:    id.New(),
			Title: "Stoic Meditation Notes",
			BodyMarkdown: "# Stoic Philosophy\n\n" +
				"## Morning Meditation\n*\"The obstacle is the way\"* - Marcus Aurelius\n\n" +
				"Focus on what you can control:\n- Your thoughts\n- Your actions\n- Your responses\n\n" +
				"## Daily Practices\n1. Morning journaling\n2. Evening reflection\n3. Mindful breathing",
			Tags:      []string{"meditation", "stoic", "philosophy"},
			UpdatedAt: nowMs - (24 * time.Hour).Milliseconds(),
		},
	}
}
