package importer

import (
	"fmt"

	"github.com/alexvidal/xptrack/internal/domain"
)

// ValidateBackup checks a parsed backup for consistency errors before it
// replaces the live collections. Returns a slice of all errors found.
func ValidateBackup(b *Backup) []error {
	var errs []error

	errs = append(errs, validateTasks(b.Tasks)...)
	errs = append(errs, validateHabits(b.Habits)...)
	errs = append(errs, validateBudgets(b.Budgets)...)
	errs = append(errs, validateNotes(b.Notes)...)

	return errs
}

func validateTasks(tasks []domain.Task) []error {
	var errs []error
	seen := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("tasks[%d]: id is required", i))
		} else if seen[t.ID] {
			errs = append(errs, fmt.Errorf("tasks[%d]: duplicate id %q", i, t.ID))
		}
		seen[t.ID] = true
		if t.Priority != "" && !domain.ValidPriorities[string(t.Priority)] {
			errs = append(errs, fmt.Errorf("tasks[%d]: invalid priority %q", i, t.Priority))
		}
	}
	return errs
}

func validateHabits(habits []domain.Habit) []error {
	var errs []error
	seen := make(map[string]bool, len(habits))
	for i, h := range habits {
		if h.ID == "" {
			errs = append(errs, fmt.Errorf("habits[%d]: id is required", i))
		} else if seen[h.ID] {
			errs = append(errs, fmt.Errorf("habits[%d]: duplicate id %q", i, h.ID))
		}
		seen[h.ID] = true
		if h.Streak < 0 {
			errs = append(errs, fmt.Errorf("habits[%d]: negative streak %d", i, h.Streak))
		}
	}
	return errs
}

func validateBudgets(budgets []domain.Budget) []error {
	var errs []error
	seen := make(map[string]bool, len(budgets))
	for i, b := range budgets {
		if b.ID == "" {
			errs = append(errs, fmt.Errorf("budgets[%d]: id is required", i))
		} else if seen[b.ID] {
			errs = append(errs, fmt.Errorf("budgets[%d]: duplicate id %q", i, b.ID))
		}
		seen[b.ID] = true
		for j, it := range b.Items {
			if it.Amount < 0 {
				errs = append(errs, fmt.Errorf("budgets[%d].items[%d]: negative amount %v", i, j, it.Amount))
			}
		}
	}
	return errs
}

func validateNotes(notes []domain.Note) []error {
	var errs []error
	seen := make(map[string]bool, len(notes))
	for i, n := range notes {
		if n.ID == "" {
			errs = append(errs, fmt.Errorf("notes[%d]: id is required", i))
		} else if seen[n.ID] {
			errs = append(errs, fmt.Errorf("notes[%d]: duplicate id %q", i, n.ID))
		}
		seen[n.ID] = true
	}
	return errs
}
