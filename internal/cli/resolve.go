package cli

import (
	"fmt"
	"strings"

	"github.com/alexvidal/xptrack/internal/domain"
)

// resolveID maps a user-supplied reference onto one element of a
// collection: exact id match first, then id prefix, then case-insensitive
// title substring. Ambiguous references are an error rather than a guess.
func resolveID(input, kind string, ids, titles []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s reference is required", kind)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	if len(matches) == 0 {
		needle := strings.ToLower(input)
		for i, title := range titles {
			if strings.Contains(strings.ToLower(title), needle) {
				matches = append(matches, ids[i])
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s reference %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveTaskID(a *App, input string) (string, error) {
	tasks := a.State.Tasks()
	ids := make([]string, len(tasks))
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i], titles[i] = t.ID, t.Title
	}
	return resolveID(input, "task", ids, titles)
}

func resolveHabitID(a *App, input string) (string, error) {
	habits := a.State.Habits()
	ids := make([]string, len(habits))
	titles := make([]string, len(habits))
	for i, h := range habits {
		ids[i], titles[i] = h.ID, h.Title
	}
	return resolveID(input, "habit", ids, titles)
}

func resolveBudgetID(a *App, input string) (string, error) {
	budgets := a.State.Budgets()
	ids := make([]string, len(budgets))
	titles := make([]string, len(budgets))
	for i, b := range budgets {
		ids[i], titles[i] = b.ID, b.Name
	}
	return resolveID(input, "budget", ids, titles)
}

func resolveNoteID(a *App, input string) (string, error) {
	notes := a.State.Notes()
	ids := make([]string, len(notes))
	titles := make([]string, len(notes))
	for i, n := range notes {
		ids[i], titles[i] = n.ID, n.Title
	}
	return resolveID(input, "note", ids, titles)
}

func resolveBudgetItemID(b domain.Budget, input string) (string, error) {
	ids := make([]string, len(b.Items))
	titles := make([]string, len(b.Items))
	for i, item := range b.Items {
		ids[i], titles[i] = item.ID, item.Title
	}
	return resolveID(input, "budget item", ids, titles)
}

func resolveTransactionID(b domain.Budget, input string) (string, error) {
	ids := make([]string, len(b.Transactions))
	titles := make([]string, len(b.Transactions))
	for i, txn := range b.Transactions {
		ids[i], titles[i] = txn.ID, txn.Description
	}
	return resolveID(input, "transaction", ids, titles)
}

func findBudget(a *App, id string) (domain.Budget, bool) {
	for _, b := range a.State.Budgets() {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Budget{}, false
}
