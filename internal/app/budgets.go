package app

import (
	"context"
	"slices"
	"strings"

	"github.com/alexvidal/xptrack/internal/dateutil"
	"github.com/alexvidal/xptrack/internal/domain"
)

// CreateBudget validates and appends a new empty budget.
func (a *App) CreateBudget(ctx context.Context, name, currency string) (domain.Budget, error) {
	budget := domain.Budget{
		ID:           a.newID(),
		Name:         strings.TrimSpace(name),
		Currency:     strings.ToUpper(strings.TrimSpace(currency)),
		Items:        []domain.BudgetItem{},
		Transactions: []domain.Transaction{},
	}
	if budget.Currency == "" {
		budget.Currency = "USD"
	}
	if err := budget.Validate(); err != nil {
		return domain.Budget{}, err
	}
	a.budgets = append(a.budgets, budget)
	a.persistBudgets(ctx)
	a.emit("budget_create", map[string]any{"id": budget.ID, "name": budget.Name})
	return budget, nil
}

// DeleteBudget removes a budget together with its items and transactions.
func (a *App) DeleteBudget(ctx context.Context, budgetID string) {
	idx := a.budgetIndex(budgetID)
	if idx < 0 {
		return
	}
	removed := a.budgets[idx]
	a.budgets = append(a.budgets[:idx], a.budgets[idx+1:]...)
	a.persistBudgets(ctx)
	a.emit("budget_delete", map[string]any{"id": removed.ID, "name": removed.Name})
}

// AddBudgetItem appends a planned spending category to a budget. The amount
// is the allocation and must not be negative.
func (a *App) AddBudgetItem(ctx context.Context, budgetID, title string, amount float64, notes string) (domain.BudgetItem, error) {
	idx := a.budgetIndex(budgetID)
	if idx < 0 {
		return domain.BudgetItem{}, domain.ErrValidation
	}
	item := domain.BudgetItem{
		ID:     a.newID(),
		Title:  strings.TrimSpace(title),
		Amount: amount,
		Date:   dateutil.DateKey(a.now()),
		Notes:  strings.TrimSpace(notes),
	}
	if item.Title == "" || item.Amount < 0 {
		return domain.BudgetItem{}, domain.ErrValidation
	}
	a.budgets[idx].Items = append(a.budgets[idx].Items, item)
	a.persistBudgets(ctx)
	a.emit("budget_item_add", map[string]any{"budget": budgetID, "id": item.ID, "title": item.Title})
	return item, nil
}

// DeleteBudgetItem removes one planned category from a budget and arms the
// undo slot. Transactions referencing the item keep their itemId; the
// reference simply dangles.
func (a *App) DeleteBudgetItem(ctx context.Context, budgetID, itemID string) {
	idx := a.budgetIndex(budgetID)
	if idx < 0 {
		return
	}
	items := a.budgets[idx].Items
	for i := range items {
		if items[i].ID == itemID {
			removed := items[i]
			a.budgets[idx].Items = append(items[:i], items[i+1:]...)
			a.armUndo(func(ctx context.Context) {
				// The budget may have been deleted meanwhile.
				bIdx := a.budgetIndex(budgetID)
				if bIdx < 0 {
					return
				}
				cur := a.budgets[bIdx].Items
				a.budgets[bIdx].Items = slices.Insert(cur, min(i, len(cur)), removed)
				a.persistBudgets(ctx)
				a.emit("budget_item_restore", map[string]any{"budget": budgetID, "id": removed.ID})
			})
			a.persistBudgets(ctx)
			a.emit("budget_item_delete", map[string]any{"budget": budgetID, "id": removed.ID})
			return
		}
	}
}

// AddTransaction records a movement against a budget. Expenses are
// negative, income positive; itemID optionally links a planned category.
func (a *App) AddTransaction(ctx context.Context, budgetID string, amount float64, description, itemID string) (domain.Transaction, error) {
	idx := a.budgetIndex(budgetID)
	if idx < 0 {
		return domain.Transaction{}, domain.ErrValidation
	}
	txn := domain.Transaction{
		ID:          a.newID(),
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Date:        dateutil.DateKey(a.now()),
		ItemID:      itemID,
	}
	if txn.Description == "" {
		return domain.Transaction{}, domain.ErrValidation
	}
	a.budgets[idx].Transactions = append(a.budgets[idx].Transactions, txn)
	a.persistBudgets(ctx)
	a.emit("transaction_add", map[string]any{"budget": budgetID, "id": txn.ID, "amount": txn.Amount})
	return txn, nil
}

// DeleteTransaction removes one recorded movement from a budget and arms
// the undo slot.
func (a *App) DeleteTransaction(ctx context.Context, budgetID, txnID string) {
	idx := a.budgetIndex(budgetID)
	if idx < 0 {
		return
	}
	txns := a.budgets[idx].Transactions
	for i := range txns {
		if txns[i].ID == txnID {
			removed := txns[i]
			a.budgets[idx].Transactions = append(txns[:i], txns[i+1:]...)
			a.armUndo(func(ctx context.Context) {
				// The budget may have been deleted meanwhile.
				bIdx := a.budgetIndex(budgetID)
				if bIdx < 0 {
					return
				}
				cur := a.budgets[bIdx].Transactions
				a.budgets[bIdx].Transactions = slices.Insert(cur, min(i, len(cur)), removed)
				a.persistBudgets(ctx)
				a.emit("transaction_restore", map[string]any{"budget": budgetID, "id": removed.ID})
			})
			a.persistBudgets(ctx)
			a.emit("transaction_delete", map[string]any{"budget": budgetID, "id": removed.ID})
			return
		}
	}
}

func (a *App) budgetIndex(budgetID string) int {
	for i := range a.budgets {
		if a.budgets[i].ID == budgetID {
			return i
		}
	}
	return -1
}

// Budgets returns a copy of the budget collection.
func (a *App) Budgets() []domain.Budget {
	out := make([]domain.Budget, len(a.budgets))
	copy(out, a.budgets)
	return out
}
