package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexvidal/xptrack/internal/domain"
)

func TestCreateBudget(t *testing.T) {
	a, rec := newEmptyApp(t)

	budget, err := a.CreateBudget(context.Background(), "Household", "eur")
	require.NoError(t, err)
	assert.Equal(t, "EUR", budget.Currency)
	assert.Empty(t, budget.Items)
	assert.Empty(t, budget.Transactions)

	_, ok := rec.find("budget_create")
	assert.True(t, ok)
}

func TestCreateBudget_DefaultsCurrency(t *testing.T) {
	a, _ := newEmptyApp(t)

	budget, err := a.CreateBudget(context.Background(), "Plain", "")
	require.NoError(t, err)
	assert.Equal(t, "USD", budget.Currency)
}

func TestCreateBudget_EmptyNameRejected(t *testing.T) {
	a, _ := newEmptyApp(t)

	_, err := a.CreateBudget(context.Background(), "  ", "USD")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAddBudgetItem(t *testing.T) {
	a, _ := newEmptyApp(t)
	ctx := context.Background()
	budget, err := a.CreateBudget(ctx, "Monthly", "USD")
	require.NoError(t, err)

	item, err := a.AddBudgetItem(ctx, budget.ID, "Groceries", 400, "weekly shop")
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.InDelta(t, 400.0, a.Budgets()[0].Total(), 0.001)

	_, err = a.AddBudgetItem(ctx, budget.ID, "Negative", -5, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = a.AddBudgetItem(ctx, "missing", "Orphan", 10, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAddTransaction_AffectsSpent(t *testing.T) {
	a, _ := newEmptyApp(t)
	ctx := context.Background()
	budget, err := a.CreateBudget(ctx, "Monthly", "USD")
	require.NoError(t, err)
	item, err := a.AddBudgetItem(ctx, budget.ID, "Groceries", 400, "")
	require.NoError(t, err)

	txn, err := a.AddTransaction(ctx, budget.ID, -45.50, "market run", item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, txn.ItemID)

	got := a.Budgets()[0]
	assert.InDelta(t, 45.50, got.Spent(), 0.001)
	assert.InDelta(t, 354.50, got.Remaining(), 0.001)
}

func TestAddTransaction_RequiresDescription(t *testing.T) {
	a, _ := newEmptyApp(t)
	ctx := context.Background()
	budget, err := a.CreateBudget(ctx, "Monthly", "USD")
	require.NoError(t, err)

	_, err = a.AddTransaction(ctx, budget.ID, -10, "   ", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteBudgetItem_KeepsDanglingTransactions(t *testing.T) {
	a, _ := newEmptyApp(t)
	ctx := context.Background()
	budget, err := a.CreateBudget(ctx, "Monthly", "USD")
	require.NoError(t, err)
	item, err := a.AddBudgetItem(ctx, budget.ID, "Groceries", 400, "")
	require.NoError(t, err)
	_, err = a.AddTransaction(ctx, budget.ID, -20, "bread", item.ID)
	require.NoError(t, err)

	a.DeleteBudgetItem(ctx, budget.ID, item.ID)
	got := a.Budgets()[0]
	assert.Empty(t, got.Items)
	require.Len(t, got.Transactions, 1, "transactions survive their category")
	assert.Equal(t, item.ID, got.Transactions[0].ItemID)
}

func TestDeleteTransaction(t *testing.T) {
	a, _ := newEmptyApp(t)
	ctx := context.Background()
	budget, err := a.CreateBudget(ctx, "Monthly", "USD")
	require.NoError(t, err)
	txn, err := a.AddTransaction(ctx, budget.ID, -10, "snack", "")
	require.NoError(t, err)

	a.DeleteTransaction(ctx, budget.ID, txn.ID)
	assert.Empty(t, a.Budgets()[0].Transactions)
}

func TestDeleteBudget(t *testing.T) {
	a, _ := newEmptyApp(t)
	ctx := context.Background()
	budget, err := a.CreateBudget(ctx, "Doomed", "USD")
	require.NoError(t, err)

	a.DeleteBudget(ctx, budget.ID)
	assert.Empty(t, a.Budgets())

	stored, err := a.store.Budgets(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
