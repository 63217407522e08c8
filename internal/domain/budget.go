package domain

import (
	"fmt"
	"math"
	"strings"
)

// BudgetItem is a budgeted allocation owned by its Budget.
type BudgetItem struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Notes  string  `json:"notes"`
}

// Transaction is a signed money movement owned by its Budget.
// Negative amounts are expenses, positive amounts are income/credits.
// ItemID optionally references a BudgetItem; the linkage is carried through
// persistence but no aggregate consumes it yet.
type Transaction struct {
	ID          string  `json:"id"`
	ItemID      string  `json:"itemId,omitempty"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

type Budget struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Currency     string        `json:"currency"`
	Items        []BudgetItem  `json:"items"`
	Transactions []Transaction `json:"transactions"`
}

// Validate checks the hard requirements for a budget.
func (b *Budget) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("budget name is required: %w", ErrValidation)
	}
	return nil
}

// Total returns the sum of all item allocations.
func (b *Budget) Total() float64 {
	var sum float64
	for _, it := range b.Items {
		sum += it.Amount
	}
	return sum
}

// Spent returns the sum of absolute transaction amounts, regardless of sign.
func (b *Budget) Spent() float64 {
	var sum float64
	for _, tx := range b.Transactions {
		sum += math.Abs(tx.Amount)
	}
	return sum
}

// Remaining returns Total minus Spent. Derived, never stored.
func (b *Budget) Remaining() float64 {
	return b.Total() - b.Spent()
}

// PercentUsed returns Spent as a percentage of Total, or 0 when nothing is
// allocated.
func (b *Budget) PercentUsed() float64 {
	total := b.Total()
	if total == 0 {
		return 0
	}
	return b.Spent() / total * 100
}
