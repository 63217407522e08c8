package formatter

import (
	"fmt"
	"strings"

	"github.com/alexvidal/xptrack/internal/i18n"
	"github.com/alexvidal/xptrack/internal/view"
)

// FormatBudgets renders each budget as a block: name, usage bar, and the
// budgeted/spent/remaining amounts.
func FormatBudgets(summaries []view.BudgetSummary, tr *i18n.Bundle) string {
	if len(summaries) == 0 {
		return Dim(tr.T("budgets.empty"))
	}

	blocks := make([]string, 0, len(summaries))
	for _, s := range summaries {
		var b strings.Builder
		b.WriteString(Bold(s.Budget.Name) + "  " + RenderProgress(s.PercentUsed/100, 18) + "\n")
		b.WriteString("  " + tr.T("budgets.total", map[string]any{"amount": Money(s.Total, s.Budget.Currency)}) + "\n")
		b.WriteString("  " + tr.T("budgets.spent", map[string]any{"amount": Money(s.Spent, s.Budget.Currency)}) + "\n")
		b.WriteString("  " + tr.T("budgets.remaining", map[string]any{"amount": Money(s.Remaining, s.Budget.Currency)}))
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// FormatBudgetDetail renders one budget with its item table and recent
// transactions.
func FormatBudgetDetail(s view.BudgetSummary, tr *i18n.Bundle) string {
	var b strings.Builder
	b.WriteString(Header(s.Budget.Name) + "\n")
	b.WriteString(RenderProgress(s.PercentUsed/100, 24) + "\n\n")

	if len(s.Budget.Items) > 0 {
		rows := make([][]string, 0, len(s.Budget.Items))
		for _, item := range s.Budget.Items {
			rows = append(rows, []string{
				item.Title,
				Money(item.Amount, s.Budget.Currency),
				Dim(item.Notes),
			})
		}
		b.WriteString(RenderTable([]string{"Item", "Amount", "Notes"}, rows) + "\n")
	}

	if len(s.Budget.Transactions) > 0 {
		rows := make([][]string, 0, len(s.Budget.Transactions))
		for _, txn := range s.Budget.Transactions {
			amount := Money(txn.Amount, s.Budget.Currency)
			if txn.Amount < 0 {
				amount = StyleRed.Render(amount)
			} else {
				amount = StyleGreen.Render(amount)
			}
			rows = append(rows, []string{txn.Date, txn.Description, amount})
		}
		b.WriteString(RenderTable([]string{"Date", "Description", "Amount"}, rows) + "\n")
	}

	b.WriteString(fmt.Sprintf("%s · %s · %s",
		tr.T("budgets.total", map[string]any{"amount": Money(s.Total, s.Budget.Currency)}),
		tr.T("budgets.spent", map[string]any{"amount": Money(s.Spent, s.Budget.Currency)}),
		tr.T("budgets.remaining", map[string]any{"amount": Money(s.Remaining, s.Budget.Currency)}),
	))
	return b.String()
}
