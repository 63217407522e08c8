package cli

import (
	"context"
	"strings"

	"github.com/alexvidal/xptrack/internal/cli/formatter"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/view"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// budgetsView lists budget summaries with a movable cursor.
type budgetsView struct {
	state  *SharedState
	cursor int
}

func newBudgetsView(state *SharedState) *budgetsView {
	return &budgetsView{state: state}
}

func (v *budgetsView) ID() ViewID    { return ViewBudgets }
func (v *budgetsView) Title() string { return v.state.T("budgets.title") }

func (v *budgetsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "→")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "+")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "✗")),
	}
}

func (v *budgetsView) Init() tea.Cmd { return nil }

func (v *budgetsView) summaries() []view.BudgetSummary {
	return view.Budgets(v.state.App.State.Budgets())
}

func (v *budgetsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		if n := len(v.summaries()); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *budgetsView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	st := v.state.App.State
	summaries := v.summaries()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}

	case "down", "j":
		if v.cursor < len(summaries)-1 {
			v.cursor++
		}

	case "enter":
		if v.cursor < len(summaries) {
			return v, pushView(newBudgetDetailView(v.state, summaries[v.cursor].Budget.ID))
		}

	case "a":
		vals := &budgetFormValues{}
		return v, startFormCmd(v.state, v.Title(), budgetForm(v.state, vals), func() tea.Cmd {
			b, err := st.CreateBudget(ctx, vals.Name, vals.Currency)
			if err != nil {
				return toast(formatter.StyleRed.Render(err.Error()))
			}
			return toast(v.state.T("budgets.created", map[string]any{"name": b.Name}))
		})

	case "d":
		if v.cursor < len(summaries) {
			b := summaries[v.cursor].Budget
			confirmed := false
			title := v.state.T("common.confirm_delete", map[string]any{"title": b.Name})
			return v, startFormCmd(v.state, v.Title(), confirmForm(v.state, title, &confirmed), func() tea.Cmd {
				if !confirmed {
					return nil
				}
				st.DeleteBudget(ctx, b.ID)
				return toast(v.state.T("budgets.deleted"))
			})
		}
	}

	return v, nil
}

func (v *budgetsView) View() string {
	summaries := v.summaries()
	tr := v.state.Bundle()

	var b strings.Builder
	b.WriteString("\n")

	if len(summaries) == 0 {
		b.WriteString("  " + formatter.Dim(tr.T("budgets.empty")) + "\n")
		return b.String()
	}

	for i, s := range summaries {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		b.WriteString(cursor + nameStyle.Render(formatter.PadRight(s.Budget.Name, 28)) +
			" " + formatter.RenderProgress(s.PercentUsed/100, 18) + "\n")
		b.WriteString("    " + formatter.Dim(
			tr.T("budgets.total", map[string]any{"amount": formatter.Money(s.Total, s.Budget.Currency)})+" · "+
				tr.T("budgets.spent", map[string]any{"amount": formatter.Money(s.Spent, s.Budget.Currency)})+" · "+
				tr.T("budgets.remaining", map[string]any{"amount": formatter.Money(s.Remaining, s.Budget.Currency)})) + "\n\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// budgetDetailView shows a single budget's items and transactions with a
// cursor spanning both sections.
type budgetDetailView struct {
	state    *SharedState
	budgetID string
	cursor   int
}

func newBudgetDetailView(state *SharedState, budgetID string) *budgetDetailView {
	return &budgetDetailView{state: state, budgetID: budgetID}
}

// rowCount is the number of selectable rows: planned items first, then
// transactions.
func (v *budgetDetailView) rowCount() int {
	b, ok := v.budget()
	if !ok {
		return 0
	}
	return len(b.Items) + len(b.Transactions)
}

func (v *budgetDetailView) ID() ViewID { return ViewBudgets }

func (v *budgetDetailView) Title() string {
	if b, ok := v.budget(); ok {
		return b.Name
	}
	return v.state.T("budgets.title")
}

func (v *budgetDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "+ item")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "+ txn")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "✗")),
	}
}

func (v *budgetDetailView) Init() tea.Cmd { return nil }

func (v *budgetDetailView) budget() (domain.Budget, bool) {
	for _, b := range v.state.App.State.Budgets() {
		if b.ID == v.budgetID {
			return b, true
		}
	}
	return domain.Budget{}, false
}

func (v *budgetDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(refreshViewMsg); ok {
		if n := v.rowCount(); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		return v, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	ctx := context.Background()
	st := v.state.App.State

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}

	case "down", "j":
		if v.cursor < v.rowCount()-1 {
			v.cursor++
		}

	case "d":
		b, ok := v.budget()
		if !ok || v.cursor >= v.rowCount() {
			return v, nil
		}
		hint := v.state.T("tasks.undo_hint", map[string]any{"seconds": "5"})
		if v.cursor < len(b.Items) {
			item := b.Items[v.cursor]
			st.DeleteBudgetItem(ctx, b.ID, item.ID)
			text := v.state.T("budgets.item_deleted", map[string]any{"title": item.Title})
			return v, tea.Batch(refreshViews(), toast(text+" · "+hint))
		}
		txn := b.Transactions[v.cursor-len(b.Items)]
		st.DeleteTransaction(ctx, b.ID, txn.ID)
		return v, tea.Batch(refreshViews(), toast(v.state.T("budgets.transaction_deleted")+" · "+hint))

	case "i":
		vals := &budgetItemFormValues{}
		return v, startFormCmd(v.state, v.Title(), budgetItemForm(v.state, vals), func() tea.Cmd {
			item, err := st.AddBudgetItem(ctx, v.budgetID, vals.Title, parseAmount(vals.Amount), vals.Notes)
			if err != nil {
				return toast(formatter.StyleRed.Render(err.Error()))
			}
			return toast(v.state.T("budgets.item_added", map[string]any{"title": item.Title}))
		})

	case "x":
		vals := &transactionFormValues{}
		return v, startFormCmd(v.state, v.Title(), transactionForm(v.state, vals), func() tea.Cmd {
			_, err := st.AddTransaction(ctx, v.budgetID, parseAmount(vals.Amount), vals.Description, "")
			if err != nil {
				return toast(formatter.StyleRed.Render(err.Error()))
			}
			return toast(v.state.T("budgets.transaction_added"))
		})
	}

	return v, nil
}

func (v *budgetDetailView) View() string {
	bd, ok := v.budget()
	if !ok {
		return "\n  " + formatter.Dim(v.state.T("budgets.empty")) + "\n"
	}
	s := view.Budgets([]domain.Budget{bd})[0]
	tr := v.state.Bundle()

	var b strings.Builder
	b.WriteString("\n  " + formatter.RenderProgress(s.PercentUsed/100, 24) + "\n\n")

	marker := func(row int) (string, bool) {
		if row == v.cursor {
			return formatter.StyleGreen.Render("▸ "), true
		}
		return "  ", false
	}

	for i, item := range bd.Items {
		cursor, selected := marker(i)
		titleStyle := formatter.StyleFg
		if selected {
			titleStyle = formatter.StyleBold
		}
		b.WriteString("  " + cursor + titleStyle.Render(formatter.PadRight(item.Title, 28)) +
			" " + formatter.Money(item.Amount, bd.Currency))
		if item.Notes != "" {
			b.WriteString("  " + formatter.Dim(item.Notes))
		}
		b.WriteString("\n")
	}
	if len(bd.Items) > 0 && len(bd.Transactions) > 0 {
		b.WriteString("\n")
	}

	for i, txn := range bd.Transactions {
		cursor, selected := marker(len(bd.Items) + i)
		descStyle := formatter.StyleFg
		if selected {
			descStyle = formatter.StyleBold
		}
		amount := formatter.Money(txn.Amount, bd.Currency)
		if txn.Amount < 0 {
			amount = formatter.StyleRed.Render(amount)
		} else {
			amount = formatter.StyleGreen.Render(amount)
		}
		b.WriteString("  " + cursor + formatter.Dim(txn.Date) + " " +
			descStyle.Render(formatter.PadRight(txn.Description, 24)) + " " + amount + "\n")
	}

	b.WriteString("\n  " + formatter.Dim(
		tr.T("budgets.total", map[string]any{"amount": formatter.Money(s.Total, bd.Currency)})+" · "+
			tr.T("budgets.spent", map[string]any{"amount": formatter.Money(s.Spent, bd.Currency)})+" · "+
			tr.T("budgets.remaining", map[string]any{"amount": formatter.Money(s.Remaining, bd.Currency)})) + "\n")

	return b.String()
}
