package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexvidal/xptrack/internal/cli/formatter"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/view"
)

func newBudgetCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage budgets",
	}

	cmd.AddCommand(
		newBudgetAddCmd(a),
		newBudgetListCmd(a),
		newBudgetShowCmd(a),
		newBudgetRemoveCmd(a),
		newBudgetItemCmd(a),
		newBudgetTxnCmd(a),
	)

	return cmd
}

func newBudgetAddCmd(a *App) *cobra.Command {
	var name, currency string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			if promptForInput(cmd, a, "name") {
				vals := budgetFormValues{Name: name, Currency: currency}
				done, err := runForm(budgetForm(&SharedState{App: a}, &vals))
				if err != nil || !done {
					return err
				}
				name, currency = vals.Name, vals.Currency
			}
			budget, err := a.State.CreateBudget(cmd.Context(), name, currency)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.T("budgets.created", map[string]any{"name": budget.Name}))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Budget name")
	cmd.Flags().StringVar(&currency, "currency", "USD", "Currency code")

	return cmd
}

func newBudgetListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with their usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries := view.Budgets(a.State.Budgets())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBudgets(summaries, a.Bundle()))
			return nil
		},
	}
}

func newBudgetShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show a budget with items and transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			budgetID, err := resolveBudgetID(a, args[0])
			if err != nil {
				return err
			}
			budget, ok := findBudget(a, budgetID)
			if !ok {
				return fmt.Errorf("budget not found: %s", budgetID)
			}
			summaries := view.Budgets([]domain.Budget{budget})
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBudgetDetail(summaries[0], a.Bundle()))
			return nil
		},
	}
}

func newBudgetRemoveCmd(a *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove REF",
		Short: "Delete a budget with all its items and transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			budgetID, err := resolveBudgetID(a, args[0])
			if err != nil {
				return err
			}
			budget, ok := findBudget(a, budgetID)
			if !ok {
				return fmt.Errorf("budget not found: %s", budgetID)
			}
			if !force {
				// Budget deletion has no undo, so it needs an explicit yes.
				if a.IsInteractive == nil || !a.IsInteractive() {
					return fmt.Errorf("deleting a budget cannot be undone; re-run with --force")
				}
				confirmed := false
				title := a.T("common.confirm_delete", map[string]any{"title": budget.Name})
				done, err := runForm(confirmForm(&SharedState{App: a}, title, &confirmed))
				if err != nil || !done || !confirmed {
					return err
				}
			}
			a.State.DeleteBudget(cmd.Context(), budgetID)
			fmt.Fprintln(cmd.OutOrStdout(), a.T("budgets.deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete without confirmation")

	return cmd
}

func newBudgetItemCmd(a *App) *cobra.Command {
	var title, notes string
	var amount float64

	cmd := &cobra.Command{
		Use:   "item REF",
		Short: "Add a planned spending category to a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			budgetID, err := resolveBudgetID(a, args[0])
			if err != nil {
				return err
			}
			item, err := a.State.AddBudgetItem(cmd.Context(), budgetID, title, amount, notes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.T("budgets.item_added", map[string]any{"title": item.Title}))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Category title")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Allocated amount")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("amount")

	cmd.AddCommand(newBudgetItemRemoveCmd(a))

	return cmd
}

func newBudgetItemRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove BUDGET ITEM",
		Short: "Delete a planned category (undo available for a few seconds)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			budgetID, err := resolveBudgetID(a, args[0])
			if err != nil {
				return err
			}
			budget, ok := findBudget(a, budgetID)
			if !ok {
				return fmt.Errorf("budget not found: %s", budgetID)
			}
			itemID, err := resolveBudgetItemID(budget, args[1])
			if err != nil {
				return err
			}
			var title string
			for _, item := range budget.Items {
				if item.ID == itemID {
					title = item.Title
				}
			}
			a.State.DeleteBudgetItem(cmd.Context(), budgetID, itemID)
			fmt.Fprintln(cmd.OutOrStdout(), a.T("budgets.item_deleted", map[string]any{"title": title}))
			return nil
		},
	}
}

func newBudgetTxnCmd(a *App) *cobra.Command {
	var description, itemRef string
	var amount float64

	cmd := &cobra.Command{
		Use:   "txn REF",
		Short: "Record a transaction (negative amount = expense)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			budgetID, err := resolveBudgetID(a, args[0])
			if err != nil {
				return err
			}
			_, err = a.State.AddTransaction(cmd.Context(), budgetID, amount, description, itemRef)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.T("budgets.transaction_added"))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "Transaction description")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Signed amount")
	cmd.Flags().StringVar(&itemRef, "item", "", "Linked category id (optional)")
	_ = cmd.MarkFlagRequired("desc")
	_ = cmd.MarkFlagRequired("amount")

	cmd.AddCommand(newBudgetTxnRemoveCmd(a))

	return cmd
}

func newBudgetTxnRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove BUDGET TXN",
		Short: "Delete a recorded transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			budgetID, err := resolveBudgetID(a, args[0])
			if err != nil {
				return err
			}
			budget, ok := findBudget(a, budgetID)
			if !ok {
				return fmt.Errorf("budget not found: %s", budgetID)
			}
			txnID, err := resolveTransactionID(budget, args[1])
			if err != nil {
				return err
			}
			a.State.DeleteTransaction(cmd.Context(), budgetID, txnID)
			fmt.Fprintln(cmd.OutOrStdout(), a.T("budgets.transaction_deleted"))
			return nil
		},
	}
}
