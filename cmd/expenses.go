package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/fintrack/internal/core"
	"github.com/frahmantamala/fintrack/internal/expense"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List and manage expenses",
}

// ----------------- list -----------------

var listCategory string

var expensesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your expenses, optionally filtered by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := a.requireUser(cmd.Context())
		if err != nil {
			return err
		}

		if listCategory != expense.CategoryAll && !expense.IsValidCategory(listCategory) {
			return fmt.Errorf("unknown category %q; valid: %s", listCategory, categoryIDs())
		}

		expenses, err := a.Expenses.List(cmd.Context(), u.ID, listCategory)
		if err != nil {
			return err
		}

		if len(expenses) == 0 {
			if listCategory == expense.CategoryAll {
				fmt.Println("No expenses found. Use 'fintrack expenses add' to record one.")
			} else {
				fmt.Printf("No expenses in %s category\n", expense.LookupCategory(listCategory).Label)
			}
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tNAME\tCATEGORY\tAMOUNT")
		for _, e := range expenses {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%s\n",
				e.ID, e.Date, e.Name, expense.LookupCategory(e.Category).Label, e.Amount)
		}
		return w.Flush()
	},
}

// ----------------- add -----------------

var (
	addName        string
	addAmount      string
	addCategory    string
	addDate        string
	addDescription string
)

var expensesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := a.requireUser(cmd.Context())
		if err != nil {
			return err
		}

		amount, err := core.ParseAmount(addAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", addAmount, err)
		}

		dto := expense.CreateExpenseDTO{
			Name:        addName,
			Amount:      amount,
			Description: addDescription,
			Category:    addCategory,
			Date:        addDate,
		}

		created, err := a.Expenses.Create(cmd.Context(), u.ID, dto)
		if err != nil {
			return err
		}

		fmt.Printf("Added %s ($%s) on %s [%s]\n",
			created.Name, created.Amount, created.Date, created.ID)
		return nil
	},
}

// ----------------- show -----------------

var expensesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.requireUser(cmd.Context()); err != nil {
			return err
		}

		e, err := a.Expenses.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		cat := expense.LookupCategory(e.Category)
		fmt.Printf("%s\t$%s\n", e.Name, e.Amount)
		fmt.Printf("Category:\t%s\n", cat.Label)
		fmt.Printf("Date:\t\t%s\n", e.Date)
		if e.Description != "" {
			fmt.Printf("Description:\t%s\n", e.Description)
		}
		return nil
	},
}

// ----------------- delete -----------------

var deleteYes bool

var expensesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.requireUser(cmd.Context()); err != nil {
			return err
		}

		e, err := a.Expenses.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if !deleteYes {
			ok, err := promptConfirm(fmt.Sprintf("Delete expense %q ($%s)?", e.Name, e.Amount))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := a.Expenses.Delete(cmd.Context(), e.ID); err != nil {
			return err
		}

		fmt.Println("Expense deleted.")
		return nil
	},
}

func categoryIDs() string {
	ids := make([]string, 0, len(expense.Categories))
	for _, c := range expense.Categories {
		ids = append(ids, c.ID)
	}
	return strings.Join(ids, ", ")
}

func init() {
	expensesListCmd.Flags().StringVarP(&listCategory, "category", "c", expense.CategoryAll, "Filter by category id")

	expensesAddCmd.Flags().StringVarP(&addName, "name", "n", "", "Expense name")
	expensesAddCmd.Flags().StringVarP(&addAmount, "amount", "a", "", "Amount, e.g. 12.50")
	expensesAddCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category id")
	expensesAddCmd.Flags().StringVarP(&addDate, "date", "d", time.Now().Format(expense.DateLayout), "Date (YYYY-MM-DD)")
	expensesAddCmd.Flags().StringVar(&addDescription, "description", "", "Free-text description")

	expensesDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")

	expensesCmd.AddCommand(expensesListCmd)
	expensesCmd.AddCommand(expensesAddCmd)
	expensesCmd.AddCommand(expensesShowCmd)
	expensesCmd.AddCommand(expensesDeleteCmd)
}
