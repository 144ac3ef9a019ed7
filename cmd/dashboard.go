package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/fintrack/internal/expense"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the financial overview and recent activity",
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

		d, err := a.Expenses.Dashboard(cmd.Context(), u.ID, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Welcome back, %s!\n\n", u.FirstName)

		fmt.Println("Financial Overview")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "  Total Expenses\t$%s\n", d.Overview.Total)
		fmt.Fprintf(w, "  This Month\t$%s\n", d.Overview.ThisMonth)
		fmt.Fprintf(w, "  Last Month\t$%s\n", d.Overview.LastMonth)
		w.Flush()

		fmt.Println("\nRecent Activity")
		if len(d.Recent) == 0 {
			fmt.Println("  No recent activity")
			return nil
		}

		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, e := range d.Recent {
			cat := expense.LookupCategory(e.Category)
			fmt.Fprintf(w, "  %s\t%s\t%s\t$%s\n", e.Date, e.Name, cat.Label, e.Amount)
		}
		w.Flush()
		return nil
	},
}
