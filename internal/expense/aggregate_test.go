package expense_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/fintrack/internal/core"
	"github.com/frahmantamala/fintrack/internal/expense"
)

func TestExpense(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Expense Suite")
}

func makeExpense(id string, amount core.Cents, date, category string) expense.Expense {
	return expense.Expense{
		ID:       id,
		Name:     "expense " + id,
		Amount:   amount,
		Date:     date,
		Category: category,
		UserID:   "user-1",
	}
}

var _ = Describe("Summarize", func() {
	It("returns all-zero sums for an empty collection", func() {
		o := expense.Summarize(nil, time.Now())
		Expect(o.Total).To(Equal(core.Cents(0)))
		Expect(o.ThisMonth).To(Equal(core.Cents(0)))
		Expect(o.LastMonth).To(Equal(core.Cents(0)))

		o = expense.Summarize([]expense.Expense{}, time.Now())
		Expect(o).To(Equal(expense.Overview{}))
	})

	It("computes the worked example", func() {
		// 50 in June, 20 in May, 10 in April, as of 2025-06-30
		expenses := []expense.Expense{
			makeExpense("1", 5000, "2025-06-15", "food"),
			makeExpense("2", 2000, "2025-05-20", "travel"),
			makeExpense("3", 1000, "2025-04-01", "food"),
		}
		asOf := time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC)

		o := expense.Summarize(expenses, asOf)
		Expect(o.Total).To(Equal(core.Cents(8000)))
		Expect(o.ThisMonth).To(Equal(core.Cents(5000)))
		Expect(o.LastMonth).To(Equal(core.Cents(2000)))
	})

	It("includes the first day of the current month and the last day of the previous one", func() {
		expenses := []expense.Expense{
			makeExpense("1", 100, "2025-06-01", "food"),
			makeExpense("2", 200, "2025-05-31", "food"),
		}
		asOf := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

		o := expense.Summarize(expenses, asOf)
		Expect(o.ThisMonth).To(Equal(core.Cents(100)))
		Expect(o.LastMonth).To(Equal(core.Cents(200)))
	})

	It("wraps a January asOf to December of the prior year", func() {
		expenses := []expense.Expense{
			makeExpense("1", 300, "2025-01-10", "food"),
			makeExpense("2", 400, "2024-12-31", "food"),
			makeExpense("3", 500, "2024-12-01", "travel"),
			makeExpense("4", 600, "2023-12-15", "food"), // December, wrong year
		}
		asOf := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)

		o := expense.Summarize(expenses, asOf)
		Expect(o.ThisMonth).To(Equal(core.Cents(300)))
		Expect(o.LastMonth).To(Equal(core.Cents(900)))
		Expect(o.Total).To(Equal(core.Cents(1800)))
	})

	It("never reports a total below thisMonth plus lastMonth", func() {
		expenses := []expense.Expense{
			makeExpense("1", 100, "2025-06-10", "food"),
			makeExpense("2", 200, "2025-05-10", "food"),
			makeExpense("3", 300, "2025-03-10", "food"),
			makeExpense("4", 400, "2019-01-01", "food"),
		}
		asOf := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

		o := expense.Summarize(expenses, asOf)
		Expect(o.Total).To(BeNumerically(">=", o.ThisMonth+o.LastMonth))
		Expect(o.Total).To(Equal(core.Cents(1000)))
	})

	It("keeps records with unparseable dates in the total but out of the month buckets", func() {
		expenses := []expense.Expense{
			makeExpense("1", 100, "2025-06-10", "food"),
			makeExpense("2", 200, "not-a-date", "food"),
			makeExpense("3", 300, "", "food"),
		}
		asOf := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

		o := expense.Summarize(expenses, asOf)
		Expect(o.Total).To(Equal(core.Cents(600)))
		Expect(o.ThisMonth).To(Equal(core.Cents(100)))
		Expect(o.LastMonth).To(Equal(core.Cents(0)))
	})

	It("accepts RFC3339 timestamps as record dates", func() {
		expenses := []expense.Expense{
			makeExpense("1", 100, "2025-06-10T14:30:00Z", "food"),
		}
		asOf := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

		o := expense.Summarize(expenses, asOf)
		Expect(o.ThisMonth).To(Equal(core.Cents(100)))
	})
})

var _ = Describe("FilterByCategory", func() {
	var expenses []expense.Expense

	BeforeEach(func() {
		expenses = []expense.Expense{
			makeExpense("1", 100, "2025-06-01", "food"),
			makeExpense("2", 200, "2025-06-02", "travel"),
			makeExpense("3", 300, "2025-06-03", "food"),
		}
	})

	It("returns the input unchanged for the all sentinel", func() {
		result := expense.FilterByCategory(expenses, expense.CategoryAll)
		Expect(result).To(Equal(expenses))
	})

	It("keeps only matching expenses in input order", func() {
		result := expense.FilterByCategory(expenses, "food")
		Expect(result).To(HaveLen(2))
		Expect(result[0].ID).To(Equal("1"))
		Expect(result[1].ID).To(Equal("3"))
	})

	It("returns an empty slice when nothing matches", func() {
		result := expense.FilterByCategory(expenses, "housing")
		Expect(result).To(BeEmpty())
	})
})

var _ = Describe("RecentActivity", func() {
	It("returns the most recent expenses, newest first", func() {
		expenses := []expense.Expense{
			makeExpense("old", 100, "2025-01-01", "food"),
			makeExpense("newest", 200, "2025-06-20", "food"),
			makeExpense("middle", 300, "2025-03-15", "food"),
		}

		result := expense.RecentActivity(expenses, 2)
		Expect(result).To(HaveLen(2))
		Expect(result[0].ID).To(Equal("newest"))
		Expect(result[1].ID).To(Equal("middle"))
	})

	It("never returns more than limit elements and never ascends by date", func() {
		expenses := []expense.Expense{
			makeExpense("1", 1, "2025-06-01", "food"),
			makeExpense("2", 2, "2025-06-08", "food"),
			makeExpense("3", 3, "2025-06-03", "food"),
			makeExpense("4", 4, "2025-06-05", "food"),
		}

		result := expense.RecentActivity(expenses, 3)
		Expect(len(result)).To(BeNumerically("<=", 3))
		for i := 1; i < len(result); i++ {
			prev, _ := expense.ParseDate(result[i-1].Date)
			cur, _ := expense.ParseDate(result[i].Date)
			Expect(prev.Before(cur)).To(BeFalse())
		}
	})

	It("keeps input order for equal dates", func() {
		expenses := []expense.Expense{
			makeExpense("a", 1, "2025-06-01", "food"),
			makeExpense("b", 2, "2025-06-01", "food"),
			makeExpense("c", 3, "2025-06-01", "food"),
		}

		result := expense.RecentActivity(expenses, 5)
		Expect(result[0].ID).To(Equal("a"))
		Expect(result[1].ID).To(Equal("b"))
		Expect(result[2].ID).To(Equal("c"))
	})

	It("does not mutate the input", func() {
		expenses := []expense.Expense{
			makeExpense("1", 1, "2025-01-01", "food"),
			makeExpense("2", 2, "2025-06-01", "food"),
		}
		original := make([]expense.Expense, len(expenses))
		copy(original, expenses)

		expense.RecentActivity(expenses, 1)
		Expect(expenses).To(Equal(original))
	})

	It("defaults to five entries and sorts undated records last", func() {
		expenses := []expense.Expense{
			makeExpense("undated", 1, "???", "food"),
			makeExpense("1", 1, "2025-06-01", "food"),
			makeExpense("2", 2, "2025-06-02", "food"),
			makeExpense("3", 3, "2025-06-03", "food"),
			makeExpense("4", 4, "2025-06-04", "food"),
			makeExpense("5", 5, "2025-06-05", "food"),
			makeExpense("6", 6, "2025-06-06", "food"),
		}

		result := expense.RecentActivity(expenses, 0)
		Expect(result).To(HaveLen(5))
		for _, e := range result {
			Expect(e.ID).ToNot(Equal("undated"))
		}
	})
})
