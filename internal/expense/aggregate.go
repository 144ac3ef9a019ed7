package expense

import (
	"sort"
	"time"

	"github.com/frahmantamala/fintrack/internal/core"
)

// DefaultRecentLimit is how many records the dashboard activity feed shows.
const DefaultRecentLimit = 5

// Overview holds the three dashboard sums. Records whose date does not parse
// still count toward Total but are left out of the month buckets.
type Overview struct {
	Total     core.Cents `json:"total"`
	ThisMonth core.Cents `json:"thisMonth"`
	LastMonth core.Cents `json:"lastMonth"`
}

// FilterByCategory returns the expenses whose category equals the given one,
// preserving input order. The CategoryAll sentinel returns the input slice
// unchanged.
func FilterByCategory(expenses []Expense, category string) []Expense {
	if category == CategoryAll {
		return expenses
	}
	filtered := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Category == category {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Summarize computes the dashboard sums relative to asOf. Buckets are
// calendar months: thisMonth is asOf's month and year, lastMonth the month
// immediately before it, wrapping a January asOf to December of the prior
// year.
func Summarize(expenses []Expense, asOf time.Time) Overview {
	thisYear, thisMonth, _ := asOf.Date()

	lastMonth := thisMonth - 1
	lastMonthYear := thisYear
	if thisMonth == time.January {
		lastMonth = time.December
		lastMonthYear = thisYear - 1
	}

	var o Overview
	for _, e := range expenses {
		o.Total += e.Amount

		d, ok := ParseDate(e.Date)
		if !ok {
			continue
		}
		y, m, _ := d.Date()
		switch {
		case y == thisYear && m == thisMonth:
			o.ThisMonth += e.Amount
		case y == lastMonthYear && m == lastMonth:
			o.LastMonth += e.Amount
		}
	}
	return o
}

// RecentActivity returns the limit most recently dated expenses, newest
// first. The sort is stable, so equally dated records keep their input order
// and the result is deterministic. Records without a parseable date sort
// last. The input slice is not mutated; limit <= 0 means DefaultRecentLimit.
func RecentActivity(expenses []Expense, limit int) []Expense {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	sorted := make([]Expense, len(expenses))
	copy(sorted, expenses)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, _ := ParseDate(sorted[i].Date)
		dj, _ := ParseDate(sorted[j].Date)
		return di.After(dj)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
