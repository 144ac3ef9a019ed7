package expense

import (
	"time"

	"github.com/frahmantamala/fintrack/internal/core"
)

// Expense mirrors the record shape of the remote /expenses resource.
//
// Date, CreatedAt and UpdatedAt stay raw strings: the remote API performs no
// server-side validation, so a record can come back with a date the client
// did not write. Aggregation parses dates lazily and degrades per record
// instead of failing the whole fetch.
type Expense struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Amount      core.Cents `json:"amount"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	Category    string     `json:"category"`
	UserID      string     `json:"userId"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

// DateLayout is the calendar-date form the client writes.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate parses a record date. The bool reports whether any known layout
// matched; callers treat false as "undated" rather than as an error.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
