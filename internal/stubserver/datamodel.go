package stubserver

import (
	"github.com/frahmantamala/fintrack/internal/core"
	"github.com/frahmantamala/fintrack/internal/expense"
	"github.com/frahmantamala/fintrack/internal/user"
)

// userRow stores the password as received. The remote API this stub stands in
// for does no hashing, and the client's login depends on reading it back.
type userRow struct {
	ID        string `gorm:"primaryKey;column:id"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	Username  string `gorm:"column:username"`
	Password  string `gorm:"column:password"`
	CreatedAt string `gorm:"column:created_at"`
}

func (userRow) TableName() string {
	return "users"
}

func userRowFrom(rec user.Record) *userRow {
	return &userRow{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Username:  rec.Username,
		Password:  rec.Password,
		CreatedAt: rec.CreatedAt,
	}
}

func (r userRow) toRecord() user.Record {
	return user.Record{
		User: user.User{
			ID:        r.ID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Username:  r.Username,
			CreatedAt: r.CreatedAt,
		},
		Password: r.Password,
	}
}

type expenseRow struct {
	ID          string `gorm:"primaryKey;column:id"`
	Name        string `gorm:"column:name"`
	AmountCents int64  `gorm:"column:amount_cents"`
	Description string `gorm:"column:description"`
	Date        string `gorm:"column:date"`
	Category    string `gorm:"column:category"`
	UserID      string `gorm:"column:user_id"`
	CreatedAt   string `gorm:"column:created_at"`
	UpdatedAt   string `gorm:"column:updated_at"`
}

func (expenseRow) TableName() string {
	return "expenses"
}

func expenseRowFrom(e expense.Expense) *expenseRow {
	return &expenseRow{
		ID:          e.ID,
		Name:        e.Name,
		AmountCents: int64(e.Amount),
		Description: e.Description,
		Date:        e.Date,
		Category:    e.Category,
		UserID:      e.UserID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r expenseRow) toExpense() expense.Expense {
	return expense.Expense{
		ID:          r.ID,
		Name:        r.Name,
		Amount:      core.Cents(r.AmountCents),
		Description: r.Description,
		Date:        r.Date,
		Category:    r.Category,
		UserID:      r.UserID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
