package expense

import (
	"github.com/frahmantamala/fintrack/internal"
	"github.com/frahmantamala/fintrack/internal/core"
)

// CreateExpenseDTO is the form payload for recording an expense. Validation
// happens here, at the form boundary: the aggregator and the gateway never
// see an invalid record from this client.
type CreateExpenseDTO struct {
	Name        string     `json:"name"`
	Amount      core.Cents `json:"amount"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	Date        string     `json:"date"`
}

func (dto CreateExpenseDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeInvalidName)
	}
	if dto.Amount <= 0 {
		return internal.NewValidationError("amount must be positive", internal.ErrCodeInvalidAmount)
	}
	if dto.Category == "" {
		return internal.NewValidationError("category is required", internal.ErrCodeInvalidCategory)
	}
	if !IsValidCategory(dto.Category) {
		return internal.NewValidationError("unknown category "+dto.Category, internal.ErrCodeInvalidCategory)
	}
	if dto.Date == "" {
		return internal.NewValidationError("date is required", internal.ErrCodeInvalidDate)
	}
	if _, ok := ParseDate(dto.Date); !ok {
		return internal.NewValidationError("date must look like "+DateLayout, internal.ErrCodeInvalidDate)
	}
	return nil
}
