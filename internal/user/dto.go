package user

import (
	"net/mail"
	"unicode/utf8"

	"github.com/frahmantamala/fintrack/internal"
)

// RegistrationDTO is the signup form payload. Validation happens client-side,
// the remote API accepts whatever it is sent.
type RegistrationDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

const (
	minNameLength     = 4
	minPasswordLength = 6
)

func (dto RegistrationDTO) Validate() error {
	if utf8.RuneCountInString(dto.FirstName) < minNameLength {
		return internal.NewValidationError("first name must be at least 4 characters", internal.ErrCodeValidationFailed)
	}
	if utf8.RuneCountInString(dto.LastName) < minNameLength {
		return internal.NewValidationError("last name must be at least 4 characters", internal.ErrCodeValidationFailed)
	}
	if dto.Username == "" {
		return internal.NewValidationError("email is required", internal.ErrCodeValidationFailed)
	}
	if _, err := mail.ParseAddress(dto.Username); err != nil {
		return internal.NewValidationError("invalid email format", internal.ErrCodeValidationFailed)
	}
	if utf8.RuneCountInString(dto.Password) < minPasswordLength {
		return internal.NewValidationError("password must be at least 6 characters", internal.ErrCodeValidationFailed)
	}
	return nil
}
