package internal

import (
	"fmt"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeGateway      ErrorType = "GATEWAY_ERROR"
	ErrorTypeStorage      ErrorType = "STORAGE_ERROR"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidAmount    ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidCategory  ErrorCode = "INVALID_CATEGORY"
	ErrCodeInvalidDate      ErrorCode = "INVALID_DATE"
	ErrCodeInvalidName      ErrorCode = "INVALID_NAME"

	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeNotLoggedIn     ErrorCode = "NOT_LOGGED_IN"

	ErrCodeExpenseNotFound    ErrorCode = "EXPENSE_NOT_FOUND"
	ErrCodeGatewayUnavailable ErrorCode = "GATEWAY_UNAVAILABLE"
	ErrCodeSessionStorage     ErrorCode = "SESSION_STORAGE"
)

// AppError is the error shape shared across the client: services wrap
// transport and storage failures into one of these so command handlers only
// ever deal with a single taxonomy.
type AppError struct {
	Type    ErrorType `json:"type"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Code:    code,
		Message: message,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeUnauthorized,
		Code:    code,
		Message: message,
	}
}

func NewGatewayError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeGateway,
		Code:    ErrCodeGatewayUnavailable,
		Message: message,
		Cause:   cause,
	}
}

func NewStorageError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Code:    ErrCodeSessionStorage,
		Message: message,
		Cause:   cause,
	}
}

var (
	ErrUserNotFound    = NewNotFoundError("user not found", ErrCodeUserNotFound)
	ErrInvalidPassword = NewUnauthorizedError("invalid password", ErrCodeInvalidPassword)
	ErrNotLoggedIn     = NewUnauthorizedError("not logged in", ErrCodeNotLoggedIn)
	ErrExpenseNotFound = NewNotFoundError("expense not found", ErrCodeExpenseNotFound)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}
