package errors

import (
	"errors"
	"fmt"
)

// AppError represents a domain-specific error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

// Error codes for input-contract violations. These signal malformed or
// missing upstream data the caller was expected to prevent; they are never
// retried internally and propagate unchanged to the caller.
const (
	CodeUnsupportedUnit         = "UNSUPPORTED_UNIT"
	CodeUnknownActivityCategory = "UNKNOWN_ACTIVITY_CATEGORY"
	CodeUnknownFuelType         = "UNKNOWN_FUEL_TYPE"
	CodeEmptyInput              = "EMPTY_INPUT"
	CodeInvalidTargetRange      = "INVALID_TARGET_RANGE"
	CodeScopeMismatch           = "SCOPE_MISMATCH"
	CodeValidation              = "VALIDATION_FAILED"
)

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewValidationError(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func NewDomainError(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func IsUnsupportedUnit(err error) bool { return IsCode(err, CodeUnsupportedUnit) }

func IsUnknownActivityCategory(err error) bool { return IsCode(err, CodeUnknownActivityCategory) }

func IsUnknownFuelType(err error) bool { return IsCode(err, CodeUnknownFuelType) }

func IsEmptyInput(err error) bool { return IsCode(err, CodeEmptyInput) }

func IsInvalidTargetRange(err error) bool { return IsCode(err, CodeInvalidTargetRange) }

func IsScopeMismatch(err error) bool { return IsCode(err, CodeScopeMismatch) }
