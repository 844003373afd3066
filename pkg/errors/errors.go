package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrInvalidInput        = errors.New("invalid payroll input")
	ErrArithmeticOverflow  = errors.New("monetary amount beyond supported bounds")
	ErrInvalidBracketTable = errors.New("invalid tax bracket table")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeArithmeticOverflow  = "ARITHMETIC_OVERFLOW"
	ErrCodeInvalidBracketTable = "INVALID_BRACKET_TABLE"
)

// Wrap common errors with business context

func WrapInvalidInput(detail string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidInput,
		detail,
		ErrInvalidInput,
	)
}

func WrapNegativeAmount(field string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidInput,
		fmt.Sprintf("%s must not be negative", field),
		ErrInvalidInput,
	)
}

func WrapInvalidProration(daysWorked, totalDays int) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidInput,
		fmt.Sprintf("days_worked %d is not within (0, %d]", daysWorked, totalDays),
		ErrInvalidInput,
	)
}

func WrapArithmeticOverflow(field, amount string) *BusinessError {
	return NewBusinessError(
		ErrCodeArithmeticOverflow,
		fmt.Sprintf("%s amount %s exceeds the supported maximum", field, amount),
		ErrArithmeticOverflow,
	)
}

func WrapInvalidBracketTable(version, detail string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidBracketTable,
		fmt.Sprintf("bracket table %q: %s", version, detail),
		ErrInvalidBracketTable,
	)
}
