package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Validation failures the engine reports instead of a result
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrPPFTenure      = errors.New("ppf tenure below 15 years")
	ErrROINonPositive = errors.New("roi inputs must be positive")
	ErrNPSAge         = errors.New("nps age out of range")
)

// userMessages holds the short text shown next to an unavailable result
var userMessages = map[error]string{
	ErrInvalidInput:   "Please enter valid numbers.",
	ErrPPFTenure:      "Not allowed 15 years below.",
	ErrROINonPositive: "Initial value, final value and duration must be greater than zero.",
	ErrNPSAge:         "Age must be between 18 and 70.",
}

// ValidationError ties a validation failure to a calculator and its fields
type ValidationError struct {
	Kind   Kind
	Fields []string
	Err    error
}

// NewValidationError creates a validation error for the given fields
func NewValidationError(kind Kind, err error, fields ...string) *ValidationError {
	return &ValidationError{Kind: kind, Fields: fields, Err: err}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Kind, e.Err, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// UserMessage returns the short message a front end shows for err
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for sentinel, msg := range userMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return err.Error()
}
