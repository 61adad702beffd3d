// Package tuimsg defines the messages exchanged between the root model and
// its scenes.
package tuimsg

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// CalculatorSelectedMsg opens a calculator
type CalculatorSelectedMsg struct {
	Kind domain.Kind
}

// RecalculateMsg carries a fresh input snapshot. Revision increases with
// every edit so results computed for older snapshots can be recognised.
type RecalculateMsg struct {
	Revision uint64
	Request  domain.Request
}

// ResultMsg carries the engine's answer for one snapshot
type ResultMsg struct {
	Revision uint64
	Outcome  domain.Outcome
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
