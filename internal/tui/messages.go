package tui

import (
	"github.com/rgehrsitz/fincalc/internal/tui/tuimsg"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneCalculator
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// QuitMsg signals the application should exit
type QuitMsg struct{}

// Scene messages, re-exported for callers outside the scenes package
type (
	CalculatorSelectedMsg = tuimsg.CalculatorSelectedMsg
	RecalculateMsg        = tuimsg.RecalculateMsg
	ResultMsg             = tuimsg.ResultMsg
	ErrorMsg              = tuimsg.ErrorMsg
)
