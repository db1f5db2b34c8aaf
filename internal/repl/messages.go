// ============================================================================
// valid8 - Logical Argument Validator
// ============================================================================
//
// Package:     repl
// Description: Message types for the TUI
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

// entry is one checked argument in the TUI history
type entry struct {
	argument string
	output   string // table and verdict
	err      error
}

// checkResultMsg is sent when a check finished
type checkResultMsg struct {
	entry entry
}
