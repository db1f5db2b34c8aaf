// ============================================================================
// valid8 - Logical Argument Validator
// ============================================================================
//
// Package:     repl
// Description: Line accumulation for interactive input
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	"strings"
)

// Buffer collects input lines until an argument is complete. A line that
// contains THEREFORE completes the argument.
type Buffer struct {
	lines []string
}

// Add appends a line. When the line completes an argument, Add returns
// the whole argument and empties the buffer.
func (b *Buffer) Add(line string) (string, bool) {
	b.lines = append(b.lines, line)
	if !strings.Contains(line, "THEREFORE") {
		return "", false
	}

	argument := strings.Join(b.lines, "\n")
	b.Reset()
	return argument, true
}

// HasPremises reports whether argument carries anything before its
// THEREFORE
func HasPremises(argument string) bool {
	i := strings.Index(argument, "THEREFORE")
	if i < 0 {
		i = len(argument)
	}
	return strings.TrimSpace(argument[:i]) != ""
}

// Pending reports whether lines are waiting for a conclusion
func (b *Buffer) Pending() bool {
	return len(b.lines) > 0
}

// Len returns the number of buffered lines
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Reset drops buffered lines
func (b *Buffer) Reset() {
	b.lines = b.lines[:0]
}

// IsExit reports whether line asks to leave the REPL
func IsExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	return false
}
