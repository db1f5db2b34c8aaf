// ============================================================================
// valid8 - Logical Argument Validator
// ============================================================================
//
// Package:     repl
// Description: Interactive argument checking in line or TUI mode
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"io"
	"os"

	"github.com/msto63/valid8/internal/session"
)

// Modes
const (
	ModeTUI  = "tui"
	ModeLine = "line"
)

// ContinuationPrompt is shown while an argument has no conclusion yet
const ContinuationPrompt = "...> "

// Messages
const (
	GoodbyeMessage = "Goodbye!"
	NoInputMessage = "No input to process."
)

// Config holds REPL configuration
type Config struct {
	// Session configures the checks; its Output is replaced in TUI mode
	Session session.Config

	Prompt string

	// Output receives REPL messages such as the goodbye line
	Output io.Writer

	// Errors receives error reports in line mode
	Errors io.Writer
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Session: session.DefaultConfig(),
		Prompt:  "valid8> ",
		Output:  os.Stdout,
		Errors:  os.Stderr,
	}
}

func (c Config) output() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stdout
}

// Run starts the REPL in the given mode
func Run(mode string, cfg Config) error {
	switch mode {
	case ModeTUI, "":
		return RunTUI(cfg)
	case ModeLine:
		return RunLine(cfg)
	default:
		return fmt.Errorf("unknown repl mode %q", mode)
	}
}
