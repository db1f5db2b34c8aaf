// ============================================================================
// valid8 - Logical Argument Validator
// ============================================================================
//
// Package:     repl
// Description: Line mode REPL on top of liner
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"

	"github.com/msto63/valid8/internal/session"
)

// prompter is the part of liner.State the loop needs
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// RunLine reads arguments line by line until exit, quit, Ctrl+C or EOF
func RunLine(cfg Config) error {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	return runLines(state, session.New(cfg.Session), cfg)
}

func runLines(p prompter, s *session.Session, cfg Config) error {
	out, errOut := cfg.output(), cfg.Errors
	if errOut == nil {
		errOut = os.Stderr
	}
	defer fmt.Fprintln(out, GoodbyeMessage)

	var buf Buffer
	for {
		prompt := cfg.Prompt
		if buf.Pending() {
			prompt = ContinuationPrompt
		}

		line, err := p.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if IsExit(line) {
			return nil
		}
		p.AppendHistory(line)

		argument, complete := buf.Add(line)
		if !complete {
			continue
		}
		if !HasPremises(argument) {
			fmt.Fprintln(out, NoInputMessage)
			continue
		}

		if _, err := s.Check(argument); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
	}
}
