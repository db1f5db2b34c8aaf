// File: logic.go
// Title: Argument Checking Engine
// Description: High-level entry point over lexer, parser and evaluator.
//              Tokenize, Parse and Check each run the pipeline up to the
//              named stage on one argument text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial engine implementation

package logic

import (
	"fmt"

	v8log "github.com/msto63/valid8/foundation/core/log"
	v8ast "github.com/msto63/valid8/foundation/logic/ast"
	v8eval "github.com/msto63/valid8/foundation/logic/evaluator"
	v8parser "github.com/msto63/valid8/foundation/logic/parser"
	v8token "github.com/msto63/valid8/foundation/logic/token"
)

// DefaultMaxInputLength is the largest accepted argument text (64 KiB)
const DefaultMaxInputLength = 64 * 1024

// Options configures the engine
type Options struct {
	// Logger for pipeline operations (optional, defaults to a no-op logger)
	Logger *v8log.Logger

	// MaxInputLength limits the argument text in bytes (default: 64 KiB)
	MaxInputLength int

	// MaxVariables limits the truth table (default: evaluator.DefaultMaxVariables)
	MaxVariables int

	// Sink receives every truth table (optional)
	Sink v8eval.TableSink
}

// InputTooLargeError rejects an argument text before lexing
type InputTooLargeError struct {
	Size  int
	Limit int
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input of %d bytes exceeds the limit of %d bytes", e.Size, e.Limit)
}

// Engine runs the pipeline. It is not safe for concurrent use.
type Engine struct {
	options   Options
	evaluator *v8eval.Evaluator
	logger    *v8log.Logger
}

// NewEngine creates an engine with the specified options
func NewEngine(opts ...Options) *Engine {
	var options Options
	if len(opts) > 0 {
		options = opts[0]
	}
	if options.Logger == nil {
		options.Logger = v8log.NewNop()
	}
	if options.MaxInputLength <= 0 {
		options.MaxInputLength = DefaultMaxInputLength
	}

	logger := options.Logger.WithField("component", "logic-engine")

	return &Engine{
		options: options,
		evaluator: v8eval.New(v8eval.Options{
			Logger:       options.Logger,
			MaxVariables: options.MaxVariables,
			Sink:         options.Sink,
		}),
		logger: logger,
	}
}

// Evaluator returns the evaluator used by Check
func (e *Engine) Evaluator() *v8eval.Evaluator {
	return e.evaluator
}

// Tokenize returns every token of input up to and including EOF
func (e *Engine) Tokenize(input string) ([]v8token.Token, error) {
	if err := e.validateInput(input); err != nil {
		return nil, err
	}
	return v8parser.NewLexer(input).WithLogger(e.options.Logger).Tokenize()
}

// Parse returns the program of input. Syntax errors are collected and
// returned together as a parser.ErrorList; a lexical error is returned as is.
func (e *Engine) Parse(input string) (*v8ast.Program, error) {
	if err := e.validateInput(input); err != nil {
		return nil, err
	}

	p := v8parser.NewParser(v8parser.NewLexer(input), v8parser.Options{Logger: e.options.Logger})
	program, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	if errs := p.Errors(); len(errs) > 0 {
		return nil, v8parser.ErrorList(errs)
	}
	return program, nil
}

// Check parses input and evaluates it against env
func (e *Engine) Check(input string, env *v8eval.Environment) (*v8eval.Result, error) {
	timer := e.logger.StartTimer("argument check").WithLevel(v8log.LevelDebug)

	// input errors are the caller's to report; the timer only traces them
	program, err := e.Parse(input)
	if err != nil {
		timer.WithField("error", err.Error()).Stop()
		return nil, err
	}

	result, err := e.evaluator.Evaluate(program, env)
	if err != nil {
		timer.WithField("error", err.Error()).Stop()
		return nil, err
	}

	timer.WithField("valid", result.Valid).Stop()
	return result, nil
}

func (e *Engine) validateInput(input string) error {
	if len(input) > e.options.MaxInputLength {
		e.logger.Warn("input rejected", v8log.Fields{
			"size":  len(input),
			"limit": e.options.MaxInputLength,
		})
		return &InputTooLargeError{Size: len(input), Limit: e.options.MaxInputLength}
	}
	return nil
}
