// ============================================================================
// valid8 - Logical Argument Validator
// ============================================================================
//
// Package:     session
// Description: Owns the environment and runs one argument at a time
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package session

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"

	v8error "github.com/msto63/valid8/foundation/core/error"
	v8log "github.com/msto63/valid8/foundation/core/log"
	"github.com/msto63/valid8/foundation/logic"
	v8eval "github.com/msto63/valid8/foundation/logic/evaluator"
	"github.com/msto63/valid8/internal/render"
	"github.com/msto63/valid8/pkg/core/config"
)

// Config holds session configuration
type Config struct {
	// Logger receives pipeline logs; every run adds its request ID
	Logger *v8log.Logger

	// Renderer draws the truth table of each run
	Renderer render.TableRenderer

	// Output receives tables and verdict lines
	Output io.Writer

	// Color enables the colored verdict
	Color bool

	MaxVariables   int
	MaxInputLength int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Renderer:       render.StyledRenderer{},
		Output:         os.Stdout,
		Color:          true,
		MaxVariables:   v8eval.DefaultMaxVariables,
		MaxInputLength: logic.DefaultMaxInputLength,
	}
}

// ConfigFrom builds a session configuration from the loaded application config
func ConfigFrom(cfg *config.Config, logger *v8log.Logger, output io.Writer) (Config, error) {
	renderer, err := render.New(cfg.Output.Table)
	if err != nil {
		return Config{}, v8error.Wrap(err, "invalid output configuration").
			WithCode(v8error.CodeInvalidConfig).
			WithDetail("field", "output.table")
	}

	return Config{
		Logger:         logger,
		Renderer:       renderer,
		Output:         output,
		Color:          cfg.Output.Color,
		MaxVariables:   cfg.Evaluator.MaxVariables,
		MaxInputLength: cfg.Evaluator.MaxInputLength,
	}, nil
}

// Stats counts the runs of a session
type Stats struct {
	Checked int // runs that produced a verdict
	Valid   int
	Invalid int
	Failed  int // runs stopped by an error
}

// Outcome is the result of one run
type Outcome struct {
	RequestID string
	Result    *v8eval.Result
}

// Session checks arguments against its own environment. It is safe for
// concurrent use; runs are serialised.
type Session struct {
	mu     sync.Mutex
	config Config
	env    *v8eval.Environment
	logger *v8log.Logger
	stats  Stats
}

// New creates a new session
func New(cfg Config) *Session {
	def := DefaultConfig()
	if cfg.Logger == nil {
		cfg.Logger = v8log.NewNop()
	}
	if cfg.Renderer == nil {
		cfg.Renderer = def.Renderer
	}
	if cfg.Output == nil {
		cfg.Output = def.Output
	}
	if cfg.MaxInputLength <= 0 {
		cfg.MaxInputLength = def.MaxInputLength
	}

	return &Session{
		config: cfg,
		env:    v8eval.NewEnvironment(),
		logger: cfg.Logger.WithField("component", "session"),
	}
}

// Check clears the environment, evaluates input and writes the truth table
// and verdict to the output. Pipeline errors come back as *v8error.Error
// with the matching code.
func (s *Session) Check(input string) (*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requestID := uuid.NewString()
	logger := s.logger.WithRequestID(requestID)

	s.env.Clear()

	engine := logic.NewEngine(logic.Options{
		Logger:         s.config.Logger.WithRequestID(requestID),
		MaxInputLength: s.config.MaxInputLength,
		MaxVariables:   s.config.MaxVariables,
		Sink:           render.SinkFor(s.config.Renderer, s.config.Output),
	})

	result, err := engine.Check(input, s.env)
	if err != nil {
		s.stats.Failed++
		wrapped := Classify(err).WithRequestID(requestID)
		logger.LogError(wrapped)
		return nil, wrapped
	}

	s.stats.Checked++
	if result.Valid {
		s.stats.Valid++
	} else {
		s.stats.Invalid++
	}

	if _, err := fmt.Fprintln(s.config.Output, render.Verdict(result.Valid, s.config.Color)); err != nil {
		return nil, v8error.Wrap(err, "failed to write verdict").
			WithCode(v8error.CodeIO).
			WithRequestID(requestID)
	}

	logger.Debug("run finished", v8log.Fields{
		"valid":     result.Valid,
		"variables": len(result.Variables),
	})

	return &Outcome{RequestID: requestID, Result: result}, nil
}

// CheckReader reads a whole argument from r and checks it
func (s *Session) CheckReader(r io.Reader) (*Outcome, error) {
	// one byte over the limit is enough for the engine to reject it
	data, err := io.ReadAll(io.LimitReader(r, int64(s.config.MaxInputLength)+1))
	if err != nil {
		return nil, v8error.Wrap(err, "failed to read argument").
			WithCode(v8error.CodeIO)
	}
	return s.Check(string(data))
}

// Environment returns the environment of the latest run
func (s *Session) Environment() *v8eval.Environment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.env
}

// Stats returns the run counters
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
