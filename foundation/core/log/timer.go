// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of a pipeline phase and logs it when
//              the phase ends.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with performance timing

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time. A second call is a no-op
// returning zero.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger == nil {
		return elapsed
	}

	entryFields := t.fields.Merge(Fields{
		"operation":   t.operation,
		"duration_ms": float64(elapsed.Nanoseconds()) / 1000000,
	})
	message := t.operation + " completed"

	switch t.level {
	case LevelTrace:
		t.logger.Trace(message, entryFields)
	case LevelInfo:
		t.logger.Info(message, entryFields)
	case LevelWarn:
		t.logger.Warn(message, entryFields)
	case LevelError:
		t.logger.Error(message, entryFields)
	default:
		t.logger.Debug(message, entryFields)
	}

	return elapsed
}

// StopWithError stops the timer and logs the failure with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		t.logger.ErrorWithErr(t.operation+" failed", err, t.fields.Merge(Fields{
			"operation":   t.operation,
			"duration_ms": float64(elapsed.Nanoseconds()) / 1000000,
			"success":     false,
		}))
	}

	return elapsed
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}
