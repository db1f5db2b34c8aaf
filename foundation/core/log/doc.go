// Package log provides structured logging for valid8.
//
// Package: log
// Title: valid8 Structured Logging
// Description: Leveled structured logging with context fields, per-run
//              request IDs and JSON, text, console and logfmt output. The
//              lexer, parser and evaluator log their phases at debug and
//              trace level; the command layer logs failures through LogError.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Usage:
//   import v8log "github.com/msto63/valid8/foundation/core/log"
//
//   logger := v8log.New().
//     WithLevel(v8log.LevelDebug).
//     WithFormat(v8log.FormatLogfmt).
//     WithField("component", "evaluator").
//     WithRequestID(runID)
//
//   logger.Debug("premise ingested", v8log.Fields{"label": "p → q"})
//   logger.LogError(err)
//
//   timer := logger.StartTimer("truth_table")
//   // ... enumerate assignments
//   timer.Stop()
package log
