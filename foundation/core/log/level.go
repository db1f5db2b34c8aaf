// File: level.go
// Title: Log Level Definitions
// Description: Severity levels gating diagnostic output on stderr, so the
//              truth table and verdict on stdout stay clean.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with standard log levels

package log

import (
	"slices"
	"strings"
)

// Level orders log entries by severity
type Level int

const (
	// LevelTrace logs every token and every truth table row
	LevelTrace Level = iota

	// LevelDebug logs pipeline phases and ingested premises
	LevelDebug

	// LevelInfo logs one line per evaluated argument
	LevelInfo

	// LevelWarn logs recoverable oddities, e.g. an argument without conclusion
	LevelWarn

	// LevelError logs failed runs
	LevelError

	// LevelFatal logs a failure that terminates the program
	LevelFatal
)

// levelInfo carries the names and console colour of a level
type levelInfo struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levels = map[Level]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[37m", []string{"trc"}},
	LevelDebug: {"debug", "DBG", "\033[36m", []string{"dbg"}},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
	LevelFatal: {"fatal", "FTL", "\033[35m", []string{"ftl"}},
}

func (l Level) String() string {
	if info, ok := levels[l]; ok {
		return info.name
	}
	return "unknown"
}

// ShortString is the three letter tag of the console format
func (l Level) ShortString() string {
	if info, ok := levels[l]; ok {
		return info.short
	}
	return "???"
}

// Color returns the ANSI escape used for l on a terminal
func (l Level) Color() string {
	if info, ok := levels[l]; ok {
		return info.color
	}
	return "\033[0m"
}

// ShouldLog reports whether l passes the minLevel gate
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts a level name, its short tag or a common alias,
// case-insensitively. On failure it returns DefaultLevel and a *ParseError.
func ParseLevel(level string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(level))
	for l, info := range levels {
		if want == info.name || want == strings.ToLower(info.short) || slices.Contains(info.aliases, want) {
			return l, nil
		}
	}
	return DefaultLevel(), &ParseError{Input: level, Type: "level"}
}

// ParseError is an unrecognised level or format name
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel keeps stderr quiet unless something goes wrong
func DefaultLevel() Level {
	return LevelWarn
}
