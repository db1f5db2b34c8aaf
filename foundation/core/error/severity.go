// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses the
//              severity to choose the level an error is reported at.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem with the user's argument text
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure the user can usually work around
	SeverityMedium

	// SeverityHigh indicates a failure of the tool itself
	SeverityHigh

	// SeverityCritical indicates the tool cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeIO:
		return SeverityHigh

	case CodeResourceExhausted, CodeInputTooLarge:
		return SeverityMedium

	case CodeLexical, CodeSyntax, CodeSemantic, CodeInvalidInput:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
