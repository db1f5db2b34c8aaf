// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              argument pipeline (lexing, parsing, evaluation) and of the
//              surrounding tooling (configuration, input handling).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with pipeline error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeIO           Code = "IO_ERROR"

	// Argument pipeline
	CodeLexical           Code = "LOGIC_LEXICAL"
	CodeSyntax            Code = "LOGIC_SYNTAX"
	CodeSemantic          Code = "LOGIC_SEMANTIC"
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"
	CodeInputTooLarge     Code = "INPUT_TOO_LARGE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeIO,
		CodeLexical, CodeSyntax, CodeSemantic, CodeResourceExhausted, CodeInputTooLarge,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax, CodeSemantic:
		return "logic"
	case CodeResourceExhausted, CodeInputTooLarge:
		return "resource"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidInput, CodeIO:
		return "input"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status a command should use for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "logic", "resource":
		return 1
	case "input":
		return 2
	case "configuration":
		return 3
	default:
		return 4
	}
}
