// File: errors.go
// Title: Evaluation Errors
// Description: Error types raised while evaluating an argument: semantic
//              errors for statements the evaluator cannot give a meaning
//              to and resource errors for truth tables that are too large.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial error types

package evaluator

import (
	"fmt"

	v8ast "github.com/msto63/valid8/foundation/logic/ast"
)

// SemanticKind classifies a SemanticError
type SemanticKind int

const (
	// EmptyConclusion is a THEREFORE label without a statement
	EmptyConclusion SemanticKind = iota
	// PremiseOrder is an identifier or negation premise before any model,
	// or a premise after a THEREFORE
	PremiseOrder
	// UnsupportedPremise is a premise kind that cannot be ingested
	UnsupportedPremise
	// UnsupportedConclusion is a conclusion kind that cannot be checked
	UnsupportedConclusion
	// UndefinedVariable is a conclusion name no premise introduced
	UndefinedVariable
)

func (k SemanticKind) String() string {
	switch k {
	case EmptyConclusion:
		return "empty-conclusion"
	case PremiseOrder:
		return "premise-order"
	case UnsupportedPremise:
		return "unsupported-premise"
	case UnsupportedConclusion:
		return "unsupported-conclusion"
	case UndefinedVariable:
		return "undefined-variable"
	default:
		return "unknown"
	}
}

// SemanticError aborts evaluation of the current argument
type SemanticError struct {
	Kind      SemanticKind
	Message   string
	Statement v8ast.Statement // may be nil
}

func (e *SemanticError) Error() string {
	if e.Statement != nil {
		pos := e.Statement.Pos()
		return fmt.Sprintf("semantic error at line %d, column %d: %s", pos.Line, pos.Column, e.Message)
	}
	return "semantic error: " + e.Message
}

func newSemanticError(kind SemanticKind, stmt v8ast.Statement, format string, args ...interface{}) *SemanticError {
	return &SemanticError{Kind: kind, Message: fmt.Sprintf(format, args...), Statement: stmt}
}

// ResourceError reports a truth table beyond the configured variable limit
type ResourceError struct {
	Variables int
	Limit     int
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("resource exhausted: %d distinct variables exceed the limit of %d (%d assignments)",
		e.Variables, e.Limit, uint64(1)<<uint(e.Variables))
}
