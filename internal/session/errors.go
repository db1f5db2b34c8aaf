// ============================================================================
// valid8 - Logical Argument Validator
// ============================================================================
//
// Package:     session
// Description: Maps pipeline errors onto valid8 error codes
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package session

import (
	"errors"

	v8error "github.com/msto63/valid8/foundation/core/error"
	"github.com/msto63/valid8/foundation/logic"
	v8eval "github.com/msto63/valid8/foundation/logic/evaluator"
	v8parser "github.com/msto63/valid8/foundation/logic/parser"
)

// Classify wraps a pipeline error with its error code and position details.
// Errors that already carry a code are returned unchanged.
func Classify(err error) *v8error.Error {
	if err == nil {
		return nil
	}

	var v8err *v8error.Error
	if errors.As(err, &v8err) && v8err.Code() != v8error.CodeUnknown {
		return v8err
	}

	var (
		lexErr   *v8parser.LexicalError
		parseErr *v8parser.ParseError
		semErr   *v8eval.SemanticError
		resErr   *v8eval.ResourceError
		tooLarge *logic.InputTooLargeError
	)

	switch {
	case errors.As(err, &lexErr):
		return v8error.Wrap(err, "lexical analysis failed").
			WithCode(v8error.CodeLexical).
			WithDetail("line", lexErr.Line).
			WithDetail("column", lexErr.Column)

	case errors.As(err, &parseErr):
		wrapped := v8error.Wrap(err, "parsing failed").
			WithCode(v8error.CodeSyntax).
			WithDetail("line", parseErr.Line).
			WithDetail("column", parseErr.Column)
		var list v8parser.ErrorList
		if errors.As(err, &list) {
			wrapped = wrapped.WithDetail("count", len(list))
		}
		return wrapped

	case errors.As(err, &semErr):
		wrapped := v8error.Wrap(err, "evaluation failed").
			WithCode(v8error.CodeSemantic).
			WithDetail("kind", semErr.Kind.String())
		if semErr.Statement != nil {
			pos := semErr.Statement.Pos()
			wrapped = wrapped.WithDetail("line", pos.Line).WithDetail("column", pos.Column)
		}
		return wrapped

	case errors.As(err, &resErr):
		return v8error.Wrap(err, "truth table too large").
			WithCode(v8error.CodeResourceExhausted).
			WithDetail("variables", resErr.Variables).
			WithDetail("limit", resErr.Limit)

	case errors.As(err, &tooLarge):
		return v8error.Wrap(err, "input rejected").
			WithCode(v8error.CodeInputTooLarge).
			WithDetail("size", tooLarge.Size).
			WithDetail("limit", tooLarge.Limit)

	default:
		return v8error.Wrap(err, "argument check failed").
			WithCode(v8error.CodeInternal)
	}
}
