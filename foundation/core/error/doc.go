// Package error provides structured error handling for valid8.
//
// Package: error
// Title: valid8 Error Handling
// Description: This package implements a structured error type carrying an
//              error code, a severity, free-form details and the operation
//              that failed. The command layer wraps pipeline errors with it
//              so that logging and exit codes can be derived from one place.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with contextual errors and codes
//
// Usage:
//   import v8error "github.com/msto63/valid8/foundation/core/error"
//
//   err := v8error.Wrap(parseErr, "cannot parse argument").
//     WithCode(v8error.CodeSyntax).
//     WithDetail("file", "modus_ponens.v8").
//     WithOperation("check")
//
//   if v8error.HasCode(err, v8error.CodeSyntax) {
//     // report position to the user
//   }
package error
