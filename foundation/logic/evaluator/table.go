// File: table.go
// Title: Truth Table
// Description: Row-major truth table produced by an evaluation, and the
//              sink interface through which the table reaches a renderer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial truth table

package evaluator

// TruthTable holds one row per assignment. Columns are the distinct
// variables followed by every model, the final implication last.
type TruthTable struct {
	Headers []string
	// Rows is row-major: cell (r, c) is Rows[r*len(Headers)+c]
	Rows []bool
}

// Width returns the number of columns
func (t *TruthTable) Width() int {
	return len(t.Headers)
}

// RowCount returns the number of rows
func (t *TruthTable) RowCount() int {
	if len(t.Headers) == 0 {
		return 0
	}
	return len(t.Rows) / len(t.Headers)
}

// Row returns a copy of row i
func (t *TruthTable) Row(i int) []bool {
	w := t.Width()
	return append([]bool(nil), t.Rows[i*w:(i+1)*w]...)
}

// Column returns the values of the named column, or nil if there is none
func (t *TruthTable) Column(header string) []bool {
	for c, h := range t.Headers {
		if h != header {
			continue
		}
		values := make([]bool, t.RowCount())
		for r := range values {
			values[r] = t.Rows[r*t.Width()+c]
		}
		return values
	}
	return nil
}

// TableSink receives the finished table of every checked argument.
// An error from Emit is logged and does not change the verdict.
type TableSink interface {
	Emit(headers []string, rows []bool) error
}

// TableSinkFunc adapts a function to TableSink
type TableSinkFunc func(headers []string, rows []bool) error

// Emit calls f
func (f TableSinkFunc) Emit(headers []string, rows []bool) error {
	return f(headers, rows)
}
