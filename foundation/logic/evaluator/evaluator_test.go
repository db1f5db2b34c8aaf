// File: evaluator_test.go
// Title: Evaluator Tests
// Description: Tests for premise ingestion, conclusion checking, truth
//              table shape, semantic and resource errors and the table sink.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test coverage

package evaluator

import (
	"errors"
	"reflect"
	"testing"

	v8ast "github.com/msto63/valid8/foundation/logic/ast"
	v8parser "github.com/msto63/valid8/foundation/logic/parser"
)

func mustParse(t *testing.T, input string) *v8ast.Program {
	t.Helper()
	program, err := v8parser.NewParser(v8parser.NewLexer(input), v8parser.Options{}).ParseProgramStrict()
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return program
}

func evaluate(t *testing.T, opts Options, input string) (*Result, error) {
	t.Helper()
	return New(opts).Evaluate(mustParse(t, input), NewEnvironment())
}

func TestEvaluateVerdicts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{
			name:  "modus ponens",
			input: "PREMISE: IMPLIES(p, q); PREMISE: p; THEREFORE: q;",
			valid: true,
		},
		{
			name:  "affirming the consequent",
			input: "PREMISE: IMPLIES(p, q); PREMISE: q; THEREFORE: p;",
			valid: false,
		},
		{
			name:  "modus tollens",
			input: "PREMISE: IMPLIES(p, q); PREMISE: NOT(q); THEREFORE: NOT(p);",
			valid: true,
		},
		{
			name:  "denying the antecedent",
			input: "PREMISE: IMPLIES(p, q); PREMISE: NOT(p); THEREFORE: NOT(q);",
			valid: false,
		},
		{
			name:  "hypothetical syllogism",
			input: "PREMISE: IMPLIES(p, q); PREMISE: IMPLIES(q, r); THEREFORE: IMPLIES(p, r);",
			valid: true,
		},
		{
			name:  "NO is an alias for NOT",
			input: "PREMISE: IMPLIES(p, q); PREMISE: NO(q); THEREFORE: NO(p);",
			valid: true,
		},
		{
			name:  "quantifier evaluates as its body",
			input: "PREMISE: IMPLIES(p, q); PREMISE: p; THEREFORE: ALL(x, q);",
			valid: true,
		},
		{
			name:  "disjunctive conclusion",
			input: "PREMISE: IMPLIES(p, q); PREMISE: p; THEREFORE: OR(q, p);",
			valid: true,
		},
		{
			name:  "conclusion without premises",
			input: "PREMISE: IS(dog, animal); THEREFORE: IS(dog, animal);",
			valid: true,
		},
		{
			name:  "fact mismatch",
			input: "PREMISE: IS(dog, animal); PREMISE: IMPLIES(p, q); THEREFORE: IS(dog, cat);",
			valid: false,
		},
		{
			name:  "fact substitution on both sides",
			input: "PREMISE: IS(dog, animal); PREMISE: IS(cat, animal); THEREFORE: IS(dog, cat);",
			valid: true,
		},
		{
			name:  "atomic consequent premise keeps the premises consistent",
			input: "PREMISE: IS(socrates, human); PREMISE: IMPLIES(IS(socrates, human), IS(socrates, mortal)); THEREFORE: NOT(IS(socrates, mortal));",
			valid: false,
		},
		{
			name:  "atomic conclusion matching the fact",
			input: "PREMISE: IS(socrates, human); PREMISE: IMPLIES(IS(socrates, human), IS(socrates, mortal)); THEREFORE: IS(socrates, human);",
			valid: true,
		},
		{
			name:  "atomic conclusion contradicting the fact",
			input: "PREMISE: IS(socrates, human); PREMISE: IMPLIES(IS(socrates, human), IS(socrates, mortal)); THEREFORE: IS(socrates, immortal);",
			valid: false,
		},
		{
			name:  "atomic antecedent",
			input: "PREMISE: IS(socrates, human); PREMISE: IMPLIES(IS(socrates, human), mortal); THEREFORE: mortal;",
			valid: true,
		},
		{
			name:  "atomic antecedent negated conclusion",
			input: "PREMISE: IS(socrates, human); PREMISE: IMPLIES(IS(socrates, human), mortal); THEREFORE: NOT(mortal);",
			valid: false,
		},
		{
			name:  "shared fact value",
			input: "PREMISE: IS(x, udin); PREMISE: IS(y, udin); THEREFORE: IS(x, y);",
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := evaluate(t, Options{}, tt.input)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v", result.Valid, tt.valid)
			}
		})
	}
}

func TestEvaluateTableShape(t *testing.T) {
	result, err := evaluate(t, Options{}, "PREMISE: IMPLIES(p, q); PREMISE: p; THEREFORE: q;")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	wantHeaders := []string{"p", "q", "p → q", "(p → q) ∧ p", "((p → q) ∧ p) → q"}
	if !reflect.DeepEqual(result.Table.Headers, wantHeaders) {
		t.Errorf("Headers = %q, want %q", result.Table.Headers, wantHeaders)
	}
	if result.Table.RowCount() != 4 {
		t.Errorf("RowCount() = %d, want 4", result.Table.RowCount())
	}
	if len(result.Table.Rows) != 4*5 {
		t.Errorf("len(Rows) = %d, want 20", len(result.Table.Rows))
	}
	if result.Conclusion != "((p → q) ∧ p) → q" {
		t.Errorf("Conclusion = %q", result.Conclusion)
	}
	if !reflect.DeepEqual(result.Variables, []string{"p", "q"}) {
		t.Errorf("Variables = %v", result.Variables)
	}

	// bit i of the row index is variable i
	want := [][]bool{
		{false, false, true, false, true},
		{true, false, false, false, true},
		{false, true, true, false, true},
		{true, true, true, true, true},
	}
	for i, row := range want {
		if got := result.Table.Row(i); !reflect.DeepEqual(got, row) {
			t.Errorf("Row(%d) = %v, want %v", i, got, row)
		}
	}
}

func TestEvaluateTableShapeThreeVariables(t *testing.T) {
	result, err := evaluate(t, Options{},
		"PREMISE: IMPLIES(p, q); PREMISE: IMPLIES(q, r); THEREFORE: IMPLIES(p, r);")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	// 2^n rows, n variables + 2 premise models + final model
	if result.Table.RowCount() != 8 {
		t.Errorf("RowCount() = %d, want 8", result.Table.RowCount())
	}
	if result.Table.Width() != 3+2+1 {
		t.Errorf("Width() = %d, want 6", result.Table.Width())
	}
	if got := result.Table.Headers[4]; got != "(p → q) ∧ (q → r)" {
		t.Errorf("Headers[4] = %q", got)
	}
}

func TestEvaluateSemanticErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  SemanticKind
	}{
		{
			name:  "empty conclusion",
			input: "PREMISE: IMPLIES(p, q); THEREFORE: ;",
			kind:  EmptyConclusion,
		},
		{
			name:  "identifier premise before any model",
			input: "PREMISE: p; THEREFORE: p;",
			kind:  PremiseOrder,
		},
		{
			name:  "negation premise before any model",
			input: "PREMISE: NOT(p); THEREFORE: p;",
			kind:  PremiseOrder,
		},
		{
			name:  "conjunction premise",
			input: "PREMISE: AND(p, q); THEREFORE: p;",
			kind:  UnsupportedPremise,
		},
		{
			name:  "quantifier premise",
			input: "PREMISE: FORALL(x, p); THEREFORE: p;",
			kind:  UnsupportedPremise,
		},
		{
			name:  "empty premise",
			input: "PREMISE: ; THEREFORE: p;",
			kind:  UnsupportedPremise,
		},
		{
			name:  "undefined identifier",
			input: "PREMISE: IMPLIES(p, q); THEREFORE: r;",
			kind:  UndefinedVariable,
		},
		{
			name:  "undefined identifier inside negation",
			input: "PREMISE: IMPLIES(p, q); THEREFORE: NOT(r);",
			kind:  UndefinedVariable,
		},
		{
			name:  "premise after the conclusion",
			input: "PREMISE: IMPLIES(p, q); THEREFORE: q; PREMISE: p;",
			kind:  PremiseOrder,
		},
		{
			name:  "atomic conclusion without fact",
			input: "PREMISE: IMPLIES(p, q); THEREFORE: IS(cat, animal);",
			kind:  UndefinedVariable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := evaluate(t, Options{}, tt.input)
			if result != nil {
				t.Errorf("Evaluate() result = %+v, want nil", result)
			}

			var semErr *SemanticError
			if !errors.As(err, &semErr) {
				t.Fatalf("Evaluate() error = %v, want *SemanticError", err)
			}
			if semErr.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", semErr.Kind, tt.kind)
			}
		})
	}
}

func TestEvaluateEmptyConclusionMessage(t *testing.T) {
	_, err := evaluate(t, Options{}, "PREMISE: IMPLIES(p, q);\nTHEREFORE: ;")
	want := "semantic error at line 2, column 1: THEREFORE cannot be empty"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestEvaluateNoConclusion(t *testing.T) {
	result, err := evaluate(t, Options{}, "PREMISE: IMPLIES(p, q); PREMISE: p;")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Valid {
		t.Error("Valid = true, want false")
	}
	if result.Table != nil {
		t.Error("Table should be nil without a conclusion")
	}
}

func TestEvaluateLastConclusionWins(t *testing.T) {
	result, err := evaluate(t, Options{},
		"PREMISE: IMPLIES(p, q); PREMISE: p; THEREFORE: p; THEREFORE: q;")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Conclusion != "((p → q) ∧ p) → q" {
		t.Errorf("Conclusion = %q", result.Conclusion)
	}
}

func TestEvaluateSkipsUnlabelledStatements(t *testing.T) {
	result, err := evaluate(t, Options{}, "PREMISE: IMPLIES(p, q); r; PREMISE: p; THEREFORE: q;")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !result.Valid {
		t.Error("Valid = false, want true")
	}
	if len(result.Variables) != 2 {
		t.Errorf("Variables = %v, want [p q]", result.Variables)
	}
}

func TestEvaluateResourceLimit(t *testing.T) {
	_, err := evaluate(t, Options{MaxVariables: 2},
		"PREMISE: IMPLIES(p, q); PREMISE: IMPLIES(q, r); THEREFORE: r;")

	var resErr *ResourceError
	if !errors.As(err, &resErr) {
		t.Fatalf("error = %v, want *ResourceError", err)
	}
	if resErr.Variables != 3 || resErr.Limit != 2 {
		t.Errorf("ResourceError = %+v, want {3 2}", resErr)
	}
}

func TestNewClampsMaxVariables(t *testing.T) {
	tests := []struct {
		given int
		want  int
	}{
		{0, DefaultMaxVariables},
		{-1, DefaultMaxVariables},
		{8, 8},
		{HardMaxVariables + 1, HardMaxVariables},
	}

	for _, tt := range tests {
		if got := New(Options{MaxVariables: tt.given}).MaxVariables(); got != tt.want {
			t.Errorf("New(MaxVariables=%d).MaxVariables() = %d, want %d", tt.given, got, tt.want)
		}
	}
}

func TestEvaluateState(t *testing.T) {
	e := New(Options{})
	if e.State() != Idle {
		t.Errorf("State() = %v, want Idle", e.State())
	}

	if _, err := e.Evaluate(mustParse(t, "PREMISE: IMPLIES(p, q); THEREFORE: q;"), NewEnvironment()); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if e.State() != Done {
		t.Errorf("State() = %v, want Done", e.State())
	}

	if _, err := e.Evaluate(mustParse(t, "PREMISE: p; THEREFORE: p;"), NewEnvironment()); err == nil {
		t.Fatal("Evaluate() error = nil, want semantic error")
	}
	if e.State() != Done {
		t.Errorf("State() after error = %v, want Done", e.State())
	}
}

func TestEvaluateIdempotentAfterClear(t *testing.T) {
	input := "PREMISE: IS(dog, animal); PREMISE: IMPLIES(p, q); PREMISE: p; THEREFORE: q;"
	program := mustParse(t, input)
	env := NewEnvironment()
	e := New(Options{})

	first, err := e.Evaluate(program, env)
	if err != nil {
		t.Fatalf("first Evaluate() error = %v", err)
	}

	env.Clear()
	second, err := e.Evaluate(program, env)
	if err != nil {
		t.Fatalf("second Evaluate() error = %v", err)
	}

	if !reflect.DeepEqual(first.Table, second.Table) {
		t.Errorf("tables differ after Clear:\n%v\n%v", first.Table, second.Table)
	}
	if first.Valid != second.Valid {
		t.Errorf("verdict differs after Clear")
	}
}

func TestEvaluateEnvironmentPersistsWithoutClear(t *testing.T) {
	env := NewEnvironment()
	e := New(Options{})

	if _, err := e.Evaluate(mustParse(t, "PREMISE: IS(dog, animal); PREMISE: IMPLIES(p, q); THEREFORE: q;"), env); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	// the fact from the first argument is still known
	result, err := e.Evaluate(mustParse(t, "PREMISE: IMPLIES(p, q); THEREFORE: IS(dog, animal);"), env)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !result.Valid {
		t.Error("Valid = false, want true")
	}
	if got := len(env.Models()); got != 4 {
		t.Errorf("len(Models()) = %d, want 4", got)
	}
}

func TestEvaluateSink(t *testing.T) {
	var gotHeaders []string
	var gotRows int
	sink := TableSinkFunc(func(headers []string, rows []bool) error {
		gotHeaders = headers
		gotRows = len(rows)
		return nil
	})

	result, err := evaluate(t, Options{Sink: sink}, "PREMISE: IMPLIES(p, q); PREMISE: p; THEREFORE: q;")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !reflect.DeepEqual(gotHeaders, result.Table.Headers) {
		t.Errorf("sink headers = %q, want %q", gotHeaders, result.Table.Headers)
	}
	if gotRows != len(result.Table.Rows) {
		t.Errorf("sink rows = %d, want %d", gotRows, len(result.Table.Rows))
	}
}

func TestEvaluateSinkErrorKeepsVerdict(t *testing.T) {
	sink := TableSinkFunc(func([]string, []bool) error {
		return errors.New("broken pipe")
	})

	result, err := evaluate(t, Options{Sink: sink}, "PREMISE: IMPLIES(p, q); PREMISE: p; THEREFORE: q;")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !result.Valid {
		t.Error("Valid = false, want true")
	}
}

func TestTruthTableColumn(t *testing.T) {
	table := &TruthTable{
		Headers: []string{"p", "¬p"},
		Rows:    []bool{false, true, true, false},
	}

	if got := table.Column("¬p"); !reflect.DeepEqual(got, []bool{true, false}) {
		t.Errorf("Column(¬p) = %v", got)
	}
	if got := table.Column("q"); got != nil {
		t.Errorf("Column(q) = %v, want nil", got)
	}
	if got := (&TruthTable{}).RowCount(); got != 0 {
		t.Errorf("empty RowCount() = %d, want 0", got)
	}
}
