// File: parser_test.go
// Title: Argument Parser Unit Tests
// Description: Unit tests for the recursive descent parser covering every
//              statement form, nesting, error positions and the collect-all
//              and fail-fast error surfaces.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test suite

package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	v8ast "github.com/msto63/valid8/foundation/logic/ast"
	v8token "github.com/msto63/valid8/foundation/logic/token"
)

func parse(input string) (*Parser, *v8ast.Program, error) {
	p := NewParser(NewLexer(input), Options{})
	program, err := p.ParseProgram()
	return p, program, err
}

func TestParser_ParseProgram(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Atomic premise",
			input:    "PREMISE: IS(dog, animal);",
			expected: []string{"PREMISE: dog animal"},
		},
		{
			name:     "Implication and conclusion",
			input:    "PREMISE: IMPLIES(p, q);\nPREMISE: p;\nTHEREFORE: q;",
			expected: []string{"PREMISE: IMPLIES(p, q)", "PREMISE: p", "THEREFORE: q"},
		},
		{
			name:     "Nested compound",
			input:    "PREMISE: IMPLIES(AND(p, q), OR(r, NOT(s)));",
			expected: []string{"PREMISE: IMPLIES(AND(p, q), OR(r, NOT(s)))"},
		},
		{
			name:     "Nested quantifier",
			input:    "THEREFORE: FORALL(x, EXISTS(y, IMPLIES(p, q)));",
			expected: []string{"THEREFORE: FORALL(x, EXISTS(y, IMPLIES(p, q)))"},
		},
		{
			name:     "Quantifier aliases",
			input:    "PREMISE: ALL(cat, animal); PREMISE: SOME(dog, pet);",
			expected: []string{"PREMISE: ALL(cat, animal)", "PREMISE: SOME(dog, pet)"},
		},
		{
			name:     "Predicates",
			input:    "PREMISE: HAS(cat, tail); PREMISE: CAN(bird, fly); PREMISE: ARE(dogs, mammals);",
			expected: []string{"PREMISE: cat tail", "PREMISE: bird fly", "PREMISE: dogs mammals"},
		},
		{
			name:     "Empty conclusion",
			input:    "THEREFORE: ;",
			expected: []string{"THEREFORE: "},
		},
		{
			name:     "Unlabelled identifier",
			input:    "p;",
			expected: []string{"p"},
		},
		{
			name:     "Empty statements are skipped",
			input:    ";; PREMISE: p;;",
			expected: []string{"PREMISE: p"},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, program, err := parse(tt.input)
			if err != nil {
				t.Fatalf("ParseProgram() error = %v", err)
			}
			if len(p.Errors()) > 0 {
				t.Fatalf("ParseProgram() errors = %v", ErrorList(p.Errors()))
			}

			var got []string
			for _, stmt := range program.Predicates {
				got = append(got, stmt.String())
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("statements = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParser_NodeTypes(t *testing.T) {
	_, program, err := parse("PREMISE: IMPLIES(p, NOT(q)); r; THEREFORE: IS(dog, animal);")
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	if len(program.Predicates) != 3 {
		t.Fatalf("got %d statements, want 3", len(program.Predicates))
	}

	premise, ok := program.Predicates[0].(*v8ast.LabelStatement)
	if !ok || !premise.IsPremise() {
		t.Fatalf("statement 0 = %T, want premise label", program.Predicates[0])
	}
	compound, ok := premise.Value.(*v8ast.CompoundStatement)
	if !ok || compound.Operator() != v8token.IMPLIES {
		t.Fatalf("premise value = %T, want IMPLIES compound", premise.Value)
	}
	if _, ok := compound.Right.(*v8ast.NegationStatement); !ok {
		t.Errorf("compound right = %T, want negation", compound.Right)
	}

	expr, ok := program.Predicates[1].(*v8ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement 1 = %T, want expression statement", program.Predicates[1])
	}
	if ident, ok := expr.Expression.(*v8ast.Identifier); !ok || ident.Value != "r" {
		t.Errorf("expression = %v, want identifier r", expr.Expression)
	}

	conclusion := program.Predicates[2].(*v8ast.LabelStatement)
	if !conclusion.IsConclusion() {
		t.Error("statement 2 should be a conclusion")
	}
	atomic, ok := conclusion.Value.(*v8ast.AtomicStatement)
	if !ok {
		t.Fatalf("conclusion value = %T, want atomic", conclusion.Value)
	}
	if atomic.TokenLiteral() != "IS" || atomic.Name.Value != "dog" {
		t.Errorf("atomic = %s %s", atomic.TokenLiteral(), atomic.Name.Value)
	}
	if pos := atomic.Pos(); pos.Line != 1 || pos.Column != 44 {
		t.Errorf("atomic position = %v, want 1:44", pos)
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		message  string
		line     int
		column   int
		near     string
		expected []v8token.Type
	}{
		{
			name:     "Missing comma",
			input:    "PREMISE: IS(dog animal);",
			message:  "expected COMMA, got IDENTIFIER",
			line:     1,
			column:   17,
			near:     "animal",
			expected: []v8token.Type{v8token.COMMA},
		},
		{
			name:     "Missing colon",
			input:    "PREMISE p;",
			message:  "expected COLON, got IDENTIFIER",
			line:     1,
			column:   9,
			near:     "p",
			expected: []v8token.Type{v8token.COLON},
		},
		{
			name:     "Missing open paren",
			input:    "PREMISE: NOT p;",
			message:  "expected LPAREN, got IDENTIFIER",
			line:     1,
			column:   14,
			near:     "p",
			expected: []v8token.Type{v8token.LPAREN},
		},
		{
			name:     "Missing close paren",
			input:    "PREMISE: NOT(p;",
			message:  "expected RPAREN, got SEMICOLON",
			line:     1,
			column:   15,
			near:     ";",
			expected: []v8token.Type{v8token.RPAREN},
		},
		{
			name:     "Missing terminator",
			input:    "PREMISE: p",
			message:  "statement must be terminated by ';'",
			line:     1,
			column:   11,
			near:     "EOF",
			expected: []v8token.Type{v8token.SEMICOLON},
		},
		{
			name:     "Input ends inside parentheses",
			input:    "PREMISE: IMPLIES(p, q",
			message:  "unexpected end of input, expected RPAREN",
			line:     1,
			column:   22,
			near:     "EOF",
			expected: []v8token.Type{v8token.RPAREN},
		},
		{
			name:    "No prefix parser",
			input:   "PREMISE: , p;",
			message: "no statement can start with COMMA",
			line:    1,
			column:  10,
			near:    ",",
		},
		{
			name:    "Label without statement at end",
			input:   "THEREFORE:",
			message: "unexpected end of input, expected a statement",
			line:    1,
			column:  11,
			near:    "EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, err := parse(tt.input)
			if err != nil {
				t.Fatalf("ParseProgram() error = %v", err)
			}

			errs := p.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), ErrorList(errs))
			}

			pe := errs[0]
			if pe.Message != tt.message {
				t.Errorf("Message = %q, want %q", pe.Message, tt.message)
			}
			if pe.Line != tt.line || pe.Column != tt.column {
				t.Errorf("position = %d:%d, want %d:%d", pe.Line, pe.Column, tt.line, tt.column)
			}
			if !strings.Contains(pe.Error(), "(near '"+tt.near+"')") {
				t.Errorf("Error() = %q, want near '%s'", pe.Error(), tt.near)
			}
			if !reflect.DeepEqual(pe.Expected, tt.expected) {
				t.Errorf("Expected = %v, want %v", pe.Expected, tt.expected)
			}
		})
	}
}

func TestParser_MissingCommaMessage(t *testing.T) {
	p, _, _ := parse("PREMISE: IS(dog animal);")

	want := "parse error at line 1, column 17: expected COMMA, got IDENTIFIER (near 'animal')"
	if got := p.Errors()[0].Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := p.Errors()[0].Token.Literal; got != "animal" {
		t.Errorf("Token.Literal = %q, want animal", got)
	}
}

func TestParser_CollectsAndResynchronises(t *testing.T) {
	input := "PREMISE: IS(dog animal);\nPREMISE: NOT p;\nPREMISE: IMPLIES(p, q);\nTHEREFORE: q;"

	p, program, err := parse(input)
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}

	if got := len(p.Errors()); got != 2 {
		t.Fatalf("got %d errors, want 2: %v", got, ErrorList(p.Errors()))
	}
	if p.Errors()[1].Line != 2 {
		t.Errorf("second error on line %d, want 2", p.Errors()[1].Line)
	}

	// statements after the broken ones are still parsed
	if len(program.Predicates) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Predicates))
	}
	if got := program.Predicates[1].String(); got != "THEREFORE: q" {
		t.Errorf("last statement = %q", got)
	}

	list := ErrorList(p.Errors())
	if !strings.HasPrefix(list.Error(), "2 parse errors:") {
		t.Errorf("ErrorList.Error() = %q", list.Error())
	}
	var pe *ParseError
	if !errors.As(list, &pe) || pe.Line != 1 {
		t.Errorf("errors.As(ErrorList) = %v", pe)
	}
}

func TestParser_ParseProgramStrict(t *testing.T) {
	t.Run("Stops at first error", func(t *testing.T) {
		p := NewParser(NewLexer("PREMISE: IS(dog animal);\nPREMISE: NOT p;"), Options{})
		program, err := p.ParseProgramStrict()
		if program != nil {
			t.Error("program should be nil on error")
		}

		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("error = %v, want *ParseError", err)
		}
		if pe.Line != 1 || pe.Column != 17 {
			t.Errorf("position = %d:%d, want 1:17", pe.Line, pe.Column)
		}
		if len(p.Errors()) != 1 {
			t.Errorf("strict parse recorded %d errors, want 1", len(p.Errors()))
		}
	})

	t.Run("Valid input", func(t *testing.T) {
		p := NewParser(NewLexer("PREMISE: IMPLIES(p, q); THEREFORE: q;"), Options{})
		program, err := p.ParseProgramStrict()
		if err != nil {
			t.Fatalf("ParseProgramStrict() error = %v", err)
		}
		if len(program.Predicates) != 2 {
			t.Errorf("got %d statements, want 2", len(program.Predicates))
		}
	})
}

func TestParser_LexicalErrorAbortsProgram(t *testing.T) {
	p := NewParser(NewLexer("PREMISE: IS(dog animal);\nTHEREFORE: q$;"), Options{})
	program, err := p.ParseProgram()

	var lexErr *LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("error = %v, want *LexicalError", err)
	}
	if program != nil {
		t.Error("program should be nil after a lexical error")
	}
	if lexErr.Line != 2 || lexErr.Column != 13 {
		t.Errorf("lexical error at %d:%d, want 2:13", lexErr.Line, lexErr.Column)
	}
}

func TestParser_LexicalErrorSuppressesParseErrors(t *testing.T) {
	p := NewParser(NewLexer("PREMISE: NOT(p#);"), Options{})
	program, err := p.ParseProgram()

	var lexErr *LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("error = %v, want *LexicalError", err)
	}
	if program != nil {
		t.Error("program should be nil")
	}
	if len(p.Errors()) != 0 {
		t.Errorf("got parse errors %v after lexical error", ErrorList(p.Errors()))
	}
}
