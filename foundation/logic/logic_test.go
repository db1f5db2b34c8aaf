// File: logic_test.go
// Title: Argument Checking Engine Tests
// Description: End-to-end tests of the engine from argument text to verdict.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test coverage

package logic

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	v8log "github.com/msto63/valid8/foundation/core/log"
	v8eval "github.com/msto63/valid8/foundation/logic/evaluator"
	v8parser "github.com/msto63/valid8/foundation/logic/parser"
	v8token "github.com/msto63/valid8/foundation/logic/token"
)

const modusPonens = `PREMISE: IMPLIES(rains, wet);
PREMISE: rains;
THEREFORE: wet;`

func TestEngine_Check(t *testing.T) {
	engine := NewEngine()
	env := v8eval.NewEnvironment()

	result, err := engine.Check(modusPonens, env)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !result.Valid {
		t.Error("Valid = false, want true")
	}
	if result.Table.RowCount() != 4 {
		t.Errorf("RowCount() = %d, want 4", result.Table.RowCount())
	}
	if engine.Evaluator().State() != v8eval.Done {
		t.Errorf("State() = %v, want Done", engine.Evaluator().State())
	}
}

func TestEngine_CheckWithSink(t *testing.T) {
	var headers []string
	engine := NewEngine(Options{
		Sink: v8eval.TableSinkFunc(func(h []string, _ []bool) error {
			headers = h
			return nil
		}),
	})

	if _, err := engine.Check(modusPonens, v8eval.NewEnvironment()); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if len(headers) != 5 || headers[0] != "rains" || headers[1] != "wet" {
		t.Errorf("headers = %q", headers)
	}
}

func TestEngine_ParseCollectsErrors(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Parse("PREMISE: IS(dog animal);\nPREMISE: NOT p;\nTHEREFORE: q;")

	var list v8parser.ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("Parse() error = %v, want ErrorList", err)
	}
	if len(list) != 2 {
		t.Errorf("len(ErrorList) = %d, want 2", len(list))
	}

	var pe *v8parser.ParseError
	if !errors.As(err, &pe) || pe.Column != 17 {
		t.Errorf("first ParseError = %v", pe)
	}
}

func TestEngine_ParseLexicalError(t *testing.T) {
	_, err := NewEngine().Parse("PREMISE: p?;")

	var lexErr *v8parser.LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Parse() error = %v, want *LexicalError", err)
	}
	if lexErr.Column != 11 {
		t.Errorf("Column = %d, want 11", lexErr.Column)
	}
}

func TestEngine_Tokenize(t *testing.T) {
	tokens, err := NewEngine().Tokenize("THEREFORE: q;")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	want := []v8token.Type{v8token.THEREFORE, v8token.COLON, v8token.IDENTIFIER, v8token.SEMICOLON, v8token.EOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("token[%d] = %v, want %v", i, tokens[i].Type, typ)
		}
	}
}

func TestEngine_InputTooLarge(t *testing.T) {
	engine := NewEngine(Options{MaxInputLength: 16})
	input := strings.Repeat("p", 17)

	checks := map[string]func() error{
		"Tokenize": func() error { _, err := engine.Tokenize(input); return err },
		"Parse":    func() error { _, err := engine.Parse(input); return err },
		"Check":    func() error { _, err := engine.Check(input, v8eval.NewEnvironment()); return err },
	}

	for name, check := range checks {
		var tooLarge *InputTooLargeError
		if err := check(); !errors.As(err, &tooLarge) {
			t.Errorf("%s() error = %v, want *InputTooLargeError", name, err)
			continue
		}
		if tooLarge.Size != 17 || tooLarge.Limit != 16 {
			t.Errorf("%s() = %+v", name, tooLarge)
		}
	}
}

func TestEngine_DefaultInputLimit(t *testing.T) {
	engine := NewEngine()
	if engine.options.MaxInputLength != DefaultMaxInputLength {
		t.Errorf("MaxInputLength = %d, want %d", engine.options.MaxInputLength, DefaultMaxInputLength)
	}
}

func TestEngine_LogsThroughLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := v8log.NewWithConfig(v8log.Config{
		Level:  v8log.LevelDebug,
		Format: v8log.FormatText,
		Output: &buf,
	})

	engine := NewEngine(Options{Logger: logger})
	if _, err := engine.Check(modusPonens, v8eval.NewEnvironment()); err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"argument check completed", "argument checked", "parsing completed"} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q:\n%s", want, output)
		}
	}
}
