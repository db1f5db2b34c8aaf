// File: formula.go
// Title: Formula Rendering and Truth Evaluation
// Description: Two visitors over the statement union: one renders a formula
//              in logical notation for table headers, the other computes its
//              truth value under a variable assignment and the fact table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial formula visitors

package evaluator

import (
	"fmt"

	v8ast "github.com/msto63/valid8/foundation/logic/ast"
	v8token "github.com/msto63/valid8/foundation/logic/token"
)

// Connective symbols used in model labels
const (
	SymbolAnd     = "∧"
	SymbolOr      = "∨"
	SymbolNot     = "¬"
	SymbolImplies = "→"
	SymbolForAll  = "∀"
	SymbolExists  = "∃"
)

// RenderFormula renders stmt in logical notation, e.g. "p → q" or "¬q".
// A nil statement renders as the empty string.
func RenderFormula(stmt v8ast.Statement) string {
	if stmt == nil {
		return ""
	}
	return v8ast.Visit[string](stmt, formulaRenderer{})
}

// grouped renders stmt and puts it in parentheses unless it is a single term
func grouped(stmt v8ast.Statement) string {
	s := RenderFormula(stmt)
	if isCompound(stmt) {
		return "(" + s + ")"
	}
	return s
}

func isCompound(stmt v8ast.Statement) bool {
	switch s := stmt.(type) {
	case *v8ast.CompoundStatement:
		return true
	case *v8ast.QuantifierStatement:
		return true
	case *v8ast.ExpressionStatement:
		return isCompound(s.Expression)
	case *v8ast.LabelStatement:
		return isCompound(s.Value)
	}
	return false
}

func connectiveSymbol(t v8token.Type) string {
	switch t {
	case v8token.AND:
		return SymbolAnd
	case v8token.OR:
		return SymbolOr
	case v8token.IMPLIES:
		return SymbolImplies
	}
	return t.String()
}

type formulaRenderer struct{}

func (formulaRenderer) VisitLabel(s *v8ast.LabelStatement) string {
	return RenderFormula(s.Value)
}

func (formulaRenderer) VisitAtomic(s *v8ast.AtomicStatement) string {
	name := ""
	if s.Name != nil {
		name = s.Name.Value
	}
	return fmt.Sprintf("%s(%s, %s)", s.Token.Literal, name, RenderFormula(s.Value))
}

func (formulaRenderer) VisitCompound(s *v8ast.CompoundStatement) string {
	return fmt.Sprintf("%s %s %s", grouped(s.Left), connectiveSymbol(s.Operator()), grouped(s.Right))
}

func (formulaRenderer) VisitNegation(s *v8ast.NegationStatement) string {
	return SymbolNot + grouped(s.Operand)
}

func (formulaRenderer) VisitQuantifier(s *v8ast.QuantifierStatement) string {
	symbol := SymbolForAll
	if s.Token.Type == v8token.EXISTS || s.Token.Type == v8token.SOME {
		symbol = SymbolExists
	}
	name := ""
	if s.Name != nil {
		name = s.Name.Value
	}
	return fmt.Sprintf("%s%s. %s", symbol, name, grouped(s.Body))
}

func (formulaRenderer) VisitIdentifier(s *v8ast.Identifier) string {
	return s.Value
}

func (formulaRenderer) VisitExpression(s *v8ast.ExpressionStatement) string {
	return RenderFormula(s.Expression)
}

// truthEvaluator computes the value of a formula for one assignment.
// Variables missing from the assignment are false.
type truthEvaluator struct {
	env        *Environment
	assignment map[string]bool

	// conclusion is a top-level atomic conclusion, decided by fact
	// substitution; nil otherwise
	conclusion *v8ast.AtomicStatement
}

func (t *truthEvaluator) eval(stmt v8ast.Statement) bool {
	if stmt == nil {
		return true
	}
	return v8ast.Visit[bool](stmt, t)
}

func (t *truthEvaluator) VisitLabel(s *v8ast.LabelStatement) bool {
	return t.eval(s.Value)
}

// VisitAtomic treats a ground predicate as satisfied. Only a top-level
// atomic conclusion is checked against the facts.
func (t *truthEvaluator) VisitAtomic(s *v8ast.AtomicStatement) bool {
	if s != t.conclusion {
		return true
	}
	return t.env.factHolds(s)
}

// atomicValue is the textual value of a predicate, "animal" for IS(dog, animal)
func atomicValue(s *v8ast.AtomicStatement) string {
	if s.Value == nil {
		return ""
	}
	return s.Value.String()
}

func (t *truthEvaluator) VisitCompound(s *v8ast.CompoundStatement) bool {
	switch s.Operator() {
	case v8token.AND:
		return t.eval(s.Left) && t.eval(s.Right)
	case v8token.OR:
		return t.eval(s.Left) || t.eval(s.Right)
	default:
		return !t.eval(s.Left) || t.eval(s.Right)
	}
}

func (t *truthEvaluator) VisitNegation(s *v8ast.NegationStatement) bool {
	return !t.eval(s.Operand)
}

func (t *truthEvaluator) VisitQuantifier(s *v8ast.QuantifierStatement) bool {
	return t.eval(s.Body)
}

func (t *truthEvaluator) VisitIdentifier(s *v8ast.Identifier) bool {
	return t.assignment[s.Value]
}

func (t *truthEvaluator) VisitExpression(s *v8ast.ExpressionStatement) bool {
	return t.eval(s.Expression)
}

// conjoin builds the synthetic formula left ∧ right
func conjoin(left, right v8ast.Statement) v8ast.Statement {
	return &v8ast.CompoundStatement{
		Token: v8token.Token{Type: v8token.AND, Literal: "AND", Line: right.Pos().Line, Column: right.Pos().Column},
		Left:  left,
		Right: right,
	}
}

// imply builds the synthetic formula left → right
func imply(left, right v8ast.Statement) v8ast.Statement {
	return &v8ast.CompoundStatement{
		Token: v8token.Token{Type: v8token.IMPLIES, Literal: "IMPLIES", Line: right.Pos().Line, Column: right.Pos().Column},
		Left:  left,
		Right: right,
	}
}
