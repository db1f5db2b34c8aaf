// File: nodes.go
// Title: Argument AST Node Definitions
// Description: Defines the closed set of statement nodes produced by the
//              parser: labels, atomic predicates, compounds, negations,
//              quantifiers, identifiers and the expression wrapper.
//              The set is closed by an unexported marker method so that
//              only this package can add variants.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"

	v8token "github.com/msto63/valid8/foundation/logic/token"
)

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is implemented by every AST node
type Node interface {
	// TokenLiteral returns the literal of the token the node starts with
	TokenLiteral() string

	// String returns a debug rendering of the node
	String() string

	// Pos returns the source position of the node
	Pos() Position
}

// Statement is a node of the closed statement union
type Statement interface {
	Node
	statementNode()
}

func positionOf(tok v8token.Token) Position {
	return Position{Line: tok.Line, Column: tok.Column, Offset: tok.Position}
}

func stringOf(s Statement) string {
	if s == nil {
		return ""
	}
	return s.String()
}

// Program is the ordered list of top-level statements in source order
type Program struct {
	Predicates []Statement
}

// TokenLiteral returns the literal of the first statement
func (p *Program) TokenLiteral() string {
	if len(p.Predicates) > 0 {
		return p.Predicates[0].TokenLiteral()
	}
	return ""
}

// String renders one statement per line
func (p *Program) String() string {
	lines := make([]string, 0, len(p.Predicates))
	for _, s := range p.Predicates {
		lines = append(lines, s.String())
	}
	return strings.Join(lines, "\n")
}

// LabelStatement is a PREMISE or THEREFORE statement. Value is nil for an
// empty label such as "THEREFORE: ;".
type LabelStatement struct {
	Token v8token.Token
	Value Statement
}

func (s *LabelStatement) statementNode()       {}
func (s *LabelStatement) TokenLiteral() string { return s.Token.Literal }
func (s *LabelStatement) Pos() Position        { return positionOf(s.Token) }

func (s *LabelStatement) String() string {
	return fmt.Sprintf("%s: %s", s.Token.Literal, stringOf(s.Value))
}

// IsPremise reports whether the label is PREMISE
func (s *LabelStatement) IsPremise() bool { return s.Token.Type == v8token.PREMISE }

// IsConclusion reports whether the label is THEREFORE
func (s *LabelStatement) IsConclusion() bool { return s.Token.Type == v8token.THEREFORE }

// AtomicStatement is a ground predicate such as IS(dog, animal)
type AtomicStatement struct {
	Token v8token.Token // IS, HAS, CAN or ARE
	Name  *Identifier
	Value Statement
}

func (s *AtomicStatement) statementNode()       {}
func (s *AtomicStatement) TokenLiteral() string { return s.Token.Literal }
func (s *AtomicStatement) Pos() Position        { return positionOf(s.Token) }

// String renders "name value", e.g. "dog animal"
func (s *AtomicStatement) String() string {
	name := ""
	if s.Name != nil {
		name = s.Name.TokenLiteral()
	}
	return fmt.Sprintf("%s %s", name, stringOf(s.Value))
}

// CompoundStatement is a binary connective: AND, OR or IMPLIES
type CompoundStatement struct {
	Token v8token.Token
	Left  Statement
	Right Statement
}

func (s *CompoundStatement) statementNode()       {}
func (s *CompoundStatement) TokenLiteral() string { return s.Token.Literal }
func (s *CompoundStatement) Pos() Position        { return positionOf(s.Token) }

func (s *CompoundStatement) String() string {
	return fmt.Sprintf("%s(%s, %s)", s.Token.Literal, stringOf(s.Left), stringOf(s.Right))
}

// Operator returns the connective token type
func (s *CompoundStatement) Operator() v8token.Type { return s.Token.Type }

// NegationStatement is NOT(operand)
type NegationStatement struct {
	Token   v8token.Token
	Operand Statement
}

func (s *NegationStatement) statementNode()       {}
func (s *NegationStatement) TokenLiteral() string { return s.Token.Literal }
func (s *NegationStatement) Pos() Position        { return positionOf(s.Token) }

func (s *NegationStatement) String() string {
	return fmt.Sprintf("%s(%s)", s.Token.Literal, stringOf(s.Operand))
}

// QuantifierStatement binds Name over Body. Quantifiers are evaluated
// propositionally, as their body.
type QuantifierStatement struct {
	Token v8token.Token // FORALL, EXISTS, ALL or SOME
	Name  *Identifier
	Body  Statement
}

func (s *QuantifierStatement) statementNode()       {}
func (s *QuantifierStatement) TokenLiteral() string { return s.Token.Literal }
func (s *QuantifierStatement) Pos() Position        { return positionOf(s.Token) }

func (s *QuantifierStatement) String() string {
	name := ""
	if s.Name != nil {
		name = s.Name.Value
	}
	return fmt.Sprintf("%s(%s, %s)", s.Token.Literal, name, stringOf(s.Body))
}

// Identifier is a bare name; as a formula it is a propositional variable
type Identifier struct {
	Token v8token.Token
	Value string
}

func (s *Identifier) statementNode()       {}
func (s *Identifier) TokenLiteral() string { return s.Value }
func (s *Identifier) Pos() Position        { return positionOf(s.Token) }
func (s *Identifier) String() string       { return s.Value }

// ExpressionStatement wraps a sub-expression that appears without a label
type ExpressionStatement struct {
	Token      v8token.Token
	Expression Statement
}

func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) Pos() Position        { return positionOf(s.Token) }
func (s *ExpressionStatement) String() string       { return stringOf(s.Expression) }
