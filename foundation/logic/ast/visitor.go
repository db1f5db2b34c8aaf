// File: visitor.go
// Title: Argument AST Visitor
// Description: Typed visitor over the closed statement union. Visit is the
//              single dispatch point; a new statement variant requires a new
//              Visitor method and so breaks every consumer at compile time.
//              Also provides the identifier collector used by the evaluator
//              and the tree printer used by the parse command.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial visitor implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor handles each statement variant and produces a T
type Visitor[T any] interface {
	VisitLabel(s *LabelStatement) T
	VisitAtomic(s *AtomicStatement) T
	VisitCompound(s *CompoundStatement) T
	VisitNegation(s *NegationStatement) T
	VisitQuantifier(s *QuantifierStatement) T
	VisitIdentifier(s *Identifier) T
	VisitExpression(s *ExpressionStatement) T
}

// Visit dispatches stmt to the matching Visitor method. stmt must not be nil.
func Visit[T any](stmt Statement, v Visitor[T]) T {
	switch s := stmt.(type) {
	case *LabelStatement:
		return v.VisitLabel(s)
	case *AtomicStatement:
		return v.VisitAtomic(s)
	case *CompoundStatement:
		return v.VisitCompound(s)
	case *NegationStatement:
		return v.VisitNegation(s)
	case *QuantifierStatement:
		return v.VisitQuantifier(s)
	case *Identifier:
		return v.VisitIdentifier(s)
	case *ExpressionStatement:
		return v.VisitExpression(s)
	}
	// unreachable for the closed set; nil is the only other value
	panic(fmt.Sprintf("ast: cannot visit %T", stmt))
}

// identifierCollector gathers propositional variable names in source order.
// Atomic predicates are ground facts and contribute nothing; a quantifier
// contributes its body but not its bound name.
type identifierCollector struct {
	names []string
}

func (c *identifierCollector) visit(s Statement) struct{} {
	if s != nil {
		Visit[struct{}](s, c)
	}
	return struct{}{}
}

func (c *identifierCollector) VisitLabel(s *LabelStatement) struct{} { return c.visit(s.Value) }
func (c *identifierCollector) VisitAtomic(*AtomicStatement) struct{} { return struct{}{} }

func (c *identifierCollector) VisitCompound(s *CompoundStatement) struct{} {
	c.visit(s.Left)
	return c.visit(s.Right)
}

func (c *identifierCollector) VisitNegation(s *NegationStatement) struct{} {
	return c.visit(s.Operand)
}

func (c *identifierCollector) VisitQuantifier(s *QuantifierStatement) struct{} {
	return c.visit(s.Body)
}

func (c *identifierCollector) VisitIdentifier(s *Identifier) struct{} {
	c.names = append(c.names, s.Value)
	return struct{}{}
}

func (c *identifierCollector) VisitExpression(s *ExpressionStatement) struct{} {
	return c.visit(s.Expression)
}

// CollectIdentifiers returns every propositional variable of stmt in source
// order, duplicates included
func CollectIdentifiers(stmt Statement) []string {
	c := &identifierCollector{}
	c.visit(stmt)
	return c.names
}

// TreePrinter renders an indented tree, one node per line
type TreePrinter struct {
	builder strings.Builder
	indent  int
}

// NewTreePrinter creates an empty printer
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// String returns the rendered output
func (p *TreePrinter) String() string {
	return p.builder.String()
}

// Reset clears the rendered output
func (p *TreePrinter) Reset() {
	p.builder.Reset()
	p.indent = 0
}

func (p *TreePrinter) line(format string, args ...interface{}) {
	p.builder.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.builder, format, args...)
	p.builder.WriteByte('\n')
}

func (p *TreePrinter) child(s Statement) {
	p.indent++
	if s == nil {
		p.line("<empty>")
	} else {
		Visit[struct{}](s, p)
	}
	p.indent--
}

func (p *TreePrinter) VisitLabel(s *LabelStatement) struct{} {
	p.line("Label %s @%s", s.Token.Literal, s.Pos())
	p.child(s.Value)
	return struct{}{}
}

func (p *TreePrinter) VisitAtomic(s *AtomicStatement) struct{} {
	name := ""
	if s.Name != nil {
		name = s.Name.Value
	}
	p.line("Atomic %s name=%s @%s", s.Token.Literal, name, s.Pos())
	p.child(s.Value)
	return struct{}{}
}

func (p *TreePrinter) VisitCompound(s *CompoundStatement) struct{} {
	p.line("Compound %s @%s", s.Token.Literal, s.Pos())
	p.child(s.Left)
	p.child(s.Right)
	return struct{}{}
}

func (p *TreePrinter) VisitNegation(s *NegationStatement) struct{} {
	p.line("Negation @%s", s.Pos())
	p.child(s.Operand)
	return struct{}{}
}

func (p *TreePrinter) VisitQuantifier(s *QuantifierStatement) struct{} {
	name := ""
	if s.Name != nil {
		name = s.Name.Value
	}
	p.line("Quantifier %s bound=%s @%s", s.Token.Literal, name, s.Pos())
	p.child(s.Body)
	return struct{}{}
}

func (p *TreePrinter) VisitIdentifier(s *Identifier) struct{} {
	p.line("Identifier %s @%s", s.Value, s.Pos())
	return struct{}{}
}

func (p *TreePrinter) VisitExpression(s *ExpressionStatement) struct{} {
	p.line("Expression @%s", s.Pos())
	p.child(s.Expression)
	return struct{}{}
}

// Dump renders every statement of the program as an indented tree
func Dump(program *Program) string {
	p := NewTreePrinter()
	for _, s := range program.Predicates {
		Visit[struct{}](s, p)
	}
	return p.String()
}
