// File: parser.go
// Title: Argument Recursive Descent Parser
// Description: Converts the token stream into a Program of statements using
//              recursive descent over a two-token window. Offers a
//              collect-all surface (ParseProgram + Errors) that resynchronises
//              at the next ';' and a fail-fast surface (ParseProgramStrict).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strings"

	v8log "github.com/msto63/valid8/foundation/core/log"
	v8ast "github.com/msto63/valid8/foundation/logic/ast"
	v8token "github.com/msto63/valid8/foundation/logic/token"
)

// ParseError represents a syntax error with position information
type ParseError struct {
	Message  string
	Line     int
	Column   int
	Token    v8token.Token  // offending token
	Expected []v8token.Type // empty when no specific token was required
}

func (pe *ParseError) Error() string {
	near := pe.Token.Literal
	if pe.Token.Type == v8token.EOF {
		near = "EOF"
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s (near '%s')",
		pe.Line, pe.Column, pe.Message, near)
}

// ErrorList collects every ParseError of one input
type ErrorList []*ParseError

func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no parse errors"
	case 1:
		return el[0].Error()
	}
	msgs := make([]string, len(el))
	for i, e := range el {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d parse errors:\n  %s", len(el), strings.Join(msgs, "\n  "))
}

// Unwrap exposes the individual errors to errors.Is and errors.As
func (el ErrorList) Unwrap() []error {
	errs := make([]error, len(el))
	for i, e := range el {
		errs[i] = e
	}
	return errs
}

// Options configures parser behavior
type Options struct {
	Logger *v8log.Logger
}

// Parser implements recursive descent parsing of arguments. A Parser reads
// its lexer once; create a new one per input.
type Parser struct {
	lexer  *Lexer
	cur    v8token.Token
	peek   v8token.Token
	errors []*ParseError
	lexErr error
	logger *v8log.Logger
}

type prefixParseFn func(*Parser) v8ast.Statement

// NewParser creates a parser reading from lexer
func NewParser(lexer *Lexer, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = v8log.NewNop()
	}

	p := &Parser{
		lexer:  lexer.WithLogger(opts.Logger),
		logger: opts.Logger.WithField("component", "parser"),
	}

	// Fill cur and peek
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the syntax errors collected so far
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

// ParseProgram parses the whole input, collecting syntax errors in Errors()
// and skipping to the next ';' after each one. The returned error is non-nil
// only for a lexical error, in which case the program is nil.
func (p *Parser) ParseProgram() (*v8ast.Program, error) {
	return p.parseProgram(false)
}

// ParseProgramStrict stops at the first error and returns it: a
// *LexicalError or a *ParseError.
func (p *Parser) ParseProgramStrict() (*v8ast.Program, error) {
	program, err := p.parseProgram(true)
	if err != nil {
		return nil, err
	}
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return program, nil
}

func (p *Parser) parseProgram(failFast bool) (*v8ast.Program, error) {
	program := &v8ast.Program{}

	for p.cur.Type != v8token.EOF {
		if stmt := p.parseTopLevel(); stmt != nil {
			program.Predicates = append(program.Predicates, stmt)
		}
		if p.lexErr != nil || (failFast && len(p.errors) > 0) {
			break
		}
		p.nextToken()
	}

	if p.lexErr != nil {
		p.logger.Debug("parsing aborted by lexical error", v8log.Fields{"error": p.lexErr.Error()})
		return nil, p.lexErr
	}

	p.logger.Debug("parsing completed", v8log.Fields{
		"statements": len(program.Predicates),
		"errors":     len(p.errors),
	})

	return program, nil
}

// parseTopLevel parses one ';'-terminated statement. On return cur is the
// terminating ';' (or EOF after an error).
func (p *Parser) parseTopLevel() v8ast.Statement {
	if p.cur.Type == v8token.SEMICOLON {
		return nil
	}

	start := p.cur
	stmt := p.parseStatement()
	if stmt == nil {
		p.synchronize()
		return nil
	}

	if !p.peekTokenIs(v8token.SEMICOLON) {
		p.peekError("statement must be terminated by ';'", v8token.SEMICOLON)
		p.synchronize()
		return nil
	}
	p.nextToken()

	if ident, ok := stmt.(*v8ast.Identifier); ok {
		return &v8ast.ExpressionStatement{Token: start, Expression: ident}
	}
	return stmt
}

// parseStatement dispatches on cur. On success cur is the last token of the
// statement; on failure an error is recorded and nil returned.
func (p *Parser) parseStatement() v8ast.Statement {
	fn := prefixParserFor(p.cur.Type)
	if fn == nil {
		if p.cur.Type == v8token.EOF {
			p.curError("unexpected end of input, expected a statement")
		} else {
			p.curError(fmt.Sprintf("no statement can start with %s", p.cur.Type))
		}
		return nil
	}
	return fn(p)
}

func prefixParserFor(t v8token.Type) prefixParseFn {
	switch t {
	case v8token.PREMISE, v8token.THEREFORE:
		return (*Parser).parseLabel
	case v8token.IS, v8token.HAS, v8token.CAN, v8token.ARE:
		return (*Parser).parseAtomic
	case v8token.AND, v8token.OR, v8token.IMPLIES:
		return (*Parser).parseCompound
	case v8token.NOT:
		return (*Parser).parseNegation
	case v8token.FORALL, v8token.EXISTS, v8token.ALL, v8token.SOME:
		return (*Parser).parseQuantifier
	case v8token.IDENTIFIER:
		return (*Parser).parseIdentifier
	default:
		return nil
	}
}

// parseLabel parses PREMISE ':' [Statement]
func (p *Parser) parseLabel() v8ast.Statement {
	label := &v8ast.LabelStatement{Token: p.cur}

	if !p.expectPeek(v8token.COLON) {
		return nil
	}

	// "THEREFORE: ;" is syntactically fine; the evaluator rejects it
	if p.peekTokenIs(v8token.SEMICOLON) {
		return label
	}

	p.nextToken()
	label.Value = p.parseStatement()
	if label.Value == nil {
		return nil
	}
	return label
}

// parseAtomic parses IS '(' Identifier ',' Statement ')'
func (p *Parser) parseAtomic() v8ast.Statement {
	stmt := &v8ast.AtomicStatement{Token: p.cur}

	if !p.expectPeek(v8token.LPAREN) || !p.expectPeek(v8token.IDENTIFIER) {
		return nil
	}
	stmt.Name = &v8ast.Identifier{Token: p.cur, Value: p.cur.Literal}

	if !p.expectPeek(v8token.COMMA) {
		return nil
	}

	p.nextToken()
	if stmt.Value = p.parseStatement(); stmt.Value == nil {
		return nil
	}

	if !p.expectPeek(v8token.RPAREN) {
		return nil
	}
	return stmt
}

// parseCompound parses IMPLIES '(' Statement ',' Statement ')'
func (p *Parser) parseCompound() v8ast.Statement {
	stmt := &v8ast.CompoundStatement{Token: p.cur}

	if !p.expectPeek(v8token.LPAREN) {
		return nil
	}

	p.nextToken()
	if stmt.Left = p.parseStatement(); stmt.Left == nil {
		return nil
	}

	if !p.expectPeek(v8token.COMMA) {
		return nil
	}

	p.nextToken()
	if stmt.Right = p.parseStatement(); stmt.Right == nil {
		return nil
	}

	if !p.expectPeek(v8token.RPAREN) {
		return nil
	}
	return stmt
}

// parseNegation parses NOT '(' Statement ')'
func (p *Parser) parseNegation() v8ast.Statement {
	stmt := &v8ast.NegationStatement{Token: p.cur}

	if !p.expectPeek(v8token.LPAREN) {
		return nil
	}

	p.nextToken()
	if stmt.Operand = p.parseStatement(); stmt.Operand == nil {
		return nil
	}

	if !p.expectPeek(v8token.RPAREN) {
		return nil
	}
	return stmt
}

// parseQuantifier parses FORALL '(' Identifier ',' Statement ')'
func (p *Parser) parseQuantifier() v8ast.Statement {
	stmt := &v8ast.QuantifierStatement{Token: p.cur}

	if !p.expectPeek(v8token.LPAREN) || !p.expectPeek(v8token.IDENTIFIER) {
		return nil
	}
	stmt.Name = &v8ast.Identifier{Token: p.cur, Value: p.cur.Literal}

	if !p.expectPeek(v8token.COMMA) {
		return nil
	}

	p.nextToken()
	if stmt.Body = p.parseStatement(); stmt.Body == nil {
		return nil
	}

	if !p.expectPeek(v8token.RPAREN) {
		return nil
	}
	return stmt
}

func (p *Parser) parseIdentifier() v8ast.Statement {
	return &v8ast.Identifier{Token: p.cur, Value: p.cur.Literal}
}

// nextToken advances the window by exactly one token. A lexical error ends
// the stream: it is remembered and EOF is returned from then on.
func (p *Parser) nextToken() {
	p.cur = p.peek

	if p.lexErr != nil {
		p.peek = v8token.Token{Type: v8token.EOF, Line: p.cur.Line, Column: p.cur.Column}
		return
	}

	tok, err := p.lexer.NextToken()
	if err != nil {
		p.lexErr = err
		tok = v8token.Token{Type: v8token.EOF, Line: p.cur.Line, Column: p.cur.Column}
	}
	p.peek = tok
}

func (p *Parser) peekTokenIs(t v8token.Type) bool {
	return p.peek.Type == t
}

// expectPeek advances if peek has type t and records an error otherwise
func (p *Parser) expectPeek(t v8token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}

	if p.peek.Type == v8token.EOF {
		p.peekError(fmt.Sprintf("unexpected end of input, expected %s", t), t)
	} else {
		p.peekError(fmt.Sprintf("expected %s, got %s", t, p.peek.Type), t)
	}
	return false
}

// synchronize skips to the next ';' so that parsing can resume after it
func (p *Parser) synchronize() {
	for p.cur.Type != v8token.SEMICOLON && p.cur.Type != v8token.EOF {
		p.nextToken()
	}
}

func (p *Parser) peekError(message string, expected ...v8token.Type) {
	p.addError(message, p.peek, expected)
}

func (p *Parser) curError(message string) {
	p.addError(message, p.cur, nil)
}

func (p *Parser) addError(message string, tok v8token.Token, expected []v8token.Type) {
	// A lexical error already explains the truncated stream
	if p.lexErr != nil {
		return
	}

	err := &ParseError{
		Message:  message,
		Line:     tok.Line,
		Column:   tok.Column,
		Token:    tok,
		Expected: expected,
	}
	p.errors = append(p.errors, err)

	p.logger.Debug("parse error", v8log.Fields{
		"message": message,
		"line":    tok.Line,
		"column":  tok.Column,
		"token":   tok.String(),
	})
}
