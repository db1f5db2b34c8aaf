// File: lexer.go
// Title: Argument Lexical Analyzer
// Description: Implements the state-driven tokenizer for the argument
//              language. Labels are recognised only at the start of a
//              statement, keywords are matched case-sensitively and every
//              token carries its line and column for diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"unicode/utf8"

	v8log "github.com/msto63/valid8/foundation/core/log"
	v8token "github.com/msto63/valid8/foundation/logic/token"
)

// LexerState is the position of the lexer within a statement
type LexerState int

const (
	// StateExpectingLabel is the start of a statement: PREMISE, THEREFORE or a bare word
	StateExpectingLabel LexerState = iota

	// StateExpectingStatement follows a label and waits for its colon
	StateExpectingStatement

	// StateInLogicalExpression is the body of a labelled statement
	StateInLogicalExpression

	// StateInIdentifier is the body of a statement that started without a label
	StateInIdentifier
)

// String returns the name of the state
func (s LexerState) String() string {
	switch s {
	case StateExpectingLabel:
		return "ExpectingLabel"
	case StateExpectingStatement:
		return "ExpectingStatement"
	case StateInLogicalExpression:
		return "InLogicalExpression"
	case StateInIdentifier:
		return "InIdentifier"
	default:
		return "Unknown"
	}
}

// LexicalError reports a character that cannot start any token
type LexicalError struct {
	Message string
	Line    int
	Column  int
	Char    rune
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at line %d, column %d: %s %q", e.Line, e.Column, e.Message, e.Char)
}

// Lexer converts argument text into tokens, one call at a time
type Lexer struct {
	input    string
	position int // offset of the next unread byte
	line     int
	column   int
	state    LexerState
	err      *LexicalError
	logger   *v8log.Logger
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
		state:  StateExpectingLabel,
		logger: v8log.NewNop(),
	}
}

// WithLogger sets the logger used for token tracing
func (l *Lexer) WithLogger(logger *v8log.Logger) *Lexer {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// State returns the current lexer state
func (l *Lexer) State() LexerState {
	return l.state
}

// NextToken returns the next token. At the end of input it keeps returning
// EOF. After a lexical error every further call returns the same error.
func (l *Lexer) NextToken() (v8token.Token, error) {
	if l.err != nil {
		return v8token.Token{}, l.err
	}

	l.skipWhitespace()

	if l.position >= len(l.input) {
		return l.newToken(v8token.EOF, "", l.position, l.line, l.column), nil
	}

	pos, line, column := l.position, l.line, l.column
	ch := l.input[l.position]

	if isLetter(ch) {
		tok := l.readWord(pos, line, column)
		l.logger.Trace("token", v8log.Fields{"token": tok.String(), "line": line, "column": column, "state": l.state.String()})
		return tok, nil
	}

	var tokType v8token.Type
	switch ch {
	case '(':
		tokType = v8token.LPAREN
	case ')':
		tokType = v8token.RPAREN
	case ',':
		tokType = v8token.COMMA
	case '.':
		tokType = v8token.PERIOD
	case ':':
		tokType = v8token.COLON
		l.state = StateInLogicalExpression
	case ';':
		tokType = v8token.SEMICOLON
		l.state = StateExpectingLabel
	default:
		r, _ := utf8.DecodeRuneInString(l.input[l.position:])
		l.err = &LexicalError{
			Message: "unexpected character",
			Line:    line,
			Column:  column,
			Char:    r,
		}
		l.logger.Debug("lexical error", v8log.Fields{"line": line, "column": column, "char": string(r)})
		return v8token.Token{}, l.err
	}

	l.advance()
	tok := l.newToken(tokType, string(ch), pos, line, column)
	l.logger.Trace("token", v8log.Fields{"token": tok.String(), "line": line, "column": column, "state": l.state.String()})
	return tok, nil
}

// Tokenize returns all tokens up to and including EOF
func (l *Lexer) Tokenize() ([]v8token.Token, error) {
	var tokens []v8token.Token

	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}

		tokens = append(tokens, tok)
		if tok.Type == v8token.EOF {
			return tokens, nil
		}
	}
}

// readWord consumes a run of letters and classifies it according to the
// current state
func (l *Lexer) readWord(pos, line, column int) v8token.Token {
	for l.position < len(l.input) && isLetter(l.input[l.position]) {
		l.advance()
	}
	word := l.input[pos:l.position]

	if l.state == StateExpectingLabel {
		if labelType, ok := v8token.LookupLabel(word); ok {
			l.state = StateExpectingStatement
			return l.newToken(labelType, word, pos, line, column)
		}
		l.state = StateInIdentifier
	} else if l.state == StateExpectingStatement {
		l.state = StateInIdentifier
	}

	return l.newToken(v8token.LookupKeyword(word), word, pos, line, column)
}

func (l *Lexer) advance() {
	if l.input[l.position] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.position++
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) {
		switch l.input[l.position] {
		case ' ', '\t', '\n', '\r':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) newToken(tokType v8token.Type, literal string, pos, line, column int) v8token.Token {
	return v8token.Token{
		Type:     tokType,
		Literal:  literal,
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// Tokenize is a convenience function that tokenizes the whole input
func Tokenize(input string) ([]v8token.Token, error) {
	return NewLexer(input).Tokenize()
}
