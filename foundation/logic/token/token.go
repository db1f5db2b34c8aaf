// File: token.go
// Title: Argument Language Tokens
// Description: Defines the closed set of token kinds produced by the lexer
//              together with the Token value carrying literal text and its
//              source position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial token definitions

package token

import "fmt"

// Type represents the kind of a lexical token
type Type int

const (
	// Special tokens
	EOF Type = iota
	ILLEGAL

	// Labels
	PREMISE
	THEREFORE

	// Atomic predicates
	IS
	HAS
	CAN
	ARE

	// Connectives
	AND
	OR
	NOT
	IMPLIES

	// Quantifiers
	FORALL
	EXISTS
	ALL
	SOME

	IDENTIFIER

	// Punctuation
	LPAREN    // (
	RPAREN    // )
	COMMA     // ,
	PERIOD    // .
	COLON     // :
	SEMICOLON // ;
)

var typeNames = [...]string{
	EOF:        "EOF",
	ILLEGAL:    "ILLEGAL",
	PREMISE:    "PREMISE",
	THEREFORE:  "THEREFORE",
	IS:         "IS",
	HAS:        "HAS",
	CAN:        "CAN",
	ARE:        "ARE",
	AND:        "AND",
	OR:         "OR",
	NOT:        "NOT",
	IMPLIES:    "IMPLIES",
	FORALL:     "FORALL",
	EXISTS:     "EXISTS",
	ALL:        "ALL",
	SOME:       "SOME",
	IDENTIFIER: "IDENTIFIER",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	COMMA:      "COMMA",
	PERIOD:     "PERIOD",
	COLON:      "COLON",
	SEMICOLON:  "SEMICOLON",
}

// String returns the name of the token type
func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "UNKNOWN"
}

// IsLabel reports whether t introduces a statement
func (t Type) IsLabel() bool {
	return t == PREMISE || t == THEREFORE
}

// IsPredicate reports whether t is one of the atomic predicate keywords
func (t Type) IsPredicate() bool {
	return t == IS || t == HAS || t == CAN || t == ARE
}

// IsConnective reports whether t is a binary connective
func (t Type) IsConnective() bool {
	return t == AND || t == OR || t == IMPLIES
}

// IsQuantifier reports whether t is a quantifier keyword
func (t Type) IsQuantifier() bool {
	return t == FORALL || t == EXISTS || t == ALL || t == SOME
}

// Token is a lexical token with position information
type Token struct {
	Type     Type
	Literal  string
	Position int // Byte offset (0-based)
	Line     int // Line number (1-based)
	Column   int // Column number (1-based)
}

// String returns a debug representation of the token
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case IDENTIFIER:
		return fmt.Sprintf("IDENTIFIER(%s)", t.Literal)
	default:
		return t.Type.String()
	}
}

var keywords = map[string]Type{
	"IS":      IS,
	"HAS":     HAS,
	"CAN":     CAN,
	"ARE":     ARE,
	"AND":     AND,
	"OR":      OR,
	"NOT":     NOT,
	"NO":      NOT,
	"IMPLIES": IMPLIES,
	"FORALL":  FORALL,
	"EXISTS":  EXISTS,
	"ALL":     ALL,
	"SOME":    SOME,
}

var labels = map[string]Type{
	"PREMISE":   PREMISE,
	"THEREFORE": THEREFORE,
}

// LookupKeyword returns the keyword type for word, or IDENTIFIER.
// Matching is case-sensitive: only upper-case words are keywords.
func LookupKeyword(word string) Type {
	if t, ok := keywords[word]; ok {
		return t
	}
	return IDENTIFIER
}

// LookupLabel returns PREMISE or THEREFORE for a label word
func LookupLabel(word string) (Type, bool) {
	t, ok := labels[word]
	return t, ok
}

// IsKeyword reports whether word is reserved in statement position
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}
