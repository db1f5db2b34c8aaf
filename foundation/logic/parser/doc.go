// File: doc.go
// Title: Argument Parser Package Documentation
// Description: Lexer and recursive descent parser for the argument language.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser implementation

/*
Package parser turns argument text into an ast.Program.

The lexer is stateful. A statement starts in ExpectingLabel, where the words
PREMISE and THEREFORE are labels; everywhere else they are plain identifiers.
A colon opens the logical expression and a semicolon ends the statement.
Keywords are case-sensitive and only letters A-Z and a-z form words.

The parser offers two error surfaces:

  • ParseProgram collects every syntax error in Errors() and resumes after
    the next ';'
  • ParseProgramStrict returns the first error

A *LexicalError ends parsing in both modes and is returned instead of the
program.

Usage:

	p := parser.NewParser(parser.NewLexer(input), parser.Options{Logger: logger})
	program, err := p.ParseProgram()
	if err != nil {
		return err // lexical error
	}
	if errs := p.Errors(); len(errs) > 0 {
		return parser.ErrorList(errs)
	}
*/
package parser
