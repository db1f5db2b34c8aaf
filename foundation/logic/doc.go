// File: doc.go
// Title: Logic Package Documentation
// Description: Entry point to the argument checking pipeline.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial engine implementation

/*
Package logic checks arguments written as PREMISE and THEREFORE statements.

	engine := logic.NewEngine(logic.Options{Logger: logger})
	env := evaluator.NewEnvironment()

	result, err := engine.Check("PREMISE: IMPLIES(p, q); PREMISE: p; THEREFORE: q;", env)
	if err != nil {
		return err
	}
	fmt.Println(result.Valid) // true

Subpackages:

  • token: token kinds and keyword tables
  • parser: stateful lexer and recursive descent parser
  • ast: statement nodes, visitor and tree printer
  • evaluator: environment, models and truth table
*/
package logic
