// File: doc.go
// Title: Argument Evaluator Package Documentation
// Description: Truth-table evaluation of parsed arguments.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial evaluator implementation

/*
Package evaluator decides the validity of an argument.

Premises are ingested in order. An atomic premise such as IS(dog, animal)
records the fact dog → animal. An IMPLIES premise records its variables and
starts or extends the chain of models; identifier and negation premises
extend an existing chain. The last THEREFORE statement yields the final
model, premises → conclusion, which is evaluated under every assignment of
the distinct variables. The argument is valid iff the final model is true in
every row.

The Environment carries facts, variables and models across calls. Clear it
between unrelated arguments.
*/
package evaluator
