// File: environment.go
// Title: Evaluation Environment
// Description: Binding store for one argument: ground fact substitutions
//              from atomic premises, the propositional variables seen so
//              far and the ordered list of models, one per boolean premise.
//              The caller owns the environment and clears it between
//              unrelated arguments; the evaluator never does so itself.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial environment implementation

package evaluator

import (
	v8ast "github.com/msto63/valid8/foundation/logic/ast"
	"github.com/msto63/valid8/foundation/utils/slicex"
)

type modelKind int

const (
	// conjunction: value = prior ∧ term
	kindConjunction modelKind = iota
	// implication: value = prior → term
	kindImplication
)

// Model is one step of the running conjunction of premises. The last model
// of a checked argument is the implication from all premises to the
// conclusion.
type Model struct {
	// Formula is the complete formula the model stands for
	Formula v8ast.Statement
	// Label is the canonical display form of Formula
	Label string

	prior int // index of the model this one extends, -1 for none
	term  v8ast.Statement
	kind  modelKind
}

// Environment holds facts, variables and models of one argument.
// It is not safe for concurrent use.
type Environment struct {
	facts     map[string]string
	factOrder []string
	variables []string
	models    []Model
}

// NewEnvironment creates an empty environment
func NewEnvironment() *Environment {
	return &Environment{facts: make(map[string]string)}
}

// Clear removes all facts, variables and models
func (env *Environment) Clear() {
	env.facts = make(map[string]string)
	env.factOrder = nil
	env.variables = nil
	env.models = nil
}

// SetFact records name → value. A later fact for the same name replaces
// the value but keeps the original position.
func (env *Environment) SetFact(name, value string) {
	if _, exists := env.facts[name]; !exists {
		env.factOrder = append(env.factOrder, name)
	}
	env.facts[name] = value
}

// Fact returns the value recorded for name
func (env *Environment) Fact(name string) (string, bool) {
	value, ok := env.facts[name]
	return value, ok
}

// FactNames returns the fact names in insertion order
func (env *Environment) FactNames() []string {
	return append([]string(nil), env.factOrder...)
}

// resolve substitutes a fact value for name, if there is one
func (env *Environment) resolve(name string) string {
	if value, ok := env.facts[name]; ok {
		return value
	}
	return name
}

// factHolds compares the substituted name of s with its substituted value,
// so IS(x, y) holds when x and y resolve to the same fact value
func (env *Environment) factHolds(s *v8ast.AtomicStatement) bool {
	if s.Name == nil {
		return false
	}
	if _, ok := env.facts[s.Name.Value]; !ok {
		return false
	}
	return env.resolve(s.Name.Value) == env.resolve(atomicValue(s))
}

// AddVariables appends names to the variable list; duplicates are kept
func (env *Environment) AddVariables(names ...string) {
	env.variables = append(env.variables, names...)
}

// Variables returns the raw variable list, duplicates included
func (env *Environment) Variables() []string {
	return slicex.Clone(env.variables)
}

// DistinctVariables returns the variables without duplicates, in order of
// first occurrence
func (env *Environment) DistinctVariables() []string {
	return slicex.Unique(env.variables)
}

// HasVariable reports whether name was recorded as a variable
func (env *Environment) HasVariable(name string) bool {
	return slicex.Contains(env.variables, name)
}

// Models returns a copy of the model list
func (env *Environment) Models() []Model {
	return append([]Model(nil), env.models...)
}

func (env *Environment) pushModel(m Model) int {
	env.models = append(env.models, m)
	return len(env.models) - 1
}

// lastModel returns the index of the newest model, or -1
func (env *Environment) lastModel() int {
	return len(env.models) - 1
}
