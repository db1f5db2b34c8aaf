// File: evaluator.go
// Title: Argument Evaluator
// Description: Decides whether the conclusion of a parsed argument follows
//              from its premises. Premises are folded into a running chain
//              of models, the final model is premises → conclusion, and the
//              argument is valid iff that model is a tautology over all
//              assignments of the propositional variables.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial evaluator implementation

package evaluator

import (
	v8log "github.com/msto63/valid8/foundation/core/log"
	v8ast "github.com/msto63/valid8/foundation/logic/ast"
	v8token "github.com/msto63/valid8/foundation/logic/token"
)

const (
	// DefaultMaxVariables bounds the truth table to 2^16 rows
	DefaultMaxVariables = 16
	// HardMaxVariables is the ceiling no configuration can lift
	HardMaxVariables = 24
)

// State is the phase of the most recent evaluation
type State int

const (
	Idle State = iota
	IngestingPremises
	CheckingConclusion
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case IngestingPremises:
		return "IngestingPremises"
	case CheckingConclusion:
		return "CheckingConclusion"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Options configures an Evaluator
type Options struct {
	Logger *v8log.Logger
	// MaxVariables limits the distinct variables of one argument.
	// Zero means DefaultMaxVariables; values above HardMaxVariables are capped.
	MaxVariables int
	// Sink receives the truth table of every checked argument; may be nil
	Sink TableSink
}

// Result is the verdict for one argument
type Result struct {
	Valid bool
	// Table is nil when the argument has no conclusion
	Table *TruthTable
	// Conclusion is the label of the final model
	Conclusion string
	// Variables are the distinct variables in first-occurrence order
	Variables []string
}

// Evaluator checks arguments against an Environment. An Evaluator may be
// reused for many arguments but not concurrently.
type Evaluator struct {
	maxVariables int
	sink         TableSink
	logger       *v8log.Logger
	state        State
}

// New creates an evaluator
func New(opts Options) *Evaluator {
	if opts.Logger == nil {
		opts.Logger = v8log.NewNop()
	}

	limit := opts.MaxVariables
	if limit <= 0 {
		limit = DefaultMaxVariables
	}
	if limit > HardMaxVariables {
		limit = HardMaxVariables
	}

	return &Evaluator{
		maxVariables: limit,
		sink:         opts.Sink,
		logger:       opts.Logger.WithField("component", "evaluator"),
		state:        Idle,
	}
}

// State returns the phase reached by the last call to Evaluate
func (e *Evaluator) State() State {
	return e.state
}

// MaxVariables returns the effective variable limit
func (e *Evaluator) MaxVariables() int {
	return e.maxVariables
}

// Evaluate ingests every premise of program into env and checks the last
// THEREFORE statement against them. Premises must all come before the
// first THEREFORE. env is not cleared first: facts and models of earlier
// arguments remain in effect until the caller clears it.
//
// An argument without a conclusion is reported as not valid, without error.
func (e *Evaluator) Evaluate(program *v8ast.Program, env *Environment) (*Result, error) {
	e.state = IngestingPremises
	defer func() { e.state = Done }()

	var conclusion *v8ast.LabelStatement
	for _, stmt := range program.Predicates {
		label, ok := stmt.(*v8ast.LabelStatement)
		if !ok {
			e.logger.Debug("skipping unlabelled statement", v8log.Fields{
				"statement": stmt.String(),
				"position":  stmt.Pos().String(),
			})
			continue
		}

		if label.IsConclusion() {
			conclusion = label
			continue
		}
		if conclusion != nil {
			return nil, newSemanticError(PremiseOrder, label,
				"premise after THEREFORE: %s", RenderFormula(label.Value))
		}

		if err := e.ingestPremise(label, env); err != nil {
			return nil, err
		}
	}

	if conclusion == nil {
		e.logger.Warn("argument has no THEREFORE statement, treating it as invalid", v8log.Fields{
			"statements": len(program.Predicates),
		})
		return &Result{Valid: false}, nil
	}

	e.state = CheckingConclusion
	return e.checkConclusion(conclusion, env)
}

func (e *Evaluator) ingestPremise(label *v8ast.LabelStatement, env *Environment) error {
	switch premise := label.Value.(type) {
	case *v8ast.AtomicStatement:
		value := atomicValue(premise)
		env.SetFact(premise.Name.Value, value)
		e.logger.Debug("fact recorded", v8log.Fields{"name": premise.Name.Value, "value": value})
		return nil

	case *v8ast.CompoundStatement:
		if premise.Operator() != v8token.IMPLIES {
			return newSemanticError(UnsupportedPremise, label,
				"unsupported premise kind: %s", premise.Operator())
		}
		env.AddVariables(v8ast.CollectIdentifiers(premise.Left)...)
		env.AddVariables(v8ast.CollectIdentifiers(premise.Right)...)
		e.pushConjunct(env, premise)
		return nil

	case *v8ast.Identifier, *v8ast.NegationStatement:
		if env.lastModel() < 0 {
			return newSemanticError(PremiseOrder, label,
				"identifier premise must follow a model: %s", RenderFormula(premise))
		}
		env.AddVariables(v8ast.CollectIdentifiers(premise)...)
		e.pushConjunct(env, premise)
		return nil

	case nil:
		return newSemanticError(UnsupportedPremise, label, "unsupported premise kind: empty premise")

	default:
		return newSemanticError(UnsupportedPremise, label,
			"unsupported premise kind: %s", premise.TokenLiteral())
	}
}

// pushConjunct extends the running model chain by term
func (e *Evaluator) pushConjunct(env *Environment, term v8ast.Statement) {
	prior := env.lastModel()
	formula := term
	if prior >= 0 {
		formula = conjoin(env.models[prior].Formula, term)
	}

	m := Model{
		Formula: formula,
		Label:   RenderFormula(formula),
		prior:   prior,
		term:    term,
		kind:    kindConjunction,
	}
	index := env.pushModel(m)

	e.logger.Debug("model added", v8log.Fields{"index": index, "model": m.Label})
}

func (e *Evaluator) checkConclusion(label *v8ast.LabelStatement, env *Environment) (*Result, error) {
	stmt := label.Value
	if stmt == nil {
		return nil, newSemanticError(EmptyConclusion, label, "THEREFORE cannot be empty")
	}

	switch s := stmt.(type) {
	case *v8ast.LabelStatement:
		return nil, newSemanticError(UnsupportedConclusion, label,
			"unsupported conclusion kind: %s", s.TokenLiteral())
	case *v8ast.AtomicStatement:
		if _, ok := env.Fact(s.Name.Value); !ok {
			return nil, newSemanticError(UndefinedVariable, s, "undefined variable: %s", s.Name.Value)
		}
	}

	for _, name := range v8ast.CollectIdentifiers(stmt) {
		if !env.HasVariable(name) {
			return nil, newSemanticError(UndefinedVariable, stmt, "undefined variable: %s", name)
		}
	}

	variables := env.DistinctVariables()
	if len(variables) > e.maxVariables {
		err := &ResourceError{Variables: len(variables), Limit: e.maxVariables}
		e.logger.Warn("truth table too large", v8log.Fields{
			"variables": len(variables),
			"limit":     e.maxVariables,
		})
		return nil, err
	}

	prior := env.lastModel()
	formula := stmt
	if prior >= 0 {
		formula = imply(env.models[prior].Formula, stmt)
	}
	final := env.pushModel(Model{
		Formula: formula,
		Label:   RenderFormula(formula),
		prior:   prior,
		term:    stmt,
		kind:    kindImplication,
	})

	table := e.buildTable(env, variables, final)

	result := &Result{
		Valid:      true,
		Table:      table,
		Conclusion: env.models[final].Label,
		Variables:  variables,
	}
	last := table.Width() - 1
	for r := 0; r < table.RowCount(); r++ {
		if !table.Rows[r*table.Width()+last] {
			result.Valid = false
			break
		}
	}

	if e.sink != nil {
		if err := e.sink.Emit(table.Headers, table.Rows); err != nil {
			e.logger.WarnWithErr("table sink failed", err)
		}
	}

	e.logger.Debug("argument checked", v8log.Fields{
		"valid":     result.Valid,
		"variables": len(variables),
		"models":    final + 1,
	})

	return result, nil
}

// buildTable enumerates every assignment of variables and evaluates each
// model under it. Bit i of the row index is the value of variables[i].
func (e *Evaluator) buildTable(env *Environment, variables []string, final int) *TruthTable {
	timer := e.logger.StartTimer("truth table").WithLevel(v8log.LevelDebug)
	defer timer.Stop()

	headers := make([]string, 0, len(variables)+final+1)
	headers = append(headers, variables...)
	for _, m := range env.models {
		headers = append(headers, m.Label)
	}

	rowCount := 1 << uint(len(variables))
	rows := make([]bool, 0, rowCount*len(headers))

	truth := &truthEvaluator{env: env, assignment: make(map[string]bool, len(variables))}
	if atomic, ok := env.models[final].term.(*v8ast.AtomicStatement); ok {
		truth.conclusion = atomic
	}
	for mask := 0; mask < rowCount; mask++ {
		for i, name := range variables {
			value := mask&(1<<uint(i)) != 0
			truth.assignment[name] = value
			rows = append(rows, value)
		}

		memo := make(map[int]bool, len(env.models))
		for i, m := range env.models {
			value := e.modelValue(truth, m, memo)
			memo[i] = value
			rows = append(rows, value)
		}

		e.logger.Trace("row evaluated", v8log.Fields{"mask": mask, "final": memo[final]})
	}

	return &TruthTable{Headers: headers, Rows: rows}
}

func (e *Evaluator) modelValue(truth *truthEvaluator, m Model, memo map[int]bool) bool {
	term := truth.eval(m.term)
	if m.prior < 0 {
		return term
	}

	prior := memo[m.prior]
	if m.kind == kindImplication {
		return !prior || term
	}
	return prior && term
}
