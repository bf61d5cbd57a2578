package lalr

import (
	"fmt"

	"github.com/npillmayer/setra"
	"github.com/npillmayer/setra/lr"
)

// Reduction is the semantic action of one grammar rule. On a reduce, the
// automaton calls the rule's Reduction, which pops the rule's right-hand
// side off both stacks (symmetrically: every value popped is paired with a
// state popped), pushes exactly one non-terminal symbol onto the value
// stack, and returns the state exposed on the state stack after the pops.
// The automaton then performs the goto transition for the pushed
// non-terminal.
//
// A Reduction is solely responsible for knowing its own arity; the
// automaton does not encode rule shapes. Epsilon rules pop nothing and
// return the unchanged top state.
type Reduction func(vals *SymbolStack, states *StateStack) (int, error)

// Rule builds a Reduction for a rule with a right-hand side of n symbols
// reducing to the non-terminal nonterm. build receives the right-hand-side
// symbols in grammar order and returns the new semantic value. Most
// grammars need nothing beyond this constructor; hand-written Reductions
// remain possible for rules with unusual stack discipline.
func Rule(nonterm string, n int, build func(rhs []setra.Symbol) interface{}) Reduction {
	return func(vals *SymbolStack, states *StateStack) (int, error) {
		rhs := make([]setra.Symbol, n)
		for i := n - 1; i >= 0; i-- {
			sym, ok := vals.Pop()
			if !ok {
				return 0, fmt.Errorf("value stack underflow reducing to %s", nonterm)
			}
			if _, ok := states.Pop(); !ok {
				return 0, fmt.Errorf("state stack underflow reducing to %s", nonterm)
			}
			rhs[i] = sym
		}
		exposed, ok := states.Peek()
		if !ok {
			return 0, fmt.Errorf("state stack empty after reducing to %s", nonterm)
		}
		vals.Push(setra.NonterminalSymbol(nonterm, build(rhs)))
		return exposed, nil
	}
}

// Registry maps grammar rule numbers to their Reductions. Adding a rule to
// a grammar means registering one more entry; the automaton's control flow
// never changes.
type Registry struct {
	rules map[int]Reduction
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: map[int]Reduction{}}
}

// Register binds rule number rule to fn, replacing any previous binding.
func (r *Registry) Register(rule int, fn Reduction) {
	r.rules[rule] = fn
}

// Lookup returns the Reduction for a rule number; false if none is
// registered.
func (r *Registry) Lookup(rule int) (Reduction, bool) {
	fn, ok := r.rules[rule]
	return fn, ok
}

// Validate checks that every rule referenced by a reduce entry of table has
// a registered Reduction. A missing rule is a configuration error, caught
// here at startup rather than mid-parse.
func (r *Registry) Validate(table *lr.Table) error {
	for _, rule := range table.ReduceRules() {
		if _, ok := r.rules[rule]; !ok {
			return fmt.Errorf("table reduces by rule %d, but no reduction is registered for it", rule)
		}
	}
	return nil
}
