/*
Package lalr provides the table-driven LALR(1) automaton of the setra front
end.

The parser is the control loop between three collaborators it does not own
the internals of: a token source (package scanner) supplying lookahead, a
precomputed parse table (package lr) selecting actions, and a registry of
reduction actions transforming the value stack. The automaton itself is
grammar-agnostic: all rule-specific knowledge lives in the table and the
registered reductions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lalr

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/setra"
	"github.com/npillmayer/setra/lr"
	"github.com/npillmayer/setra/scanner"
)

// tracer traces with key 'setra.lr'.
func tracer() tracing.Trace {
	return tracing.Select("setra.lr")
}

// SyntaxError reports a token for which the parse table holds no action.
// Its message is of the form "<file>:<line>: error: <message>", attributable
// to the offending token. The parse run aborts on the first syntax error;
// the stacks are left intact but the automaton has no action to continue
// with.
type SyntaxError struct {
	Token setra.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: error: unexpected token %s",
		e.Token.File(), e.Token.Line(), e.Token)
}

// Parser is the LALR(1) shift/reduce automaton. Create one with NewParser.
// A Parser is not safe for concurrent use; it may be reused for any number
// of sequential Parse runs.
type Parser struct {
	table    *lr.Table
	rules    *Registry
	vals     SymbolStack
	states   StateStack
	accepted bool
}

// NewParser creates a parser for a parse table and a registry of reductions.
// The registry is validated against the table's reduce entries; a missing
// reduction is a configuration error reported here, not at parse time.
func NewParser(table *lr.Table, rules *Registry) (*Parser, error) {
	if table == nil || rules == nil {
		return nil, fmt.Errorf("parser needs both a table and a reduction registry")
	}
	if err := rules.Validate(table); err != nil {
		return nil, err
	}
	return &Parser{table: table, rules: rules}, nil
}

// Parse runs the automaton on a token source, starting in state 0, until it
// accepts or fails. On accept, the single value remaining on the value
// stack is returned.
//
// Newline tokens are consumed silently: the tokenizer preserves them for
// diagnostics, but they are insignificant to control flow. A table miss
// for any other token returns a *SyntaxError. Exhausting the token source
// without accepting (i.e. reading past the final synthesized eof) is an
// I/O-class error.
func (p *Parser) Parse(toks scanner.TokenSource) (setra.Symbol, error) {
	p.vals = SymbolStack{}
	p.states = StateStack{}
	p.accepted = false
	p.states.Push(0)
	for !p.accepted {
		state, _ := p.states.Peek()
		tok, err := toks.Peek()
		if err != nil {
			if err == io.EOF {
				return setra.Symbol{}, fmt.Errorf("unexpected end of token stream in state %d", state)
			}
			return setra.Symbol{}, err
		}
		if tok.TokType() == setra.NL {
			toks.Next()
			continue
		}
		action, ok := p.table.Action(state, tok.TokType())
		if !ok {
			tracer().Debugf("no action for (%d,%s)", state, tok.TokType())
			return setra.Symbol{}, &SyntaxError{Token: tok}
		}
		tracer().Debugf("state %d, lookahead %s: %s", state, tok, action)
		switch action.Kind() {
		case lr.ShiftAction:
			tok, _ = toks.Next()
			p.vals.Push(setra.TerminalSymbol(tok))
			p.states.Push(action.Target())
		case lr.ReduceAction:
			if err := p.reduce(action.Rule()); err != nil {
				return setra.Symbol{}, err
			}
		case lr.AcceptAction:
			p.accepted = true
		}
	}
	result, ok := p.vals.Peek()
	if !ok || p.vals.Size() != 1 {
		return setra.Symbol{}, fmt.Errorf("accepted with %d values on the stack, expected 1", p.vals.Size())
	}
	tracer().Debugf("accepted, result = %v", result)
	return result, nil
}

// reduce applies the reduction for a rule and performs the subsequent goto
// transition. A reduce never consumes a lookahead token.
func (p *Parser) reduce(rule int) error {
	fn, ok := p.rules.Lookup(rule)
	if !ok {
		// Validate catches this at construction; reachable only when the
		// registry is mutated behind the parser's back
		return fmt.Errorf("no reduction registered for rule %d", rule)
	}
	exposed, err := fn(&p.vals, &p.states)
	if err != nil {
		return err
	}
	top, ok := p.vals.Peek()
	if !ok || top.IsTerminal() {
		return fmt.Errorf("reduction for rule %d did not push a non-terminal", rule)
	}
	next, ok := p.table.Goto(exposed, top.Name())
	if !ok {
		return fmt.Errorf("malformed table: no goto for (%d,%s)", exposed, top.Name())
	}
	tracer().Debugf("reduced by rule %d to %s, goto %d", rule, top.Name(), next)
	p.states.Push(next)
	return nil
}

// Accepted returns true if the previous Parse run ended in an accept.
func (p *Parser) Accepted() bool {
	return p.accepted
}
