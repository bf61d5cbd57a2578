/*
Package pairs is a minimal built-in grammar for the setra engine:

   S → ε  |  ident S integer

Rule 2 renders its derivation as "(<ident>,<integer>) -> <S>", nested. The
grammar is small enough to follow every automaton step by hand, which makes
it the canonical smoke test and the blueprint for applications wiring their
own tables and reductions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pairs

import (
	"fmt"
	"strings"

	"github.com/npillmayer/setra"
	"github.com/npillmayer/setra/lr"
	"github.com/npillmayer/setra/lr/lalr"
)

// The precomputed LALR(1) table. Rule numbering:
//
//    0: S' → S          (start rule; its completion is the accept entry)
//    1: S  → ε
//    2: S  → ident S integer
//
// FOLLOW(S) = { integer, eof }.
const tableSrc = `
# state  symbol   entry
  0      ident    s2
  0      integer  r1
  0      eof      r1
  0      S        g1
  1      eof      acc
  2      ident    s2
  2      integer  r1
  2      eof      r1
  2      S        g3
  3      integer  s4
  4      integer  r2
  4      eof      r2
`

// Table loads the parse table for the pairs grammar.
func Table() (*lr.Table, error) {
	return lr.Load(strings.NewReader(tableSrc))
}

// Reductions returns the registry of semantic actions for the pairs
// grammar.
func Reductions() *lalr.Registry {
	reg := lalr.NewRegistry()
	reg.Register(1, lalr.Rule("S", 0, func([]setra.Symbol) interface{} {
		return "()"
	}))
	reg.Register(2, lalr.Rule("S", 3, func(rhs []setra.Symbol) interface{} {
		return fmt.Sprintf("(%v,%v) -> %v", rhs[0].Value(), rhs[2].Value(), rhs[1].Value())
	}))
	return reg
}

// NewParser creates a ready-to-run parser for the pairs grammar.
func NewParser() (*lalr.Parser, error) {
	table, err := Table()
	if err != nil {
		return nil, err
	}
	return lalr.NewParser(table, Reductions())
}
