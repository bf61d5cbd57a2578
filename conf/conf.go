/*
Package conf is the built-in statement grammar of the setra front end, a
small set/unset configuration language:

   stmts → ε  |  stmt stmts
   stmt  → set ident = value ;  |  unset ident ;
   value → integer | float | string_d | string_s | ident

Parsing yields one line per statement: "x = 1" for assignments, "unset x"
for removals. The grammar exercises the wider part of the terminal
vocabulary (keywords, equal, semicolon, both string forms).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package conf

import (
	"fmt"
	"strings"

	"github.com/npillmayer/setra"
	"github.com/npillmayer/setra/lr"
	"github.com/npillmayer/setra/lr/lalr"
)

// The precomputed LALR(1) table. Rule numbering:
//
//    0: S'    → stmts                     (accept)
//    1: stmts → ε
//    2: stmts → stmt stmts
//    3: stmt  → set ident = value ;
//    4: stmt  → unset ident ;
//    5: value → integer
//    6: value → float
//    7: value → string_d
//    8: value → string_s
//    9: value → ident
//
// FOLLOW(stmts) = { eof }, FOLLOW(stmt) = { kw_set, kw_unset, eof },
// FOLLOW(value) = { semicolon }.
const tableSrc = `
# state  symbol     entry
  0      kw_set     s2
  0      kw_unset   s3
  0      eof        r1
  0      stmts      g1
  0      stmt       g4
  1      eof        acc
  2      ident      s5
  3      ident      s6
  4      kw_set     s2
  4      kw_unset   s3
  4      eof        r1
  4      stmts      g7
  4      stmt       g4
  5      equal      s8
  6      semicolon  s9
  7      eof        r2
  8      integer    s10
  8      float      s11
  8      string_d   s12
  8      string_s   s13
  8      ident      s14
  8      value      g15
  9      kw_set     r4
  9      kw_unset   r4
  9      eof        r4
  10     semicolon  r5
  11     semicolon  r6
  12     semicolon  r7
  13     semicolon  r8
  14     semicolon  r9
  15     semicolon  s16
  16     kw_set     r3
  16     kw_unset   r3
  16     eof        r3
`

// Table loads the parse table for the statement grammar.
func Table() (*lr.Table, error) {
	return lr.Load(strings.NewReader(tableSrc))
}

// Reductions returns the registry of semantic actions for the statement
// grammar.
func Reductions() *lalr.Registry {
	value := func(rhs []setra.Symbol) interface{} {
		return rhs[0].Value()
	}
	reg := lalr.NewRegistry()
	reg.Register(1, lalr.Rule("stmts", 0, func([]setra.Symbol) interface{} {
		return ""
	}))
	reg.Register(2, lalr.Rule("stmts", 2, func(rhs []setra.Symbol) interface{} {
		stmt, rest := rhs[0].Value(), rhs[1].Value()
		if rest == "" {
			return stmt
		}
		return fmt.Sprintf("%v\n%v", stmt, rest)
	}))
	reg.Register(3, lalr.Rule("stmt", 5, func(rhs []setra.Symbol) interface{} {
		return fmt.Sprintf("%v = %v", rhs[1].Value(), rhs[3].Value())
	}))
	reg.Register(4, lalr.Rule("stmt", 3, func(rhs []setra.Symbol) interface{} {
		return fmt.Sprintf("unset %v", rhs[1].Value())
	}))
	reg.Register(5, lalr.Rule("value", 1, value))
	reg.Register(6, lalr.Rule("value", 1, value))
	reg.Register(7, lalr.Rule("value", 1, value))
	reg.Register(8, lalr.Rule("value", 1, value))
	reg.Register(9, lalr.Rule("value", 1, value))
	return reg
}

// NewParser creates a ready-to-run parser for the statement grammar.
func NewParser() (*lalr.Parser, error) {
	table, err := Table()
	if err != nil {
		return nil, err
	}
	return lalr.NewParser(table, Reductions())
}
