/*
Package lr implements precomputed parse tables for LR parsing.

A parse table maps (state, grammar symbol) to an action (shift, reduce or
accept) or, for non-terminals, to a goto target state. Tables are inputs to
setra: they are computed elsewhere (by hand, by an external generator, …)
and loaded from a simple textual description. Setra deliberately does not
derive tables from grammars at runtime.

Table Format

Every non-blank line which does not start with '#' has three fields:

   <state>  <symbol>  <entry>

For terminal symbols (named by the fixed vocabulary of the base package) the
entry is one of

   s<n>   shift, push state n
   r<n>   reduce by grammar rule n
   acc    accept

For non-terminal symbols (any other name) the entry is

   g<n>   goto state n after a reduction to <symbol>

Entry strings are parsed exactly once, at load time, into the tagged Action
type; the parser never re-interprets strings per step. A table with more
than one entry per (state, symbol) position is rejected as malformed: setra
does not arbitrate shift/reduce or reduce/reduce conflicts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'setra.lr'.
func tracer() tracing.Trace {
	return tracing.Select("setra.lr")
}
