/*
Package setra is a small-language front end: a tokenizer and a table-driven
LALR(1) parse engine.

Setra splits parsing into two cooperating stages. A lexical scanner (package
lex) turns raw source text into a line-oriented stream of typed tokens. A
token source (package scanner) reads that stream, possibly from a chain of
input files, and hands tokens to a shift/reduce automaton (package lr/lalr),
which is driven by a precomputed parse table (package lr). Package structure
is as follows:

■ lex: Package lex implements the character-level scanner, emitting the
token protocol consumed by package scanner.

■ scanner: Package scanner implements the token source: lookahead via
pushback, chaining of input files, and end-of-input synthesis.

■ lr: Package lr implements parse tables: actions, the table loader and
supporting sparse matrices.

■ lr/lalr: Package lalr implements the LALR(1) automaton and the registry
of reduction actions.

■ pairs, conf: built-in grammars with precomputed tables, usable as-is and
as blueprints for applications defining their own.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package setra
