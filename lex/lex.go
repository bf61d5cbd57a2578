/*
Package lex implements the character-level scanner of the setra front end.

The scanner matches raw source text against the fixed terminal vocabulary
(see the base package) and writes the line-oriented token protocol consumed
by package scanner: a bare integer on a line by itself is a line-number
directive, every other line is `<type>:'<quoted-lexeme>'` with embedded
single quotes escaped shell-style. Input the DFA cannot classify surfaces as
`invalid` tokens; the scanner itself never aborts the pipeline.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lex

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/setra"
)

// tracer traces with key 'setra.lex'.
func tracer() tracing.Trace {
	return tracing.Select("setra.lex")
}

// The single-character terminals of the vocabulary.
var literalTypes = map[string]setra.TokType{
	"[":  setra.BracketOpen,
	"]":  setra.BracketClose,
	"{":  setra.BraceOpen,
	"}":  setra.BraceClose,
	"(":  setra.ParenOpen,
	")":  setra.ParenClose,
	"&":  setra.Ampersand,
	"*":  setra.Asterisk,
	"\\": setra.Backslash,
	"^":  setra.Caret,
	":":  setra.Colon,
	",":  setra.Comma,
	"$":  setra.Dollar,
	"=":  setra.Equal,
	"-":  setra.Minus,
	".":  setra.Period,
	"|":  setra.Vert,
	"+":  setra.Plus,
	"?":  setra.Question,
	"/":  setra.Slash,
	";":  setra.Semicolon,
}

// The keyword terminals. Keywords take precedence over ident.
var keywordTypes = map[string]setra.TokType{
	"set":   setra.KwSet,
	"unset": setra.KwUnset,
}

// Tokenizer is a compiled scanner for the setra vocabulary. It is stateless
// across inputs; one Tokenizer may scan any number of sources sequentially.
type Tokenizer struct {
	lexer *lexmachine.Lexer
}

// NewTokenizer compiles the scanner DFA. Compiling is not cheap; clients
// should reuse a Tokenizer for all their inputs.
func NewTokenizer() (*Tokenizer, error) {
	lexer := lexmachine.NewLexer()
	for kw, typ := range keywordTypes {
		lexer.Add([]byte(kw), makeToken(typ))
	}
	lexer.Add([]byte(`(_|[a-z]|[A-Z])(_|[a-z]|[A-Z]|[0-9])*`), makeToken(setra.Ident))
	lexer.Add([]byte(`[0-9]+\.[0-9]+`), makeToken(setra.Float))
	lexer.Add([]byte(`[0-9]+`), makeToken(setra.Integer))
	// strings are single-line: a raw newline inside quotes would end up as
	// a lexeme which cannot travel on the line-oriented protocol
	lexer.Add([]byte(`"([^"\\\n]|\\[^\n])*"`), makeToken(setra.StringD))
	lexer.Add([]byte(`'([^'\\\n]|\\[^\n])*'`), makeToken(setra.StringS))
	for lit, typ := range literalTypes {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		lexer.Add([]byte(r), makeToken(typ))
	}
	lexer.Add([]byte("\r?\n"), makeToken(setra.NL))
	lexer.Add([]byte(`( |\t)+`), skip)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &Tokenizer{lexer: lexer}, nil
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(typ setra.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// Tokenize scans input and writes the token protocol to w. name is the
// source attribution used in diagnostics. Unclassifiable input is emitted as
// `invalid` tokens; only I/O errors on w are returned.
func (t *Tokenizer) Tokenize(name string, input []byte, w io.Writer) error {
	scan, err := t.lexer.Scanner(input)
	if err != nil {
		return err
	}
	e := &emitter{w: w}
	for {
		tok, err, eof := scan.Next()
		if eof {
			break
		}
		if err != nil {
			ui, is := err.(*machines.UnconsumedInput)
			if !is {
				return err
			}
			// emit the unmatched input run as an invalid token and resume
			// scanning behind it
			start, fail := ui.StartTC, ui.FailTC
			if fail <= start {
				fail = start + 1
			}
			if fail > len(input) {
				fail = len(input)
			}
			// never let an unmatched run cross a line boundary; the lexeme
			// has to fit on one protocol line
			if nl := bytes.IndexByte(input[start:fail], '\n'); nl > 0 {
				fail = start + nl
			}
			tracer().Debugf("%s:%d: unclassifiable input %q", name, ui.StartLine, input[start:fail])
			e.emit(setra.Invalid, string(input[start:fail]), ui.StartLine)
			scan.TC = fail
			continue
		}
		token := tok.(*lexmachine.Token)
		e.emit(setra.TokType(token.Type), string(token.Lexeme), token.StartLine)
	}
	return e.err
}

// TokenizeString is a convenience wrapper around Tokenize.
func (t *Tokenizer) TokenizeString(name, input string, w io.Writer) error {
	return t.Tokenize(name, []byte(input), w)
}

// emitter writes protocol lines, interleaving a line-number directive
// whenever the input line changes. The first write error sticks.
type emitter struct {
	w    io.Writer
	line int
	err  error
}

func (e *emitter) emit(typ setra.TokType, lexeme string, line int) {
	if e.err != nil {
		return
	}
	if line != e.line {
		e.line = line
		if _, err := fmt.Fprintf(e.w, "%d\n", line); err != nil {
			e.err = err
			return
		}
	}
	if typ == setra.NL {
		// a literal newline inside the quoted value would break the
		// line-oriented protocol
		lexeme = ""
	}
	if _, err := fmt.Fprintf(e.w, "%s:%s\n", typ, quote(lexeme)); err != nil {
		e.err = err
	}
}

// quote wraps v in single quotes, escaping embedded quotes shell-style.
func quote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", `'\''`) + "'"
}
