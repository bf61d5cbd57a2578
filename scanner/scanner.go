/*
Package scanner implements the token source for setra parsers.

A Stream reads the line-oriented token protocol produced by package lex (or
by any external tokenizer speaking the same protocol) and produces tokens on
demand. It supports lookahead of arbitrary depth via pushback, chaining of
several input sources, and synthesizes exactly one eof token per exhausted
source.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/setra"
)

// tracer traces with key 'setra.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("setra.scanner")
}

// TokenSource is the lookahead-capable token interface the parser relies on.
// Next and Peek return io.EOF after the last chained input source has been
// exhausted and its synthesized eof token has been consumed. Any other error
// is an I/O- or protocol-level failure and is not recoverable.
type TokenSource interface {
	Next() (setra.Token, error)
	Peek() (setra.Token, error)
	PushBack(tok setra.Token)
}

// input is one pending source on the file stack.
type input struct {
	name  string
	rd    io.Reader
	lines *bufio.Scanner
	line  int // current line number, updated by line directives
}

// Stream is the default TokenSource implementation. It owns a stack of
// pending input sources, innermost (most recently pushed) on top, and a
// pushback buffer which is drained ahead of the live stream.
type Stream struct {
	inputs  *arraystack.Stack // of *input
	pending []setra.Token     // pushback buffer; last entry is returned first
}

var _ TokenSource = (*Stream)(nil)

// NewStream creates an empty token stream. Push at least one input source
// before reading from it.
func NewStream() *Stream {
	return &Stream{inputs: arraystack.New()}
}

// Push makes (name, r) the current input source. A source pushed while an
// earlier one is still pending is read to exhaustion first; the earlier
// source resumes afterwards. If r implements io.Closer it is closed as soon
// as the source is exhausted or fails.
func (s *Stream) Push(name string, r io.Reader) {
	s.inputs.Push(&input{
		name:  name,
		rd:    r,
		lines: bufio.NewScanner(r),
		line:  1,
	})
	tracer().Debugf("pushed input source %q", name)
}

// PushBack returns tok to the front of the stream: the next Next or Peek will
// deliver it before anything else. Pushing back several tokens, the last one
// pushed is the first one returned. Multi-token lookahead therefore pushes
// back in reverse order.
func (s *Stream) PushBack(tok setra.Token) {
	s.pending = append(s.pending, tok)
}

// Peek returns the next token without consuming it. Repeated calls return
// the same token and do not reorder subsequent Next calls.
func (s *Stream) Peek() (setra.Token, error) {
	tok, err := s.Next()
	if err != nil {
		return tok, err
	}
	s.PushBack(tok)
	return tok, nil
}

// Next returns and consumes the next token. The pushback buffer is drained
// first; otherwise tokens are read from the current input source. When the
// current source is exhausted, Next synthesizes a single eof token attributed
// to it and pops it off the file stack; the following call resumes from the
// next pending source, or returns io.EOF if none remain.
func (s *Stream) Next() (setra.Token, error) {
	if n := len(s.pending); n > 0 {
		tok := s.pending[n-1]
		s.pending = s.pending[:n-1]
		return tok, nil
	}
	top, ok := s.inputs.Peek()
	if !ok {
		return setra.Token{}, io.EOF
	}
	in := top.(*input)
	tok, ok, err := s.scanLine(in)
	if err != nil {
		// the error is fatal for this source; release it right away
		s.inputs.Pop()
		s.close(in)
		return setra.Token{}, err
	}
	if ok {
		return tok, nil
	}
	// in is exhausted: synthesize its eof and pop to the next source
	s.inputs.Pop()
	s.close(in)
	tracer().Debugf("input source %q exhausted after line %d", in.name, in.line)
	return setra.MakeToken(setra.EOF, "", in.name, in.line), nil
}

func (s *Stream) close(in *input) {
	if c, ok := in.rd.(io.Closer); ok {
		c.Close()
	}
}

// scanLine reads protocol lines from in until one yields a token. Line
// directives update the line counter and are never surfaced. The second
// return value is false once in is exhausted.
func (s *Stream) scanLine(in *input) (setra.Token, bool, error) {
	for in.lines.Scan() {
		line := in.lines.Text()
		if line == "" {
			continue
		}
		if n, isDirective := lineDirective(line); isDirective {
			in.line = n
			continue
		}
		typ, lexeme, err := parseTokenLine(line)
		if err != nil {
			return setra.Token{}, false, fmt.Errorf("%s:%d: %v", in.name, in.line, err)
		}
		return setra.MakeToken(typ, lexeme, in.name, in.line), true, nil
	}
	if err := in.lines.Err(); err != nil {
		return setra.Token{}, false, fmt.Errorf("reading %s: %v", in.name, err)
	}
	return setra.Token{}, false, nil
}

// lineDirective recognizes a bare non-negative integer on a line by itself.
func lineDirective(line string) (int, bool) {
	if line[0] < '0' || line[0] > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseTokenLine dissects a protocol line of the form
//
//    <type>:'<quoted-value>'
//
// where embedded single quotes in the value are escaped shell-style
// (' becomes '\''). The inverse of that escaping recovers the literal
// token text.
func parseTokenLine(line string) (setra.TokType, string, error) {
	colon := strings.IndexByte(line, ':')
	if colon <= 0 {
		return setra.Invalid, "", fmt.Errorf("malformed token line %q", line)
	}
	name := line[:colon]
	typ, ok := setra.TokenTypeOf(name)
	if !ok {
		return setra.Invalid, "", fmt.Errorf("unknown token type %q", name)
	}
	lexeme, err := unquote(line[colon+1:])
	if err != nil {
		return setra.Invalid, "", fmt.Errorf("token line %q: %v", line, err)
	}
	return typ, lexeme, nil
}

func unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return "", fmt.Errorf("value not single-quoted")
	}
	return strings.ReplaceAll(s[1:len(s)-1], `'\''`, "'"), nil
}
