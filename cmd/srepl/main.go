package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/setra/conf"
	"github.com/npillmayer/setra/lex"
	"github.com/npillmayer/setra/lr"
	"github.com/npillmayer/setra/lr/lalr"
	"github.com/npillmayer/setra/scanner"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// srepl is an interactive sandbox for the setra front end: every input line
// is tokenized and parsed with the built-in statement grammar, and the
// derived value (or the parse error) is printed. Commands:
//
//    :table    dump the parse table
//    :quit     leave the REPL
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	for _, key := range []string{"setra.lex", "setra.scanner", "setra.lr"} {
		tracing.Select(key).SetTraceLevel(traceLevel(*tlevel))
	}
	pterm.Info.Println("Welcome to the setra REPL")
	intp, err := newIntp()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	pterm.Info.Println("Quit with :quit or <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object.
type Intp struct {
	repl      *readline.Instance
	tokenizer *lex.Tokenizer
	parser    *lalr.Parser
	table     *lr.Table
	lineno    int
}

func newIntp() (*Intp, error) {
	repl, err := readline.New("setra> ")
	if err != nil {
		return nil, err
	}
	tokenizer, err := lex.NewTokenizer()
	if err != nil {
		return nil, err
	}
	table, err := conf.Table()
	if err != nil {
		return nil, err
	}
	parser, err := lalr.NewParser(table, conf.Reductions())
	if err != nil {
		return nil, err
	}
	return &Intp{
		repl:      repl,
		tokenizer: tokenizer,
		parser:    parser,
		table:     table,
	}, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if intp.command(line) {
				break
			}
			continue
		}
		intp.Eval(line)
	}
	println("Good bye!")
}

// command executes a REPL command; returns true to quit.
func (intp *Intp) command(cmd string) bool {
	switch cmd {
	case ":quit", ":q":
		return true
	case ":table":
		intp.table.Dump(os.Stdout)
	default:
		pterm.Error.Println("unknown command " + cmd)
	}
	return false
}

// Eval parses one input line and prints the derived value.
func (intp *Intp) Eval(line string) {
	intp.lineno++
	name := fmt.Sprintf("repl:%d", intp.lineno)
	var protocol bytes.Buffer
	if err := intp.tokenizer.TokenizeString(name, line+"\n", &protocol); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	stream := scanner.NewStream()
	stream.Push(name, &protocol)
	result, err := intp.parser.Parse(stream)
	if err != nil {
		var syn *lalr.SyntaxError
		if errors.As(err, &syn) {
			pterm.Error.Println(err.Error())
		} else {
			pterm.Error.Println("fatal: " + err.Error())
		}
		return
	}
	value := fmt.Sprintf("%v", result.Value())
	if value == "" {
		value = "<empty>"
	}
	pterm.Info.Println(value)
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
