package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/setra/conf"
	"github.com/npillmayer/setra/lex"
	"github.com/npillmayer/setra/lr"
	"github.com/npillmayer/setra/lr/lalr"
	"github.com/npillmayer/setra/pairs"
	"github.com/npillmayer/setra/scanner"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// setra parses one input file with a built-in grammar and prints the derived
// value to stdout. Recoverable parse errors are reported to stderr as
// "<file>:<line>: error: <message>"; unrecoverable conditions as
// "fatal: <message>" with exit code 1.
func main() {
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	grammar := flag.String("grammar", "conf", "Built-in grammar [conf|pairs]")
	dump := flag.Bool("dump", false, "Dump the parse table to stderr")
	flag.Parse()
	gtrace.SyntaxTracer = gologadapter.New()
	for _, key := range []string{"setra.lex", "setra.scanner", "setra.lr"} {
		tracing.Select(key).SetTraceLevel(traceLevel(*tlevel))
	}
	if flag.NArg() != 1 {
		fatalf("usage: setra [options] <file>")
	}
	path := flag.Arg(0)
	if path == "-" {
		fatalf("reading from stdin is not supported, need a file path")
	}
	parser, table, err := makeParser(*grammar)
	if err != nil {
		fatalf("%v", err)
	}
	if *dump {
		table.Dump(os.Stderr)
	}
	result, err := parse(parser, path)
	if err != nil {
		var syn *lalr.SyntaxError
		if errors.As(err, &syn) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fatalf("%v", err)
	}
	fmt.Println(result)
}

func makeParser(grammar string) (*lalr.Parser, *lr.Table, error) {
	switch grammar {
	case "conf":
		table, err := conf.Table()
		if err != nil {
			return nil, nil, err
		}
		p, err := lalr.NewParser(table, conf.Reductions())
		return p, table, err
	case "pairs":
		table, err := pairs.Table()
		if err != nil {
			return nil, nil, err
		}
		p, err := lalr.NewParser(table, pairs.Reductions())
		return p, table, err
	}
	return nil, nil, fmt.Errorf("unknown grammar %q", grammar)
}

// parse runs the two front-end stages strictly sequentially: tokenize the
// whole file into the token protocol, then drive the automaton over it.
func parse(parser *lalr.Parser, path string) (interface{}, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tokenizer, err := lex.NewTokenizer()
	if err != nil {
		return nil, err
	}
	var protocol bytes.Buffer
	if err := tokenizer.Tokenize(path, data, &protocol); err != nil {
		return nil, err
	}
	stream := scanner.NewStream()
	stream.Push(path, &protocol)
	result, err := parser.Parse(stream)
	if err != nil {
		return nil, err
	}
	return result.Value(), nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "fatal: "+format+"\n", args...)
	os.Exit(1)
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
