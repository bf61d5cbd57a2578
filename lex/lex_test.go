package lex

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/setra"
	"github.com/npillmayer/setra/scanner"
)

func tokenize(t *testing.T, input string) []string {
	tok, err := NewTokenizer()
	if err != nil {
		t.Fatalf("cannot compile tokenizer: %v", err)
	}
	var buf bytes.Buffer
	if err := tok.TokenizeString("test", input, &buf); err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestTokenizeStatement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lex")
	defer teardown()
	//
	lines := tokenize(t, "set x = 1\n")
	want := []string{"1", "kw_set:'set'", "ident:'x'", "equal:'='", "integer:'1'", "nl:''"}
	if len(lines) != len(want) {
		t.Fatalf("got %d protocol lines %v, want %d", len(lines), lines, len(want))
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line #%d is %q, want %q", i, lines[i], w)
		}
	}
}

var inputStrings = []string{
	"x y 1 2",
	"unset foo;",
	"pi = 3.14",
	"a[0] = { b | c }",
	`greeting = "hello, world"`,
	"x @ y",
}

var tokenCounts = []int{4, 3, 3, 10, 3, 3}

func TestTokenCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lex")
	defer teardown()
	//
	for i, input := range inputStrings {
		lines := tokenize(t, input)
		count := 0
		for _, line := range lines {
			if strings.Contains(line, ":") {
				count++
			}
		}
		if count != tokenCounts[i] {
			t.Errorf("expected token count for #%d to be %d, is %d (%v)",
				i, tokenCounts[i], count, lines)
		}
	}
}

func TestKeywordsBeatIdents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lex")
	defer teardown()
	//
	lines := tokenize(t, "set settle unset")
	want := []string{"1", "kw_set:'set'", "ident:'settle'", "kw_unset:'unset'"}
	for i, w := range want {
		if i >= len(lines) || lines[i] != w {
			t.Fatalf("got %v, want %v", lines, want)
		}
	}
}

func TestUnclassifiableInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lex")
	defer teardown()
	//
	lines := tokenize(t, "x @ y")
	found := false
	for _, line := range lines {
		if line == "invalid:'@'" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an invalid token for '@', got %v", lines)
	}
}

// A raw newline inside a string must not produce a lexeme spanning two
// protocol lines: the scanner has to be able to read everything the
// tokenizer emits, with the offending input downgraded to invalid tokens.
func TestMultilineStringStaysOnProtocol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lex", "setra.scanner")
	defer teardown()
	//
	tok, err := NewTokenizer()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := tok.TokenizeString("test", "set x = \"a\nb\";\n", &buf); err != nil {
		t.Fatal(err)
	}
	s := scanner.NewStream()
	s.Push("test", &buf)
	sawInvalid := false
	for {
		token, err := s.Next()
		if err != nil {
			t.Fatalf("scanner rejected the token protocol: %v", err)
		}
		if token.TokType() == setra.Invalid {
			sawInvalid = true
		}
		if token.TokType() == setra.EOF {
			break
		}
	}
	if !sawInvalid {
		t.Errorf("unterminated string should surface as invalid tokens")
	}
}

func TestLineDirectives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lex")
	defer teardown()
	//
	lines := tokenize(t, "x\ny\n")
	want := []string{"1", "ident:'x'", "nl:''", "2", "ident:'y'", "nl:''"}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line #%d is %q, want %q", i, lines[i], w)
		}
	}
}

// Lexemes with embedded quotes must survive the protocol quoting unchanged.
func TestQuotingRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lex", "setra.scanner")
	defer teardown()
	//
	inputs := []struct {
		src    string
		typ    setra.TokType
		lexeme string
	}{
		{`'don\'t'`, setra.StringS, `'don\'t'`},
		{`"a 'quoted' word"`, setra.StringD, `"a 'quoted' word"`},
	}
	tok, err := NewTokenizer()
	if err != nil {
		t.Fatal(err)
	}
	for _, in := range inputs {
		var buf bytes.Buffer
		if err := tok.TokenizeString("test", in.src, &buf); err != nil {
			t.Fatal(err)
		}
		s := scanner.NewStream()
		s.Push("test", &buf)
		token, err := s.Next()
		if err != nil {
			t.Fatalf("input %q: %v", in.src, err)
		}
		if token.TokType() != in.typ || token.Lexeme() != in.lexeme {
			t.Errorf("input %q came back as %v, want %s(%q)",
				in.src, token, in.typ, in.lexeme)
		}
	}
}
