package conf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/setra/lex"
	"github.com/npillmayer/setra/lr/lalr"
	"github.com/npillmayer/setra/scanner"
)

func parseString(t *testing.T, input string) (interface{}, error) {
	tokenizer, err := lex.NewTokenizer()
	if err != nil {
		t.Fatal(err)
	}
	var protocol bytes.Buffer
	if err := tokenizer.TokenizeString("test", input, &protocol); err != nil {
		t.Fatal(err)
	}
	stream := scanner.NewStream()
	stream.Push("test", &protocol)
	parser, err := NewParser()
	if err != nil {
		t.Fatal(err)
	}
	result, err := parser.Parse(stream)
	if err != nil {
		return nil, err
	}
	return result.Value(), nil
}

func TestStatements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lex", "setra.scanner", "setra.lr")
	defer teardown()
	//
	input := `set x = 1;
set pi = 3.14;
set msg = "hello";
unset x;
`
	value, err := parseString(t, input)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"x = 1",
		"pi = 3.14",
		`msg = "hello"`,
		"unset x",
	}, "\n")
	if value != want {
		t.Errorf("derived value is\n%v\nwant\n%v", value, want)
	}
}

func TestEmptyProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lex", "setra.scanner", "setra.lr")
	defer teardown()
	//
	value, err := parseString(t, "\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if value != "" {
		t.Errorf("empty program derives %q, want \"\"", value)
	}
}

func TestIdentAndSingleQuotedValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lex", "setra.scanner", "setra.lr")
	defer teardown()
	//
	value, err := parseString(t, "set a = b; set c = 'd';")
	if err != nil {
		t.Fatal(err)
	}
	if value != "a = b\nc = 'd'" {
		t.Errorf("derived value is %q", value)
	}
}

func TestSyntaxErrorIsAttributed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lex", "setra.scanner", "setra.lr")
	defer teardown()
	//
	_, err := parseString(t, "set x = 1;\nset = 2;\n")
	if err == nil {
		t.Fatal("missing identifier should be rejected")
	}
	syn, ok := err.(*lalr.SyntaxError)
	if !ok {
		t.Fatalf("expected a *SyntaxError, got %T: %v", err, err)
	}
	if syn.Token.Line() != 2 {
		t.Errorf("error attributed to line %d, want 2", syn.Token.Line())
	}
	if !strings.Contains(err.Error(), "test:2: error:") {
		t.Errorf("error message %q misses position info", err.Error())
	}
}

func TestLexicalErrorsSurfaceAsInvalidTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lex", "setra.scanner", "setra.lr")
	defer teardown()
	//
	_, err := parseString(t, "set x = @;")
	if err == nil {
		t.Fatal("unclassifiable input should be rejected by the parser")
	}
	syn, ok := err.(*lalr.SyntaxError)
	if !ok {
		t.Fatalf("expected a *SyntaxError, got %T: %v", err, err)
	}
	if syn.Token.Lexeme() != "@" {
		t.Errorf("offending token is %v, want the invalid '@'", syn.Token)
	}
}
