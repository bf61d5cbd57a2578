package lr

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/setra"
)

const testTable = `
# toy table
0  ident    s2
0  integer  r1
0  eof      r1
0  S        g1
1  eof      acc
2  integer  r2
`

func TestLoadActions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lr")
	defer teardown()
	//
	table, err := Load(strings.NewReader(testTable))
	if err != nil {
		t.Fatal(err)
	}
	a, ok := table.Action(0, setra.Ident)
	if !ok || a.Kind() != ShiftAction || a.Target() != 2 {
		t.Errorf("action(0,ident) is %v, want shift 2", a)
	}
	a, ok = table.Action(0, setra.Integer)
	if !ok || a.Kind() != ReduceAction || a.Rule() != 1 {
		t.Errorf("action(0,integer) is %v, want reduce 1", a)
	}
	a, ok = table.Action(1, setra.EOF)
	if !ok || a.Kind() != AcceptAction {
		t.Errorf("action(1,eof) is %v, want accept", a)
	}
	if _, ok = table.Action(1, setra.Ident); ok {
		t.Errorf("action(1,ident) should be a table miss")
	}
	if g, ok := table.Goto(0, "S"); !ok || g != 1 {
		t.Errorf("goto(0,S) is %d/%v, want 1", g, ok)
	}
	if _, ok := table.Goto(1, "S"); ok {
		t.Errorf("goto(1,S) should be a miss")
	}
	if table.States() != 3 {
		t.Errorf("table mentions %d states, want 3", table.States())
	}
}

func TestReduceRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lr")
	defer teardown()
	//
	table, err := Load(strings.NewReader(testTable))
	if err != nil {
		t.Fatal(err)
	}
	if rules := table.ReduceRules(); !reflect.DeepEqual(rules, []int{1, 2}) {
		t.Errorf("reduce rules are %v, want [1 2]", rules)
	}
}

func TestLoadRejectsMalformedTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lr")
	defer teardown()
	//
	malformed := []string{
		"0 ident s2\n0 ident r1\n",  // action conflict
		"0 S g1\n0 S g2\n",          // goto conflict
		"0 comment s1\n",            // unknown terminal
		"0 ident g1\n",              // goto entry for a terminal
		"0 ident x7\n",              // unknown entry tag
		"0 ident\n",                 // missing field
		"-1 ident s2\n",             // negative state
	}
	for _, src := range malformed {
		if _, err := Load(strings.NewReader(src)); err == nil {
			t.Errorf("table %q should be rejected", strings.TrimSpace(src))
		}
	}
}

func TestDumpIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setra.lr")
	defer teardown()
	//
	table, err := Load(strings.NewReader(testTable))
	if err != nil {
		t.Fatal(err)
	}
	var first, second bytes.Buffer
	table.Dump(&first)
	table.Dump(&second)
	if first.String() != second.String() {
		t.Errorf("dump output is not deterministic")
	}
	if !strings.Contains(first.String(), "accept") || !strings.Contains(first.String(), "goto 1") {
		t.Errorf("dump misses entries:\n%s", first.String())
	}
}
