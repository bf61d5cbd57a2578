package lr

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/setra"
	"github.com/npillmayer/setra/lr/sparse"
)

// --- Actions ----------------------------------------------------------------

// ActionKind discriminates the variants of an Action.
type ActionKind int8

// The action variants of a parse table entry.
const (
	NoAction ActionKind = iota
	ShiftAction
	ReduceAction
	AcceptAction
)

// Action is one parse table entry: shift to a state, reduce by a rule, or
// accept. The zero value is "no action", i.e. a syntax error position.
type Action struct {
	kind ActionKind
	arg  int
}

// Shift creates a shift action targeting state to.
func Shift(to int) Action {
	return Action{kind: ShiftAction, arg: to}
}

// Reduce creates a reduce action for grammar rule rule.
func Reduce(rule int) Action {
	return Action{kind: ReduceAction, arg: rule}
}

// Accept creates the accept action.
func Accept() Action {
	return Action{kind: AcceptAction}
}

// Kind returns the variant of a.
func (a Action) Kind() ActionKind {
	return a.kind
}

// Target returns the target state of a shift action.
func (a Action) Target() int {
	return a.arg
}

// Rule returns the grammar rule of a reduce action.
func (a Action) Rule() int {
	return a.arg
}

func (a Action) String() string {
	switch a.kind {
	case ShiftAction:
		return fmt.Sprintf("shift %d", a.arg)
	case ReduceAction:
		return fmt.Sprintf("reduce %d", a.arg)
	case AcceptAction:
		return "accept"
	}
	return "<none>"
}

// --- Tables -----------------------------------------------------------------

type actionKey struct {
	state int
	la    setra.TokType // lookahead terminal
}

// Table is a precomputed parse table, queried read-only by the parser.
// Create one with Load.
type Table struct {
	actions  map[actionKey]Action
	gotos    *sparse.IntMatrix // state × interned non-terminal
	nonterms map[string]int
	ntnames  []string
	states   int // highest state mentioned, plus one
}

// Action returns the table action for a state and a lookahead terminal.
// The second return value is false on a table miss, which the parser reports
// as a syntax error.
func (t *Table) Action(state int, la setra.TokType) (Action, bool) {
	a, ok := t.actions[actionKey{state, la}]
	return a, ok
}

// Goto returns the goto target for a state and the non-terminal a reduction
// has just produced. A miss is a configuration error, not a syntax error:
// a well-formed table has a goto entry for every reachable reduction.
func (t *Table) Goto(state int, nonterm string) (int, bool) {
	id, ok := t.nonterms[nonterm]
	if !ok {
		return 0, false
	}
	v := t.gotos.Value(state, id)
	if v == t.gotos.NullValue() {
		return 0, false
	}
	return int(v), true
}

// States returns the number of automaton states the table mentions.
func (t *Table) States() int {
	return t.states
}

// ReduceRules returns the distinct rule numbers referenced by reduce
// entries, in ascending order. Parsers validate their reduction registry
// against this set at startup.
func (t *Table) ReduceRules() []int {
	seen := map[int]bool{}
	for _, a := range t.actions {
		if a.kind == ReduceAction {
			seen[a.arg] = true
		}
	}
	rules := make([]int, 0, len(seen))
	for r := range seen {
		rules = append(rules, r)
	}
	sort.Ints(rules)
	return rules
}

func (t *Table) touch(state int) {
	if state >= t.states {
		t.states = state + 1
	}
}

func (t *Table) internNonterm(name string) int {
	if id, ok := t.nonterms[name]; ok {
		return id
	}
	id := len(t.ntnames)
	t.nonterms[name] = id
	t.ntnames = append(t.ntnames, name)
	return id
}

// --- Loading ----------------------------------------------------------------

// tableEntry is the parsed form of one table line, kept for fingerprinting
// and dumping.
type tableEntry struct {
	State  int
	Symbol string
	Entry  string
}

// Load reads a textual parse table (see the package documentation for the
// format). Action strings are parsed here, once; a duplicate entry for a
// (state, symbol) position makes the table malformed and is rejected.
func Load(r io.Reader) (*Table, error) {
	t := &Table{
		actions:  map[actionKey]Action{},
		gotos:    sparse.NewIntMatrix(sparse.DefaultNullValue),
		nonterms: map[string]int{},
	}
	var entries []tableEntry
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("table line %d: expected <state> <symbol> <entry>, got %q", lineno, line)
		}
		state, err := strconv.Atoi(fields[0])
		if err != nil || state < 0 {
			return nil, fmt.Errorf("table line %d: bad state %q", lineno, fields[0])
		}
		if err := t.addEntry(state, fields[1], fields[2]); err != nil {
			return nil, fmt.Errorf("table line %d: %v", lineno, err)
		}
		entries = append(entries, tableEntry{state, fields[1], fields[2]})
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].State != entries[j].State {
			return entries[i].State < entries[j].State
		}
		return entries[i].Symbol < entries[j].Symbol
	})
	if hash, err := structhash.Hash(entries, 1); err == nil {
		tracer().Infof("loaded parse table: %d states, %d entries, fingerprint %s",
			t.states, len(entries), hash)
	}
	return t, nil
}

func (t *Table) addEntry(state int, symbol, entry string) error {
	t.touch(state)
	if entry == "acc" {
		return t.addAction(state, symbol, Accept())
	}
	if len(entry) < 2 {
		return fmt.Errorf("bad entry %q", entry)
	}
	n, err := strconv.Atoi(entry[1:])
	if err != nil || n < 0 {
		return fmt.Errorf("bad entry %q", entry)
	}
	switch entry[0] {
	case 's':
		t.touch(n)
		return t.addAction(state, symbol, Shift(n))
	case 'r':
		return t.addAction(state, symbol, Reduce(n))
	case 'g':
		t.touch(n)
		return t.addGoto(state, symbol, n)
	}
	return fmt.Errorf("bad entry %q", entry)
}

func (t *Table) addAction(state int, terminal string, a Action) error {
	la, ok := setra.TokenTypeOf(terminal)
	if !ok {
		return fmt.Errorf("unknown terminal %q", terminal)
	}
	key := actionKey{state, la}
	if prev, exists := t.actions[key]; exists {
		return fmt.Errorf("conflict at (%d,%s): %s vs %s", state, terminal, prev, a)
	}
	t.actions[key] = a
	return nil
}

func (t *Table) addGoto(state int, nonterm string, target int) error {
	if _, isTerminal := setra.TokenTypeOf(nonterm); isTerminal {
		return fmt.Errorf("goto entry for terminal %q", nonterm)
	}
	id := t.internNonterm(nonterm)
	if t.gotos.Value(state, id) != t.gotos.NullValue() {
		return fmt.Errorf("conflict at (%d,%s): duplicate goto", state, nonterm)
	}
	t.gotos.Set(state, id, int32(target))
	return nil
}

// --- Dumping ----------------------------------------------------------------

// Dump writes a deterministic plain-text rendering of the table, for
// debugging. Entries are ordered by state, then symbol name.
func (t *Table) Dump(w io.Writer) {
	rows := treeset.NewWith(func(x, y interface{}) int {
		a, b := x.(tableEntry), y.(tableEntry)
		if c := utils.IntComparator(a.State, b.State); c != 0 {
			return c
		}
		return utils.StringComparator(a.Symbol, b.Symbol)
	})
	for key, a := range t.actions {
		rows.Add(tableEntry{key.state, key.la.String(), a.String()})
	}
	t.gotos.Each(func(i, j int, v int32) {
		rows.Add(tableEntry{i, t.ntnames[j], fmt.Sprintf("goto %d", v)})
	})
	fmt.Fprintf(w, "parse table, %d states:\n", t.states)
	rows.Each(func(_ int, row interface{}) {
		e := row.(tableEntry)
		fmt.Fprintf(w, "%4d  %-14s %s\n", e.State, e.Symbol, e.Entry)
	})
}
