package lalr

import "github.com/npillmayer/setra"

// The automaton owns two synchronized stacks: a value stack of grammar
// symbols and a state stack of automaton states. Outside of an in-progress
// reduction the state stack is always exactly one entry deeper than the
// value stack. Pop and Peek return a false sentinel on an empty stack rather
// than panicking; the hot path of the automaton stays branch-based.

// SymbolStack is the parser's value stack.
type SymbolStack struct {
	items []setra.Symbol
}

// Push pushes a symbol.
func (s *SymbolStack) Push(sym setra.Symbol) {
	s.items = append(s.items, sym)
}

// Pop removes and returns the top symbol; false if the stack is empty.
func (s *SymbolStack) Pop() (setra.Symbol, bool) {
	if len(s.items) == 0 {
		return setra.Symbol{}, false
	}
	sym := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return sym, true
}

// Peek returns the top symbol without removing it; false if empty.
func (s *SymbolStack) Peek() (setra.Symbol, bool) {
	if len(s.items) == 0 {
		return setra.Symbol{}, false
	}
	return s.items[len(s.items)-1], true
}

// Size returns the number of symbols on the stack.
func (s *SymbolStack) Size() int {
	return len(s.items)
}

// StateStack is the parser's stack of automaton states.
type StateStack struct {
	items []int
}

// Push pushes a state.
func (s *StateStack) Push(state int) {
	s.items = append(s.items, state)
}

// Pop removes and returns the top state; false if the stack is empty.
func (s *StateStack) Pop() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	state := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return state, true
}

// Peek returns the top state without removing it; false if empty.
func (s *StateStack) Peek() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

// Size returns the number of states on the stack.
func (s *StateStack) Size() int {
	return len(s.items)
}
