package setra

import "fmt"

// --- Terminal categories ----------------------------------------------------

// TokType is a category type for a Token. The set of terminal categories is
// closed: it is exactly the vocabulary the tokenizer stage may emit.
type TokType int

// The terminal vocabulary. Invalid is deliberately the zero value, so that an
// uninitialized token is never mistaken for a meaningful one.
const (
	Invalid TokType = iota // input the tokenizer could not classify
	EOF                    // synthesized once per exhausted input source
	NL                     // newline; preserved by the tokenizer, skipped by the parser
	KwSet
	KwUnset
	Ident
	Integer
	Float
	StringD // double-quoted string
	StringS // single-quoted string
	BracketOpen
	BracketClose
	BraceOpen
	BraceClose
	ParenOpen
	ParenClose
	Ampersand
	Asterisk
	Backslash
	Caret
	Colon
	Comma
	Dollar
	Equal
	Minus
	Period
	Vert
	Plus
	Question
	Slash
	Semicolon
)

var typeNames = map[TokType]string{
	Invalid:      "invalid",
	EOF:          "eof",
	NL:           "nl",
	KwSet:        "kw_set",
	KwUnset:      "kw_unset",
	Ident:        "ident",
	Integer:      "integer",
	Float:        "float",
	StringD:      "string_d",
	StringS:      "string_s",
	BracketOpen:  "bracket_open",
	BracketClose: "bracket_close",
	BraceOpen:    "brace_open",
	BraceClose:   "brace_close",
	ParenOpen:    "paren_open",
	ParenClose:   "paren_close",
	Ampersand:    "ampersand",
	Asterisk:     "asterisk",
	Backslash:    "backslash",
	Caret:        "caret",
	Colon:        "colon",
	Comma:        "comma",
	Dollar:       "dollar",
	Equal:        "equal",
	Minus:        "minus",
	Period:       "period",
	Vert:         "vert",
	Plus:         "plus",
	Question:     "question",
	Slash:        "slash",
	Semicolon:    "semicolon",
}

var typesByName = map[string]TokType{}

func init() {
	for t, name := range typeNames {
		typesByName[name] = t
	}
}

func (t TokType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tok(%d)", int(t))
}

// TokenTypeOf maps a terminal name from the token protocol ("ident",
// "kw_set", …) back to its category. The vocabulary is case-sensitive.
func TokenTypeOf(name string) (TokType, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// --- Tokens -----------------------------------------------------------------

// Token is an immutable lexical token: a terminal category plus the matched
// text, attributed to an input source and line for diagnostics.
type Token struct {
	typ    TokType
	lexeme string
	file   string
	line   int
}

// MakeToken creates a token. Tokens are values and never modified after
// creation.
func MakeToken(typ TokType, lexeme string, file string, line int) Token {
	return Token{
		typ:    typ,
		lexeme: lexeme,
		file:   file,
		line:   line,
	}
}

// TokType returns the terminal category of t.
func (t Token) TokType() TokType {
	return t.typ
}

// Lexeme returns the matched input text of t.
func (t Token) Lexeme() string {
	return t.lexeme
}

// File returns the name of the input source t stems from.
func (t Token) File() string {
	return t.file
}

// Line returns the 1-based input line t stems from.
func (t Token) Line() int {
	return t.line
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.typ, t.lexeme)
}

// --- Grammar symbols --------------------------------------------------------

// Symbol is an entry of the parser's value stack: either a terminal, wrapping
// the token which has been shifted, or a non-terminal, wrapping whatever
// semantic value its reduction has constructed.
type Symbol struct {
	terminal bool
	name     string // non-terminal name; empty for terminals
	tok      Token
	val      interface{}
}

// TerminalSymbol wraps a shifted token as a stack symbol.
func TerminalSymbol(tok Token) Symbol {
	return Symbol{terminal: true, tok: tok}
}

// NonterminalSymbol wraps the result of a reduction as a stack symbol.
func NonterminalSymbol(name string, value interface{}) Symbol {
	return Symbol{name: name, val: value}
}

// IsTerminal returns true for symbols produced by a shift.
func (s Symbol) IsTerminal() bool {
	return s.terminal
}

// Name returns the grammar-symbol name: the terminal category name for
// terminals, the non-terminal name otherwise. GOTO entries of a parse table
// are keyed by this name.
func (s Symbol) Name() string {
	if s.terminal {
		return s.tok.typ.String()
	}
	return s.name
}

// Token returns the wrapped token. Only meaningful for terminals.
func (s Symbol) Token() Token {
	return s.tok
}

// Value returns the semantic value: a terminal's literal text, or the value
// a reduction has constructed.
func (s Symbol) Value() interface{} {
	if s.terminal {
		return s.tok.lexeme
	}
	return s.val
}

func (s Symbol) String() string {
	if s.terminal {
		return s.tok.String()
	}
	return fmt.Sprintf("%s=%v", s.name, s.val)
}
