package llgram

import "strings"

// SymbolKind categorizes a canonical symbol name.
type SymbolKind int

const (
	// SymbolTerminal is a quoted literal, e.g. `"a"`.
	SymbolTerminal SymbolKind = iota
	// SymbolNonTerminal is the lhs of at least one production.
	SymbolNonTerminal
	// SymbolLexical is a name declared in the lexma section.
	SymbolLexical
	// SymbolEpsilon is the empty-string literal `""`.
	SymbolEpsilon
	// SymbolEndMarker is the end-of-input marker `$`.
	SymbolEndMarker
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolTerminal:
		return "Terminal"
	case SymbolNonTerminal:
		return "NonTerminal"
	case SymbolLexical:
		return "Lexical"
	case SymbolEpsilon:
		return "Epsilon"
	case SymbolEndMarker:
		return "EndMarker"
	default:
		return "Unknown"
	}
}

// epsilon is the canonical empty-string literal.
const epsilon = `""`

// endMarker is the canonical end-of-input symbol.
const endMarker = "$"

// isQuoted reports whether s is delimited by double quotes on both ends
// and is at least two characters long, i.e. it is a terminal's canonical
// textual form (including the empty literal `""`).
func isQuoted(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}

// Production is a single grammar rule `lhs -> rhs` with an optional
// semantic-action payload, preserved verbatim and opaque to this package.
type Production struct {
	LHS    string
	RHS    []string
	Action *string
}

// HasAction reports whether this production carries a semantic action.
func (p Production) HasAction() bool {
	return p.Action != nil
}

// String renders a production for debugging/Dump() purposes.
func (p Production) String() string {
	var b strings.Builder
	b.WriteString(p.LHS)
	b.WriteString(" ::= ")
	for i, s := range p.RHS {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(s)
	}
	if p.Action != nil {
		b.WriteString(" { ")
		b.WriteString(*p.Action)
		b.WriteString(" }")
	}
	return b.String()
}

// tokKind is the kind of a grammar-source token, produced only by the
// grammar tokenizer (component 4.3 of the spec).
type tokKind int

const (
	tokLeftSide tokKind = iota
	tokRightSide
	tokReturn
	tokColon
	tokSemicolon
)

func (k tokKind) String() string {
	switch k {
	case tokLeftSide:
		return "LEFT_SIDE"
	case tokRightSide:
		return "RIGHT_SIDE"
	case tokReturn:
		return "RETURN"
	case tokColon:
		return "COLON"
	case tokSemicolon:
		return "SEMICOLON"
	default:
		return "UNKNOWN"
	}
}

// gtoken is a single token of the grammar-source token stream.
type gtoken struct {
	kind   tokKind
	lexeme string
}
