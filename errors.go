package llgram

import "fmt"

// Kind identifies one of the fatal error categories a grammar build can
// fail with. None of these are recoverable: Parse returns on the first one
// it hits and no partial Grammar is ever handed back to the caller.
type Kind int

const (
	// MissingGrammarSection means the source has no /start-gramma…/end-gramma block.
	MissingGrammarSection Kind = iota
	// MalformedDefinitionLine means a lexma/macro line has no colon.
	MalformedDefinitionLine
	// MissingProductionTerminator means a production was never closed with ';'.
	MissingProductionTerminator
	// UnbalancedActionBlock means a '{' action block was never closed.
	UnbalancedActionBlock
	// UnexpectedToken means the production builder found a token it could not use
	// in the position it expected.
	UnexpectedToken
	// UndefinedSymbol means a rhs symbol is neither a terminal, a declared
	// non-terminal, a declared lexical name, nor the empty literal.
	UndefinedSymbol
	// TableConflict means two productions would occupy the same LL(1) table cell.
	TableConflict
)

// String names a Kind the way the spec's error taxonomy names it.
func (k Kind) String() string {
	switch k {
	case MissingGrammarSection:
		return "MissingGrammarSection"
	case MalformedDefinitionLine:
		return "MalformedDefinitionLine"
	case MissingProductionTerminator:
		return "MissingProductionTerminator"
	case UnbalancedActionBlock:
		return "UnbalancedActionBlock"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UndefinedSymbol:
		return "UndefinedSymbol"
	case TableConflict:
		return "TableConflict"
	default:
		return "UnknownError"
	}
}

// GrammarError is the single error type Parse returns. It names the lexeme
// or symbol that triggered the failure, and (only for TableConflict) the
// two production indices that collided.
type GrammarError struct {
	Kind      Kind
	Subject   string // offending lexeme or symbol name
	NonTerm   string // non-terminal column, set only for TableConflict
	Terminal  string // terminal/lexical column, set only for TableConflict
	ProdA     int    // first production index, set only for TableConflict
	ProdB     int    // second (colliding) production index, set only for TableConflict
	hasProdAB bool
}

func (e *GrammarError) Error() string {
	if e.hasProdAB {
		return fmt.Sprintf("%s: table[%s][%s] already holds production %d, cannot also hold %d",
			e.Kind, e.NonTerm, e.Terminal, e.ProdA, e.ProdB)
	}
	if e.Subject == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Subject)
}

func errf(kind Kind, subject string) *GrammarError {
	return &GrammarError{Kind: kind, Subject: subject}
}

func conflictErr(nonTerm, terminal string, a, b int) *GrammarError {
	return &GrammarError{
		Kind:      TableConflict,
		NonTerm:   nonTerm,
		Terminal:  terminal,
		ProdA:     a,
		ProdB:     b,
		hasProdAB: true,
	}
}
