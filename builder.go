package llgram

import (
	"strings"

	"github.com/grammalyze/llgram/iteratable"
	"golang.org/x/exp/slices"
)

// Grammar is the immutable result of analysing a grammar source string. All
// six analytical artifacts (terminals, non-terminals, productions, FIRST,
// FOLLOW, table) are computed eagerly by Parse and never change afterwards.
type Grammar struct {
	terminals    *iteratable.Set
	nonTerminals *iteratable.Set
	lexicals     map[string]string
	lexicalOrder []string
	productions  []Production
	start        string

	first  map[string]*iteratable.Set
	follow map[string]*iteratable.Set
	table  *Table
}

// Parse builds a Grammar from a full grammar-source blob, running the
// section extractor, preprocessor, tokenizer, production builder and the
// full analytical phase in sequence. No partial Grammar is ever returned:
// any error aborts the whole build.
func Parse(source string) (*Grammar, error) {
	lexmaSection, hasLexma := extractSection(source, "lexma")
	macroSection, hasMacro := extractSection(source, "macro")
	grammaSection, hasGramma := extractSection(source, "gramma")
	if !hasGramma {
		return nil, errf(MissingGrammarSection, "")
	}

	lexicalOrder := []string{}
	lexicals := map[string]string{}
	if hasLexma {
		var err error
		lexicalOrder, lexicals, err = parseDefinitions(lexmaSection)
		if err != nil {
			return nil, err
		}
		for _, name := range lexicalOrder {
			validateLexicalPattern(name, lexicals[name])
		}
	}

	macroOrder := []string{}
	macros := map[string]string{}
	if hasMacro {
		var err error
		macroOrder, macros, err = parseDefinitions(macroSection)
		if err != nil {
			return nil, err
		}
	}

	expanded := expandMacros(grammaSection, macroOrder, macros)

	tokens, err := tokenizeGrammar(expanded)
	if err != nil {
		return nil, err
	}

	b := &grammarBuilder{
		tokens:       tokens,
		nonTerminals: iteratable.New(),
		terminals:    iteratable.New(),
		lexicals:     lexicals,
	}
	if err := b.build(); err != nil {
		return nil, err
	}

	g := &Grammar{
		terminals:    b.terminals,
		nonTerminals: b.nonTerminals,
		lexicals:     lexicals,
		lexicalOrder: lexicalOrder,
		productions:  b.productions,
		start:        b.start,
	}

	if err := g.validateSymbols(); err != nil {
		return nil, err
	}

	g.computeFirst()
	g.computeFollow()
	table, err := g.buildTable()
	if err != nil {
		return nil, err
	}
	g.table = table

	return g, nil
}

// grammarBuilder holds the working state of the production builder
// (spec.md §4.4). Internal state — cursor, token buffer — lives here, not
// on Grammar: once built, a Grammar is read-only.
type grammarBuilder struct {
	tokens       []gtoken
	pos          int
	nonTerminals *iteratable.Set
	terminals    *iteratable.Set
	productions  []Production
	start        string
	lexicals     map[string]string
}

func (b *grammarBuilder) build() error {
	if len(b.tokens) == 0 || b.tokens[len(b.tokens)-1].kind != tokSemicolon {
		return errf(MissingProductionTerminator, b.lastLexeme())
	}
	for b.pos < len(b.tokens) {
		if err := b.production(); err != nil {
			return err
		}
	}
	return nil
}

func (b *grammarBuilder) lastLexeme() string {
	if len(b.tokens) == 0 {
		return ""
	}
	return b.tokens[len(b.tokens)-1].lexeme
}

// production consumes one `LEFT_SIDE COLON (RIGHT_SIDE RETURN?)+ SEMICOLON`
// block, appending one Production per alternative.
func (b *grammarBuilder) production() error {
	lhsTok := b.tokens[b.pos]
	if lhsTok.kind != tokLeftSide {
		return errf(UnexpectedToken, lhsTok.lexeme)
	}
	lhs := lhsTok.lexeme
	if b.start == "" {
		b.start = lhs
	}
	b.nonTerminals.Add(lhs)
	b.pos++

	if !b.atKind(tokColon) {
		return errf(UnexpectedToken, b.currentLexeme())
	}
	b.pos++

	for {
		if !b.atKind(tokRightSide) {
			return errf(UnexpectedToken, b.currentLexeme())
		}
		rhsTok := b.tokens[b.pos]
		b.pos++
		rhs := b.splitSymbols(rhsTok.lexeme)

		var action *string
		if b.atKind(tokReturn) {
			a := b.tokens[b.pos].lexeme
			action = &a
			b.pos++
		}
		b.productions = append(b.productions, Production{LHS: lhs, RHS: rhs, Action: action})

		if b.pos >= len(b.tokens) {
			return errf(MissingProductionTerminator, lhs)
		}
		switch b.tokens[b.pos].kind {
		case tokRightSide:
			continue
		case tokSemicolon:
			b.pos++
			return nil
		default:
			return errf(UnexpectedToken, b.currentLexeme())
		}
	}
}

func (b *grammarBuilder) atKind(k tokKind) bool {
	return b.pos < len(b.tokens) && b.tokens[b.pos].kind == k
}

func (b *grammarBuilder) currentLexeme() string {
	if b.pos >= len(b.tokens) {
		return "<end of input>"
	}
	return b.tokens[b.pos].lexeme
}

// splitSymbols splits a RIGHT_SIDE lexeme on single spaces, classifying each
// non-empty token as a terminal (both leading and trailing '"') or an
// unquoted reference resolved later as non-terminal or lexical name
// (spec.md §4.4). The epsilon literal `""` is passed through but never
// added to the terminal set, since it is its own symbol kind.
func (b *grammarBuilder) splitSymbols(lexeme string) []string {
	parts := strings.Split(lexeme, " ")
	rhs := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if isQuoted(part) {
			if part != epsilon {
				b.terminals.Add(part)
			}
			rhs = append(rhs, part)
			continue
		}
		rhs = append(rhs, part)
	}
	return rhs
}

// validateSymbols enforces the invariant that every rhs symbol is a quoted
// terminal, the empty literal, a declared non-terminal, or a declared
// lexical name. Every undefined symbol found is collected and reported
// together, rather than failing on the first one (spec.md §7/§8;
// supplemented per SPEC_FULL.md §4).
func (g *Grammar) validateSymbols() error {
	undefined := iteratable.New()
	for _, p := range g.productions {
		for _, sym := range p.RHS {
			if sym == epsilon || isQuoted(sym) {
				continue
			}
			if g.nonTerminals.Contains(sym) {
				continue
			}
			if _, ok := g.lexicals[sym]; ok {
				continue
			}
			undefined.Add(sym)
		}
	}
	if undefined.Empty() {
		return nil
	}
	names := undefined.Values()
	slices.Sort(names)
	return errf(UndefinedSymbol, strings.Join(names, ", "))
}
