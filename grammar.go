package llgram

// Terminals returns the sorted set of quoted terminal literals used
// anywhere in the grammar's productions.
func (g *Grammar) Terminals() []string {
	return g.terminals.Values()
}

// NonTerminals returns the sorted set of declared non-terminal names.
func (g *Grammar) NonTerminals() []string {
	return g.nonTerminals.Values()
}

// Lexicals returns the name -> pattern map parsed from the lexma section.
// The returned map is the grammar's own; callers must not mutate it.
func (g *Grammar) Lexicals() map[string]string {
	return g.lexicals
}

// LexicalOrder returns lexical names in the order they are declared in the
// lexma section.
func (g *Grammar) LexicalOrder() []string {
	return g.lexicalOrder
}

// Productions returns the ordered production list built from the grammar
// section, one Production per alternative.
func (g *Grammar) Productions() []Production {
	return g.productions
}

// Start returns the grammar's start symbol: the left-hand side of the
// first production encountered in the source.
func (g *Grammar) Start() string {
	return g.start
}

// Table returns the computed LL(1) parsing table.
func (g *Grammar) Table() *Table {
	return g.table
}
