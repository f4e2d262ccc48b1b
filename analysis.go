package llgram

import "github.com/grammalyze/llgram/iteratable"

// computeFirst runs the classic fixpoint iteration for FIRST sets
// (spec.md §5.1) until no set grows in a full pass over the productions.
func (g *Grammar) computeFirst() {
	first := make(map[string]*iteratable.Set)
	for _, nt := range g.nonTerminals.Values() {
		first[nt] = iteratable.New()
	}

	for {
		changed := false
		for _, p := range g.productions {
			fs := first[p.LHS]
			add, nullable := g.firstOfSequence(p.RHS, first)
			for _, sym := range add.Values() {
				if fs.Add(sym) {
					changed = true
				}
			}
			if nullable && fs.Add(epsilon) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	g.first = first
}

// firstOfSymbol returns the current FIRST approximation of a single grammar
// symbol. Terminals, lexicals and epsilon are their own FIRST set.
func (g *Grammar) firstOfSymbol(sym string, first map[string]*iteratable.Set) *iteratable.Set {
	if sym == epsilon {
		return iteratable.New(epsilon)
	}
	if isQuoted(sym) {
		return iteratable.New(sym)
	}
	if _, ok := g.lexicals[sym]; ok {
		return iteratable.New(sym)
	}
	if fs, ok := first[sym]; ok {
		return fs
	}
	return iteratable.New()
}

// firstOfSequence computes FIRST of a symbol sequence: the union of
// FIRST(X1), and FIRST(X2) if X1 is nullable, and so on, stopping at the
// first non-nullable symbol. It returns whether the whole sequence is
// nullable (every symbol in it derives epsilon, including the empty
// sequence itself).
func (g *Grammar) firstOfSequence(seq []string, first map[string]*iteratable.Set) (*iteratable.Set, bool) {
	result := iteratable.New()
	for _, sym := range seq {
		fs := g.firstOfSymbol(sym, first)
		nullable := fs.Contains(epsilon)
		for _, s := range fs.Values() {
			if s != epsilon {
				result.Add(s)
			}
		}
		if !nullable {
			return result, false
		}
	}
	return result, true
}

// computeFollow runs the classic fixpoint iteration for FOLLOW sets
// (spec.md §5.2). The end marker is seeded into FOLLOW(start) exactly once,
// before the loop, so it never gets reset by a later pass.
func (g *Grammar) computeFollow() {
	follow := make(map[string]*iteratable.Set)
	for _, nt := range g.nonTerminals.Values() {
		follow[nt] = iteratable.New()
	}
	if g.start != "" {
		follow[g.start].Add(endMarker)
	}

	for {
		changed := false
		for _, p := range g.productions {
			for i, sym := range p.RHS {
				if isQuoted(sym) || sym == epsilon {
					continue
				}
				if _, isLexical := g.lexicals[sym]; isLexical {
					continue
				}
				beta := p.RHS[i+1:]
				firstBeta, nullable := g.firstOfSequence(beta, g.first)
				for _, s := range firstBeta.Values() {
					if follow[sym].Add(s) {
						changed = true
					}
				}
				if nullable {
					for _, s := range follow[p.LHS].Values() {
						if follow[sym].Add(s) {
							changed = true
						}
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	g.follow = follow
}

// First returns the sorted FIRST set of a declared non-terminal. An unknown
// name yields an empty slice.
func (g *Grammar) First(nonTerminal string) []string {
	if fs, ok := g.first[nonTerminal]; ok {
		return fs.Values()
	}
	return nil
}

// Follow returns the sorted FOLLOW set of a declared non-terminal. An
// unknown name yields an empty slice.
func (g *Grammar) Follow(nonTerminal string) []string {
	if fs, ok := g.follow[nonTerminal]; ok {
		return fs.Values()
	}
	return nil
}
