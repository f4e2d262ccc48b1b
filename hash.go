package llgram

import "github.com/cnf/structhash"

// fingerprintView is the subset of a Grammar's fields that determine its
// analytical content, arranged so that two grammars with the same
// productions, start symbol and lexical declarations hash identically
// regardless of map/set iteration order. Unexported Grammar fields aren't
// visible to structhash, so this mirror exists purely to be hashed.
type fingerprintView struct {
	Version      int
	Start        string
	Terminals    []string
	NonTerminals []string
	Lexicals     map[string]string
	Productions  []Production
}

// Fingerprint returns a stable structural hash of the grammar's
// productions, start symbol, and declared symbols. Running Parse twice on
// equivalent source (even after whitespace or macro-ordering differences
// that don't change the expanded grammar) must yield the same fingerprint;
// this is the idempotence property tests rely on.
func (g *Grammar) Fingerprint() (string, error) {
	view := fingerprintView{
		Version:      1,
		Start:        g.start,
		Terminals:    g.terminals.Values(),
		NonTerminals: g.nonTerminals.Values(),
		Lexicals:     g.lexicals,
		Productions:  g.productions,
	}
	return structhash.Hash(view, 1)
}
