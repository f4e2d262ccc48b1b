package llgram

import (
	"github.com/grammalyze/llgram/sparse"
	"golang.org/x/exp/slices"
)

// Table is the LL(1) parsing table: for each (non-terminal, lookahead)
// pair it holds the index into Grammar.Productions of the production to
// apply. An absent entry means a parse error at that (non-terminal,
// lookahead) pair. Rows and columns are addressed by name; Rows/Columns
// give the fixed, sorted order used to index into the backing matrix.
type Table struct {
	rows   []string
	cols   []string
	rowIdx map[string]int
	colIdx map[string]int
	matrix *sparse.IntMatrix
}

// Rows returns the sorted non-terminal names indexing the table's rows.
func (t *Table) Rows() []string { return t.rows }

// Columns returns the sorted lookahead symbols indexing the table's
// columns: terminals and lexical names in sorted order, followed by the
// end marker "$" last.
func (t *Table) Columns() []string { return t.cols }

// Lookup returns the production index to apply for (nonTerminal, lookahead),
// and whether such an entry exists.
func (t *Table) Lookup(nonTerminal, lookahead string) (int, bool) {
	i, ok := t.rowIdx[nonTerminal]
	if !ok {
		return 0, false
	}
	j, ok := t.colIdx[lookahead]
	if !ok {
		return 0, false
	}
	v := t.matrix.Value(i, j)
	if v == t.matrix.NullValue() {
		return 0, false
	}
	return int(v), true
}

// buildTable constructs the LL(1) predictive parsing table of spec.md §6.
// For each production A -> alpha, FIRST(alpha) is computed; for every
// terminal/lexical a in that set, table[A][a] is set to this production's
// index. If alpha is nullable, table[A][b] is set for every b in
// FOLLOW(A), and if additionally "$" is in FOLLOW(A), table[A]["$"] is set
// too. Any cell that would be written twice with two different production
// indices is an LL(1) conflict and aborts the build.
func (g *Grammar) buildTable() (*Table, error) {
	rows := g.nonTerminals.Values()
	slices.Sort(rows)

	colSet := iteratableUnion(g.terminals.Values(), g.lexicalNames())
	slices.Sort(colSet)
	cols := append(colSet, endMarker)

	rowIdx := make(map[string]int, len(rows))
	for i, r := range rows {
		rowIdx[r] = i
	}
	colIdx := make(map[string]int, len(cols))
	for j, c := range cols {
		colIdx[c] = j
	}

	m := sparse.NewIntMatrix(len(rows), len(cols), sparse.DefaultNullValue)

	for idx, p := range g.productions {
		firstAlpha, nullable := g.firstOfSequence(p.RHS, g.first)
		for _, a := range firstAlpha.Values() {
			if a == epsilon {
				continue
			}
			if err := setCell(m, rowIdx, colIdx, p.LHS, a, idx); err != nil {
				return nil, err
			}
		}
		if nullable {
			for _, b := range g.follow[p.LHS].Values() {
				if err := setCell(m, rowIdx, colIdx, p.LHS, b, idx); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Table{rows: rows, cols: cols, rowIdx: rowIdx, colIdx: colIdx, matrix: m}, nil
}

func setCell(m *sparse.IntMatrix, rowIdx, colIdx map[string]int, nonTerm, lookahead string, prodIdx int) error {
	i, ok := rowIdx[nonTerm]
	if !ok {
		return nil
	}
	j, ok := colIdx[lookahead]
	if !ok {
		return nil
	}
	previous, accepted := m.TrySet(i, j, int32(prodIdx))
	if !accepted {
		return conflictErr(nonTerm, lookahead, int(previous), prodIdx)
	}
	return nil
}

func (g *Grammar) lexicalNames() []string {
	names := make([]string, 0, len(g.lexicals))
	for name := range g.lexicals {
		names = append(names, name)
	}
	return names
}

func iteratableUnion(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
