package llgram

import (
	"fmt"
	"io"
)

// Dump is a debugging helper that logs every production and the LL(1)
// table's fill ratio through the package tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s -----------", g.start)
	for i, p := range g.productions {
		tracer().Debugf("  [%03d] %s", i, p.String())
	}
	if g.table != nil {
		tracer().Debugf("table: %d rows x %d cols, %d filled cells",
			len(g.table.rows), len(g.table.cols), g.table.matrix.ValueCount())
	}
	tracer().Debugf("-------------------------")
}

// TableAsHTML exports the LL(1) parsing table in HTML format: one row per
// non-terminal, one column per lookahead symbol, each cell either blank or
// the index of the production to apply.
func (g *Grammar) TableAsHTML(w io.Writer) {
	if g.table == nil {
		tracer().Errorf("LL(1) table not yet built, cannot export to HTML")
		return
	}
	t := g.table
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("LL(1) table of size = %d<p>\n", t.matrix.ValueCount()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, col := range t.cols {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", col))
	}
	io.WriteString(w, "</tr>\n")
	for _, row := range t.rows {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", row))
		for _, col := range t.cols {
			idx, ok := t.Lookup(row, col)
			if !ok {
				io.WriteString(w, "<td>&nbsp;</td>\n")
				continue
			}
			io.WriteString(w, fmt.Sprintf("<td>%d</td>\n", idx))
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}
