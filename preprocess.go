package llgram

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// parseDefinitions parses the non-blank lines of a lexma/macro section. Each
// line has shape `name : value`; the split is on the first colon only, and
// both sides are trimmed. A line without a colon is a MalformedDefinitionLine
// error (spec.md §4.2).
//
// Insertion order is preserved, since macro expansion order follows
// insertion order (spec.md §4.2 "Order of application follows insertion
// order").
func parseDefinitions(section string) ([]string, map[string]string, error) {
	order := make([]string, 0)
	defs := make(map[string]string)
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			return nil, nil, errf(MalformedDefinitionLine, line)
		}
		name := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if _, seen := defs[name]; !seen {
			order = append(order, name)
		}
		defs[name] = value
	}
	return order, defs, nil
}

// expandMacros textually replaces every occurrence of each macro name with
// its replacement text, in insertion order. This is a literal substring
// replace, not alpha-renaming: each macro is applied once, so the
// replacement text of a macro is rewritten by macros later in the order but
// never by earlier ones. Replacement text is not checked: grammar
// punctuation in it is tokenized like any other grammar text.
func expandMacros(grammarSection string, order []string, macros map[string]string) string {
	expanded := grammarSection
	for _, name := range order {
		expanded = strings.ReplaceAll(expanded, name, macros[name])
	}
	return expanded
}

// validateLexicalPattern is a best-effort, non-fatal check that a lexma
// pattern compiles as a lexmachine DFA fragment. Patterns are opaque per
// spec.md §3 ("Lexical definition: name; pattern string (opaque)"); this
// check never rejects a grammar, it only logs a tracer warning, since
// downstream consumers — not this package — are the ones that will
// actually use the pattern to scan input.
func validateLexicalPattern(name, pattern string) {
	body := pattern
	if len(body) >= 2 && strings.HasPrefix(body, "/") && strings.HasSuffix(body, "/") {
		body = body[1 : len(body)-1]
	}
	if body == "" {
		return
	}
	lx := lexmachine.NewLexer()
	noop := func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
		return nil, nil
	}
	if err := lx.Add([]byte(body), noop); err != nil {
		tracer().Errorf("lexical definition %q: pattern %q does not add to a lexer: %v", name, pattern, err)
		return
	}
	if err := lx.Compile(); err != nil {
		tracer().Errorf("lexical definition %q: pattern %q failed to compile: %v", name, pattern, err)
	}
}
