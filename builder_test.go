package llgram

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setupTracing(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}

func TestBuildSimpleTerminalProduction(t *testing.T) {
	defer setupTracing(t)()
	g, err := Parse(`
/start-gramma
S : "a" ;
/end-gramma
`)
	if err != nil {
		t.Fatal(err)
	}
	if g.Start() != "S" {
		t.Errorf("start = %q", g.Start())
	}
	if len(g.Productions()) != 1 {
		t.Fatalf("got %d productions", len(g.Productions()))
	}
	if g.Productions()[0].RHS[0] != `"a"` {
		t.Errorf("rhs = %v", g.Productions()[0].RHS)
	}
}

func TestBuildAlternatives(t *testing.T) {
	defer setupTracing(t)()
	g, err := Parse(`
/start-gramma
S : "a"
  | "b"
  ;
/end-gramma
`)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Productions()) != 2 {
		t.Fatalf("got %d productions", len(g.Productions()))
	}
}

func TestBuildEpsilonProduction(t *testing.T) {
	defer setupTracing(t)()
	g, err := Parse(`
/start-gramma
S : "a" A ;
A : "" ;
/end-gramma
`)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, p := range g.Productions() {
		if p.LHS == "A" && len(p.RHS) == 1 && p.RHS[0] == epsilon {
			found = true
		}
	}
	if !found {
		t.Error("expected an epsilon production for A")
	}
	for _, term := range g.Terminals() {
		if term == epsilon {
			t.Error("epsilon must never be counted as a terminal")
		}
	}
}

func TestBuildMissingGrammarSection(t *testing.T) {
	defer setupTracing(t)()
	_, err := Parse("/start-lexma\nnumber : /[0-9]+/\n/end-lexma\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	gerr, ok := err.(*GrammarError)
	if !ok || gerr.Kind != MissingGrammarSection {
		t.Errorf("got %v, want MissingGrammarSection", err)
	}
}

func TestBuildUndefinedSymbol(t *testing.T) {
	defer setupTracing(t)()
	_, err := Parse(`
/start-gramma
S : "a" B ;
/end-gramma
`)
	if err == nil {
		t.Fatal("expected an error")
	}
	gerr, ok := err.(*GrammarError)
	if !ok || gerr.Kind != UndefinedSymbol {
		t.Errorf("got %v, want UndefinedSymbol", err)
	}
	if gerr.Subject != "B" {
		t.Errorf("subject = %q, want B", gerr.Subject)
	}
}

func TestBuildUndefinedSymbolCollectsAll(t *testing.T) {
	defer setupTracing(t)()
	_, err := Parse(`
/start-gramma
S : B C ;
/end-gramma
`)
	gerr, ok := err.(*GrammarError)
	if !ok || gerr.Kind != UndefinedSymbol {
		t.Fatalf("got %v, want UndefinedSymbol", err)
	}
	if gerr.Subject != "B, C" {
		t.Errorf("subject = %q, want both undefined names", gerr.Subject)
	}
}

func TestBuildMissingProductionTerminator(t *testing.T) {
	defer setupTracing(t)()
	_, err := Parse(`
/start-gramma
S : "a"
/end-gramma
`)
	if err == nil {
		t.Fatal("expected an error")
	}
	gerr, ok := err.(*GrammarError)
	if !ok || gerr.Kind != MissingProductionTerminator {
		t.Errorf("got %v, want MissingProductionTerminator", err)
	}
}

func TestBuildLexicalTokenReference(t *testing.T) {
	defer setupTracing(t)()
	g, err := Parse(`
/start-lexma
number : /[0-9]+/
/end-lexma
/start-gramma
S : number ;
/end-gramma
`)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.Lexicals()["number"]; !ok {
		t.Error("expected lexical \"number\" to be declared")
	}
}

func TestBuildMacroExpansion(t *testing.T) {
	defer setupTracing(t)()
	g, err := Parse(`
/start-macro
TERM : "a"
/end-macro
/start-gramma
S : TERM ;
/end-gramma
`)
	if err != nil {
		t.Fatal(err)
	}
	if g.Productions()[0].RHS[0] != `"a"` {
		t.Errorf("macro was not expanded: %v", g.Productions()[0].RHS)
	}
}

func TestBuildActionPayloadPreserved(t *testing.T) {
	defer setupTracing(t)()
	g, err := Parse(`
/start-gramma
S : "a" { $$ = $1 } ;
/end-gramma
`)
	if err != nil {
		t.Fatal(err)
	}
	p := g.Productions()[0]
	if !p.HasAction() || *p.Action != "$$ = $1" {
		t.Errorf("action = %v", p.Action)
	}
}
