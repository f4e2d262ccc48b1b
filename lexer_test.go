package llgram

import "testing"

func TestTokenizeGrammarSimpleProduction(t *testing.T) {
	toks, err := tokenizeGrammar(`S : "a" ;`)
	if err != nil {
		t.Fatal(err)
	}
	want := []gtoken{
		{tokLeftSide, "S"},
		{tokColon, ":"},
		{tokRightSide, `"a"`},
		{tokSemicolon, ";"},
	}
	assertTokens(t, toks, want)
}

func TestTokenizeGrammarAlternatives(t *testing.T) {
	toks, err := tokenizeGrammar(`S : "a" | "b" ;`)
	if err != nil {
		t.Fatal(err)
	}
	want := []gtoken{
		{tokLeftSide, "S"},
		{tokColon, ":"},
		{tokRightSide, `"a"`},
		{tokRightSide, `"b"`},
		{tokSemicolon, ";"},
	}
	assertTokens(t, toks, want)
}

func TestTokenizeGrammarWithAction(t *testing.T) {
	toks, err := tokenizeGrammar(`S : "a" { $$ = $1 } ;`)
	if err != nil {
		t.Fatal(err)
	}
	want := []gtoken{
		{tokLeftSide, "S"},
		{tokColon, ":"},
		{tokRightSide, `"a"`},
		{tokReturn, "$$ = $1"},
		{tokSemicolon, ";"},
	}
	assertTokens(t, toks, want)
}

func TestTokenizeGrammarNestedBraces(t *testing.T) {
	toks, err := tokenizeGrammar(`S : "a" { if (x) { y() } } ;`)
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) == 0 {
		t.Fatal("expected tokens")
	}
	last := toks[len(toks)-2]
	if last.kind != tokReturn || last.lexeme != "if (x) { y() }" {
		t.Errorf("got %+v", last)
	}
}

func TestTokenizeGrammarUnbalancedAction(t *testing.T) {
	_, err := tokenizeGrammar(`S : "a" { $$ = $1 ;`)
	if err == nil {
		t.Fatal("expected an error")
	}
	gerr, ok := err.(*GrammarError)
	if !ok || gerr.Kind != UnbalancedActionBlock {
		t.Errorf("got %v, want UnbalancedActionBlock", err)
	}
}

func assertTokens(t *testing.T, got, want []gtoken) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %+v, want %d %+v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
