/*
Package llgram turns a textual grammar description into the analytical
artifacts needed to drive a top-down LL(1) parser: terminals, non-terminals,
an ordered production list, FIRST sets, FOLLOW sets and a parsing table
mapping (non-terminal, lookahead) to a production index.

Building a Grammar

A grammar is built from a single source blob containing up to three
sections, delimited by /start-<name> and /end-<name> markers:

    /start-lexma
    number : /[0-9]+/
    /end-lexma

    /start-macro
    TERM : Term
    /end-macro

    /start-gramma
    S : A "b" { $$ = $1 }
      | "acc"
      ;
    A : "a"
      ;
    /end-gramma

Only the gramma section is required. Construct the grammar with:

    g, err := llgram.Parse(source)
    if err != nil {
        var gerr *llgram.GrammarError
        if errors.As(err, &gerr) {
            // gerr.Kind names which of the seven error kinds occurred
        }
    }

Static Grammar Analysis

Parse performs the full analysis eagerly: FIRST sets, then FOLLOW sets,
then the LL(1) table, validating along the way that every symbol appearing
on a right-hand side is defined. The resulting *Grammar is immutable and
may be shared across goroutines without synchronization.

    fmt.Println(g.First("A"))   // ["a"]
    fmt.Println(g.Follow("A"))  // ["b"]
    idx, ok := g.Table().Lookup("S", `"a"`)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package llgram

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llgram.core'.
func tracer() tracing.Trace {
	return tracing.Select("llgram.core")
}

// T traces to the global syntax tracer, matching the teacher's package-level
// helper of the same name.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}
