/*
Package simulator implements AdaptivePredict: the ALL(*) decision
procedure that walks an ATNConfigSet forward one input symbol at a time,
consulting (and growing) a per-decision DFA, falling back from SLL to
full-LL only when SLL's context-insensitive view of the call stack can't
tell two alternatives apart.

This is the direct analogue of the teacher's lr/glr package (GLR parsing:
run every viable shift/reduce action in parallel, across a Graph-
Structured Stack, until only one path survives or the input is
exhausted) crossed with lr/earley (closure/scan/complete over item sets
per input position). Where GLR forks the GSS on every shift/reduce
ambiguity and waits for ambiguity to resolve by running out all forks,
adaptivePredict forks the *configuration set* on every epsilon ambiguity
and additionally tries to shortcut to an answer using two increasingly
expensive levels of context-sensitivity (SLL, then full LL) before
falling back to "truly ambiguous, pick the minimum viable alt" the way
spec §9's open question directs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package simulator

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("allstar.simulator")
}
