/*
Package allstar implements the core of an ANTLR-style ALL(*) parser
runtime: an Augmented Transition Network (ATN) simulator driving adaptive
predictive parsing, together with the config-set algebra, graph-structured
prediction contexts, and the ATN-walking interpreter loop that uses it to
build parse trees.

Package structure is as follows:

■ atn: the ATN model itself — states, transitions, rule tables — plus a
reader for the grammar compiler's serialized form.

■ atn/pcontext: graph-structured prediction contexts (shared call stacks).

■ atn/config: ATNConfig and ATNConfigSet, the configurations explored
during prediction and the sets that memoize them.

■ atn/semctx: the boolean algebra of semantic and precedence predicates
attached to configurations.

■ atn/dfa: the per-decision DFA that memoizes prediction outcomes.

■ atn/simulator: adaptive prediction itself — SLL closure/reach with
full-LL fallback, conflict analysis, DFA population.

■ prediction: pure policy functions deciding ambiguity/conflict from a
config set.

■ interp: the ATN-walking parser interpreter, constructing parse trees
and handling left recursion.

■ vocab: token vocabulary (literal/symbolic/display name resolution).

■ token: the external collaborator interfaces — token stream and error
strategy — that the core runtime is parameterized over.

■ cmd/allstarc: a demo CLI/REPL hand-assembling a toy ATN and driving the
interpreter over it, with cmd/allstarc/lexer a lexmachine-backed token
source for feeding it.

This package holds the small set of types shared across all of the above.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package allstar
