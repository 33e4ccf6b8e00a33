/*
Package semctx implements SemanticContext: the small boolean algebra of
user-supplied semantic predicates and precedence predicates attached to an
ATNConfig. A configuration's SemanticContext must evaluate to true for the
configuration to survive into the next closure; precedence predicates
additionally get folded away entirely once their threshold is known to
hold, via EvalPrecedence.

The AND/OR node shapes and their dedup/flatten treatment are grounded on
the teacher's terex package: terex.GCons models boolean-ish term
rewriting over a small Lisp-like list structure with structural equality
and list-flattening helpers (GCons.Drop, GCons.Concat); here we specialize
that idea to a two-operator (AND/OR), two-leaf (Predicate/PrecedencePredicate)
term language instead of a general list, since that is all a semantic
context ever needs to express.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package semctx

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("allstar.semctx")
}
