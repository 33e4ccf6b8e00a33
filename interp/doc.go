/*
Package interp implements ParserInterpreter: the ATN-walking loop that
drives a parse by repeatedly asking package atn/simulator for the viable
alternative at each decision state and taking the corresponding ATN
transition, building a ParserRuleContext parse tree as it goes and
unrolling left-recursive rules through an explicit stack rather than
genuine call recursion.

This corresponds to the teacher's lr/slr package (a single-stack,
table-driven parse loop: Parser.Parse walks states from a GOTO/ACTION
table exactly the way ParserInterpreter.Parse walks ATN states from
AdaptivePredict's decisions) crossed with runtime/memframe.go's call-frame
stack (PushNewMemoryFrame/PopMemoryFrame bracket scope entry/exit the same
way enterRecursionRule/unrollRecursionContexts bracket a left-recursive
rule invocation here — parentContextStack
tracks the deeper wrinkle left recursion adds on top of that: which
invocation the "return" goes back to isn't always the lexical parent once
pushNewRecursionContext has rewired a context's parent pointer for the
tree's sake rather than the call stack's).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interp

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("allstar.interp")
}
