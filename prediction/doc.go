/*
Package prediction implements PredictionMode: the pure, side-effect-free
analysis functions the ATN simulator runs over an ATNConfigSet after each
closure or reach step to decide whether a decision has resolved, conflicts,
or needs another lookahead symbol.

None of these functions touch the ATN, a DFA, or any mutable state — they
are plain functions over package atn/config's Set and AltSet, which keeps
them trivially testable in isolation, the same way the teacher keeps the
conflict-detection logic inside lr.TableGenerator.buildActionTable as a
sequence of small, independently-checkable predicates over an action
table rather than folding it into the table-construction loop itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package prediction

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("allstar.prediction")
}
