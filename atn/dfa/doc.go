/*
Package dfa implements the lazily-constructed, per-decision DFA the
simulator builds up as a byproduct of SLL and full-LL prediction: each
DFAState caches one ATNConfigSet and the symbol-indexed transitions
already discovered out of it, so a later prediction over the same input
prefix can walk cached edges instead of re-running ATN closure.

This mirrors the teacher's lr/tables.go CFSM almost exactly in shape — a
registry of states deduplicated by content (there, LR item sets via a
stateComparator; here, ATNConfigSets via their structural hash) plus an
edge table recording, for each state and each input symbol, which state to
move to next. lr/tables.go builds its table exhaustively ahead of time;
a DFA here is built incrementally, one decision and one input prefix at a
time, which is why DFAState registration has to be safe under concurrent
prediction (each DFA serializes registration of its own states with one
mutex per decision, not one global mutex, so unrelated decisions can be
predicted concurrently — the same per-resource locking granularity
package atn.ATN uses for its state and decision tables; each DFA state
guards its own edge map).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dfa

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("allstar.dfa")
}
