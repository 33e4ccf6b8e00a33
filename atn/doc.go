/*
Package atn implements the Augmented Transition Network model driving an
ALL(*) parser: states, transitions, and the per-rule start/stop tables
that tie them to a grammar's rule indices.

An ATN is immutable once built. It is shared read-only across any number
of parser instances; the only mutable state attached to it lives in the
per-decision DFAs of package atn/dfa, which this package does not own.

States and transitions are represented as tagged structs with a shared
header (state number, rule index, type tag) rather than as a class
hierarchy reached through virtual calls — dispatch happens on the Type
field. This mirrors how the teacher's lr.CFSMState/Item values are
inspected by tag (PeekSymbol, IsTerminal) rather than through an
interface hierarchy, and keeps serialization (Deserialize, below)
straightforward: a state's shape is fully determined by its Type.

Building blocks such as IntervalSet are assumed given elsewhere in a
full runtime; a minimal implementation lives in this package only
because nothing in the retrieval pack already supplies one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package atn

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'allstar.atn'.
func tracer() tracing.Trace {
	return tracing.Select("allstar.atn")
}
