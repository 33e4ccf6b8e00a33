/*
Package pcontext implements graph-structured prediction contexts: the
shared, immutable call-stack representation configurations carry while the
simulator explores an ATN through rule calls and returns.

The design is the teacher's graph-structured stack (lr/dss, a GSS built for
GLR parsing) turned inside out: where a GSS is a *mutable*, *growing*
structure that several live parse stacks push onto and share suffixes of,
a PredictionContext graph is *immutable* once built and is combined by
Merge rather than Push — configurations that reach the same ATN state with
different call histories get a single, shared context standing for "either
of these call histories", instead of two live stack tops. The sharing
discipline (equal suffixes collapse to one node, pathcnt-style joins) is
the same idea the teacher's dss.Stack.Push already demonstrates when two
stacks push the same (state, symbol) pair onto a common predecessor.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcontext

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("allstar.pcontext")
}
