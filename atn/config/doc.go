/*
Package config implements ATNConfig and ATNConfigSet: the (state, alt,
context, semanticContext) tuples explored during prediction, and the
ordered, deduplicating sets of them that the simulator builds up one
epsilon step or one consumed symbol at a time.

ATNConfigSet's "add merges on key collision, otherwise appends in order"
discipline is the same shape as the teacher's lr/iteratable.Set, used
throughout lr/tables.go and lr/earley/earley.go to accumulate LR item sets
and Earley item sets — an ordered sequence with destructive set operations
rather than a bare unordered map. We do not reuse iteratable.Set directly
because its generic Items() interface doesn't carry the custom key/merge
semantics a configuration needs (context is merged, not compared, per
spec §3); instead we write the same discipline specialized to ATNConfig.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("allstar.config")
}
