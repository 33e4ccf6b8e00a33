/*
Package vocab implements Vocabulary: the literal/symbolic/display name
triple a grammar compiler emits alongside a serialized ATN, and the
display-name resolution order spec §6 specifies (display, then literal,
then symbolic, then the decimal token type itself).

This corresponds to the teacher's runtime.SymbolTable/Tag pairing
(runtime/symtable.go): a Tag there is a mutable, dynamically-grown entry a
symbol table hands out as identifiers are first seen, looked up by name.
A Vocabulary is the static, array-indexed mirror image of that idea — the
grammar compiler already knows every token type up front, so lookup goes
the other way (type number to name) and never grows after construction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vocab

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("allstar.vocab")
}
