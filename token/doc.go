/*
Package token names the collaborators the simulator and interpreter
consume but do not implement themselves: a Token, a Stream of them with
mark/seek support for speculative prediction, an ErrorStrategy that
decides how to recover from a recognition error, and the RecognitionError
variants a parser reports.

Token is the same four-field shape as the teacher's gorgo.Token
(TokType/Lexeme/Value/Span), renamed to the field names this module's
rest of the stack uses (integer Type rather than TokType, Text rather
than Lexeme) and extended with Index/Channel, which ALL(*) prediction
needs to mark and seek a stream during speculative lookahead. Stream
generalizes the teacher's scanner.Tokenizer (NextToken/SetErrorHandler)
into a fully buffered, seekable token source — Tokenizer only ever reads
forward, which is enough for an LL(1)-ish hand-written recursive-descent
parser but not for an adaptive predictor that must try an alternative,
fail, and rewind.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package token

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("allstar.token")
}
