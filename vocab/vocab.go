package vocab

import (
	"strconv"

	"github.com/npillmayer/allstar"
)

// Vocabulary maps token types to the names a grammar compiler recorded for
// them: a literal (the quoted text a fixed token was declared with, e.g.
// `"+"`), a symbolic name (the grammar's own identifier for the token,
// e.g. `PLUS`), and a display name (an explicit `@displayName` override,
// rare in practice). All three arrays are indexed by token type and may be
// sparse — a given type need not have an entry in every array.
type Vocabulary struct {
	literalNames  []string
	symbolicNames []string
	displayNames  []string
	maxTokenType  int
}

// New returns a Vocabulary backed by the three name arrays, indexed by
// token type. Any of the slices may be nil or shorter than the others;
// out-of-range or empty entries simply fall through to the next stage of
// DisplayName's resolution order.
func New(literalNames, symbolicNames, displayNames []string) *Vocabulary {
	v := &Vocabulary{literalNames: literalNames, symbolicNames: symbolicNames, displayNames: displayNames}
	for _, n := range []int{len(literalNames), len(symbolicNames), len(displayNames)} {
		if n-1 > v.maxTokenType {
			v.maxTokenType = n - 1
		}
	}
	return v
}

// MaxTokenType reports the highest token type this vocabulary has a name
// for in any of the three arrays.
func (v *Vocabulary) MaxTokenType() int { return v.maxTokenType }

func lookup(names []string, tt int) (string, bool) {
	if tt < 0 || tt >= len(names) {
		return "", false
	}
	if names[tt] == "" {
		return "", false
	}
	return names[tt], true
}

// LiteralName returns the quoted literal text associated with tt, if any.
func (v *Vocabulary) LiteralName(tt int) (string, bool) {
	return lookup(v.literalNames, tt)
}

// SymbolicName returns the grammar-declared identifier for tt. EOF always
// resolves to "EOF" regardless of what the arrays contain, per spec §6.
func (v *Vocabulary) SymbolicName(tt int) (string, bool) {
	if tt == allstar.EOF {
		return "EOF", true
	}
	return lookup(v.symbolicNames, tt)
}

// DisplayName resolves tt to the name a diagnostic message should show the
// user, following spec §6's order: an explicit display name, else the
// literal, else the symbolic name, else the decimal token type itself (so
// DisplayName never fails to produce something).
func (v *Vocabulary) DisplayName(tt int) string {
	if name, ok := lookup(v.displayNames, tt); ok {
		return name
	}
	if name, ok := v.LiteralName(tt); ok {
		return name
	}
	if name, ok := v.SymbolicName(tt); ok {
		return name
	}
	return strconv.Itoa(tt)
}
