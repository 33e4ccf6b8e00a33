package vocab

import (
	"testing"

	"github.com/npillmayer/allstar"
)

func TestDisplayNameResolutionOrder(t *testing.T) {
	v := New(
		[]string{"", "'='", "'+'"},
		[]string{"", "EQ", "PLUS"},
		[]string{"", "", "Plus"},
	)
	if got := v.DisplayName(2); got != "Plus" {
		t.Fatalf("expected explicit display name to win, got %q", got)
	}
	if got := v.DisplayName(1); got != "'='" {
		t.Fatalf("expected literal name when no display name set, got %q", got)
	}
	if got := New(nil, []string{"", "EQ"}, nil).DisplayName(1); got != "EQ" {
		t.Fatalf("expected symbolic name when no literal/display set, got %q", got)
	}
	if got := New(nil, nil, nil).DisplayName(7); got != "7" {
		t.Fatalf("expected decimal fallback, got %q", got)
	}
}

func TestSymbolicNameForEOFIsAlwaysEOF(t *testing.T) {
	v := New(nil, []string{"garbage"}, nil)
	name, ok := v.SymbolicName(allstar.EOF)
	if !ok || name != "EOF" {
		t.Fatalf("expected EOF symbolic name, got %q, %v", name, ok)
	}
}

func TestMaxTokenType(t *testing.T) {
	v := New([]string{"", "'a'", "'b'"}, nil, nil)
	if v.MaxTokenType() != 2 {
		t.Fatalf("expected max token type 2, got %d", v.MaxTokenType())
	}
}
