package atn

import (
	"fmt"
	"sort"
	"strings"
)

// interval is a closed range [lo,hi] of symbol values.
type interval struct {
	lo, hi int
}

func (iv interval) contains(v int) bool { return v >= iv.lo && v <= iv.hi }

// IntervalSet is a minimal sorted, merged set of integer intervals, used to
// represent match sets on Set/NotSet transitions and the results of
// NextTokens-style lookahead computations. A full runtime takes IntervalSet
// as a given building block (spec §1); this is a small stand-in sufficient
// for the ATN model and simulator to compile and operate against.
type IntervalSet struct {
	intervals []interval
	readOnly  bool
}

// NewIntervalSet returns an empty set.
func NewIntervalSet() *IntervalSet {
	return &IntervalSet{}
}

// NewIntervalSetFrom returns a set containing exactly the given values.
func NewIntervalSetFrom(vals ...int) *IntervalSet {
	s := NewIntervalSet()
	for _, v := range vals {
		s.AddOne(v)
	}
	return s
}

// AddOne adds a single value to the set.
func (s *IntervalSet) AddOne(v int) {
	s.AddRange(v, v)
}

// AddRange adds the closed range [lo,hi] to the set, merging with any
// overlapping or adjacent intervals already present.
func (s *IntervalSet) AddRange(lo, hi int) {
	if s.readOnly {
		panic("atn: attempt to mutate a read-only IntervalSet")
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	s.intervals = append(s.intervals, interval{lo, hi})
	s.normalize()
}

// AddSet unions other into s.
func (s *IntervalSet) AddSet(other *IntervalSet) {
	if other == nil {
		return
	}
	for _, iv := range other.intervals {
		s.intervals = append(s.intervals, iv)
	}
	s.normalize()
}

// RemoveOne removes a single value from the set, if present.
func (s *IntervalSet) RemoveOne(v int) {
	if s.readOnly {
		panic("atn: attempt to mutate a read-only IntervalSet")
	}
	out := s.intervals[:0]
	for _, iv := range s.intervals {
		switch {
		case !iv.contains(v):
			out = append(out, iv)
		case iv.lo == iv.hi:
			// drop entirely
		case v == iv.lo:
			out = append(out, interval{iv.lo + 1, iv.hi})
		case v == iv.hi:
			out = append(out, interval{iv.lo, iv.hi - 1})
		default:
			out = append(out, interval{iv.lo, v - 1}, interval{v + 1, iv.hi})
		}
	}
	s.intervals = out
}

func (s *IntervalSet) normalize() {
	if len(s.intervals) < 2 {
		return
	}
	sort.Slice(s.intervals, func(i, j int) bool { return s.intervals[i].lo < s.intervals[j].lo })
	out := s.intervals[:1]
	for _, iv := range s.intervals[1:] {
		last := &out[len(out)-1]
		if iv.lo <= last.hi+1 {
			if iv.hi > last.hi {
				last.hi = iv.hi
			}
			continue
		}
		out = append(out, iv)
	}
	s.intervals = out
}

// Contains reports whether v is a member of the set.
func (s *IntervalSet) Contains(v int) bool {
	for _, iv := range s.intervals {
		if iv.contains(v) {
			return true
		}
	}
	return false
}

// Empty reports whether the set has no members.
func (s *IntervalSet) Empty() bool { return len(s.intervals) == 0 }

// Freeze marks the set read-only; further mutation attempts panic.
func (s *IntervalSet) Freeze() { s.readOnly = true }

func (s *IntervalSet) String() string {
	parts := make([]string, len(s.intervals))
	for i, iv := range s.intervals {
		if iv.lo == iv.hi {
			parts[i] = fmt.Sprintf("%d", iv.lo)
		} else {
			parts[i] = fmt.Sprintf("%d..%d", iv.lo, iv.hi)
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
