// Package histogram classifies vote counts into fixed ranges and reports the
// per-range totals as ASCII bars.
package histogram

import (
	"fmt"
	"math"
)

// Range is an inclusive interval of non-negative integers.
type Range struct {
	Lower uint64
	Upper uint64
}

// Contains reports whether v lies in [Lower, Upper].
func (r Range) Contains(v uint64) bool {
	return r.Lower <= v && v <= r.Upper
}

func (r Range) String() string {
	return fmt.Sprintf("%d..=%d", r.Lower, r.Upper)
}

// Ranges is an ordered range set. Neighbouring ranges may share an endpoint;
// Classify gives the shared value to the lower one.
type Ranges []Range

// DefaultRanges covers every uint64 with five decades.
var DefaultRanges = Ranges{
	{0, 10},
	{10, 100},
	{100, 1000},
	{1000, 10000},
	{10000, math.MaxUint64},
}

// Classify returns the index of the first range containing v.
func (rs Ranges) Classify(v uint64) (int, bool) {
	for i, r := range rs {
		if r.Contains(v) {
			return i, true
		}
	}
	return 0, false
}
