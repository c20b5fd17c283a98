// Package coverage tracks which byte ranges of a reconstructed stream have
// received data. Ranges are half-open [Start, End) over the destination
// address space and are kept sorted, pairwise disjoint, and non-adjacent:
// inserting a range that overlaps or touches existing ranges coalesces them
// into one.
package coverage

import (
	"fmt"
	"sort"
)

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int64
	End   int64
}

// Len returns the number of bytes spanned by the range.
func (r Range) Len() int64 { return r.End - r.Start }

// Empty reports whether the range spans no bytes.
func (r Range) Empty() bool { return r.End <= r.Start }

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Set is an ordered set of disjoint covered ranges. The zero value is an
// empty set ready for use.
type Set struct {
	ranges []Range
}

// Merge inserts r into the set, coalescing it with any overlapping or
// adjacent ranges. Empty ranges are ignored. Cost is a binary search plus a
// single splice over the ranges the insertion touches.
func (s *Set) Merge(r Range) {
	if r.Empty() {
		return
	}

	// First existing range whose end reaches r.Start; everything before it
	// is strictly left of r and cannot coalesce.
	i := sort.Search(len(s.ranges), func(i int) bool {
		return s.ranges[i].End >= r.Start
	})

	j := i
	for j < len(s.ranges) && s.ranges[j].Start <= r.End {
		if s.ranges[j].Start < r.Start {
			r.Start = s.ranges[j].Start
		}
		if s.ranges[j].End > r.End {
			r.End = s.ranges[j].End
		}
		j++
	}

	if i == j {
		s.ranges = append(s.ranges, Range{})
		copy(s.ranges[i+1:], s.ranges[i:])
		s.ranges[i] = r
		return
	}

	s.ranges[i] = r
	s.ranges = append(s.ranges[:i+1], s.ranges[j:]...)
}

// ContiguousPrefix returns the end of the covered range starting at offset 0,
// or 0 if the set is empty or its first range does not start at 0.
func (s *Set) ContiguousPrefix() int64 {
	if len(s.ranges) == 0 || s.ranges[0].Start != 0 {
		return 0
	}
	return s.ranges[0].End
}

// Ranges returns a copy of the covered ranges in ascending order.
func (s *Set) Ranges() []Range {
	out := make([]Range, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Count returns the number of disjoint covered ranges.
func (s *Set) Count() int { return len(s.ranges) }

// Covered returns the total number of covered bytes.
func (s *Set) Covered() int64 {
	var total int64
	for _, r := range s.ranges {
		total += r.Len()
	}
	return total
}

// Gaps returns the uncovered holes in [0, limit) in ascending order. A limit
// at or below 0 yields no gaps.
func (s *Set) Gaps(limit int64) []Range {
	var gaps []Range
	var pos int64
	for _, r := range s.ranges {
		if r.Start >= limit {
			break
		}
		if r.Start > pos {
			gaps = append(gaps, Range{Start: pos, End: r.Start})
		}
		if r.End > pos {
			pos = r.End
		}
	}
	if pos < limit {
		gaps = append(gaps, Range{Start: pos, End: limit})
	}
	return gaps
}
