package main

import (
	"fmt"
	"sort"
)

// Range is a closed range [Low, High].
type Range struct {
	Low, High uint64
}

// RangeSet is a sorted sequence of disjoint closed ranges.
//
// For any i < j, s[i].High < s[j].Low. Ranges that merely abut (one ends at
// 5, the next starts at 6) are kept apart; only ranges sharing at least one
// value are merged. The zero value is an empty set.
type RangeSet []Range

// Position tells where a value sits relative to the ranges of a RangeSet.
// If Inside, the value is covered by s[Index]. Otherwise Index is where
// a range holding only that value would have to be inserted.
type Position struct {
	Index  int
	Inside bool
}

func (p Position) String() string {
	if p.Inside {
		return fmt.Sprintf("Inside(%v)", p.Index)
	}
	return fmt.Sprintf("Outside(%v)", p.Index)
}

func (s RangeSet) Query(v uint64) Position {
	i := sort.Search(len(s), func(i int) bool { return s[i].Low >= v })
	if i < len(s) && s[i].Low == v {
		return Position{i, true}
	}
	if i > 0 && v <= s[i-1].High {
		return Position{i - 1, true}
	}
	return Position{i, false}
}

func (s RangeSet) Contains(v uint64) bool {
	return s.Query(v).Inside
}

// CoveredLength returns the number of distinct values covered by s.
// A set covering every uint64 wraps around to 0.
func (s RangeSet) CoveredLength() (n uint64) {
	for _, r := range s {
		n += r.High - r.Low + 1
	}
	return
}

func (s RangeSet) Len() int {
	return len(s)
}

func (s *RangeSet) Add(single uint64) {
	s.Insert(Range{single, single})
}

func (s *RangeSet) AddRange(low, high uint64) {
	s.Insert(Range{low, high})
}

// Insert adds r to s, merging it with every range it overlaps or spans.
// It panics if r.Low > r.High.
func (s *RangeSet) Insert(r Range) {
	if r.Low > r.High {
		panic(fmt.Sprintf("rangeset: invalid range [%v, %v]", r.Low, r.High))
	}

	low, high := s.Query(r.Low), s.Query(r.High)
	if low.Inside && high.Inside && low.Index == high.Index {
		return
	}

	// s[i:j] is replaced by r.
	i, j := low.Index, high.Index
	if low.Inside {
		r.Low = (*s)[i].Low
	}
	if high.Inside {
		r.High = (*s)[j].High
		j++
	}

	if i < j {
		(*s)[i] = r
	} else {
		*s = append(*s, Range{})
		copy((*s)[i+1:], (*s)[i:])
		(*s)[i] = r
	}
	i++

	if i < j {
		*s = append((*s)[:i], (*s)[j:]...)
	}
}

func (s *RangeSet) Reset() {
	*s = nil
}
