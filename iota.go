// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

import "golang.org/x/exp/constraints"

// Iota is the random-access range of the integers in [lo, hi).
// Each index is the integer it denotes.
type Iota[N constraints.Integer] struct {
	lo, hi N
}

// Count returns the range of the integers in [lo, hi).
// A reversed interval is empty.
func Count[N constraints.Integer](lo, hi N) Iota[N] {
	if hi < lo {
		hi = lo
	}
	return Iota[N]{lo: lo, hi: hi}
}

func (r Iota[N]) BeginIndex() N { return r.lo }

func (r Iota[N]) EndIndex() N { return r.hi }

func (r Iota[N]) AtEndIndex(idx N) bool { return idx == r.hi }

func (r Iota[N]) DereferenceIndex(idx N) N { return idx }

func (r Iota[N]) IncrementIndex(idx *N) {
	precondition(*idx < r.hi, "Iota.IncrementIndex")
	*idx++
}

func (r Iota[N]) DecrementIndex(idx *N) {
	precondition(*idx > r.lo, "Iota.DecrementIndex")
	*idx--
}

func (r Iota[N]) EqualIndex(lhs, rhs N) bool { return lhs == rhs }

// DistanceToIndex returns to - from computed in int, so the result is exact
// for any interval of N whose length fits in an int.
func (r Iota[N]) DistanceToIndex(from, to N) int {
	return int(to) - int(from)
}

func (r Iota[N]) AdvanceIndex(idx *N, d int) {
	*idx = N(int(*idx) + d)
	precondition(*idx >= r.lo && *idx <= r.hi, "Iota.AdvanceIndex")
}

// MiddlePoint moves idx halfway to end, rounding toward idx.
func (r Iota[N]) MiddlePoint(idx *N, end N) {
	precondition(*idx <= end, "Iota.MiddlePoint")
	*idx = N(int(*idx) + (int(end)-int(*idx))/2)
}

func (r Iota[N]) Enumerate(f func(N) BreakOrContinue) BreakOrContinue {
	for n := r.lo; n < r.hi; n++ {
		if f(n) == Break {
			return Break
		}
	}
	return Continue
}

func (r Iota[N]) EnumerateReversed(f func(N) BreakOrContinue) BreakOrContinue {
	for n := r.hi; n > r.lo; {
		n--
		if f(n) == Break {
			return Break
		}
	}
	return Continue
}
