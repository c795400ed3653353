// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

import (
	"iter"
	"slices"
)

// Bridge to the iter package.
// All and Backward go through the callback fast path when the range has
// one; Indexed always walks the index protocol since it needs the indices.

// All returns an iterator over the elements of r in order.
//
// Example:
//
//	for v := range rangex.All[rangex.ReverseIndex[int], int](rangex.Reverse[int, int](rangex.Slice[int]{1, 2, 3})) {
//	    fmt.Println(v) // 3, 2, 1
//	}
func All[I, E any](r Range[I, E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		forEach[I, E](&r, yieldSignal(yield))
	}
}

// Backward returns an iterator over the elements of r from last to first.
func Backward[I, E any](r BidirectionalRange[I, E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		forEachReversed[I, E](&r, yieldSignal(yield))
	}
}

// Indexed returns an iterator over the index and element pairs of r.
func Indexed[I, E any](r Range[I, E]) iter.Seq2[I, E] {
	return func(yield func(I, E) bool) {
		for idx := r.BeginIndex(); !r.AtEndIndex(idx); r.IncrementIndex(&idx) {
			if !yield(idx, r.DereferenceIndex(idx)) {
				return
			}
		}
	}
}

// Collect materializes the elements of r into a new slice.
// The slice is preallocated when r knows its size in constant time.
func Collect[I, E any](r Range[I, E]) []E {
	var out []E
	if d, ok := r.(Distancer[I]); ok {
		out = make([]E, 0, d.DistanceToIndex(r.BeginIndex(), r.EndIndex()))
	}
	forEach[I, E](&r, func(e E) BreakOrContinue {
		out = append(out, e)
		return Continue
	})
	return out
}

// Of materializes seq into a [Slice].
func Of[E any](seq iter.Seq[E]) Slice[E] {
	return Slice[E](slices.Collect(seq))
}
