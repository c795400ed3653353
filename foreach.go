// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// Enumeration entry points.
// A range that implements the callback fast path enumerates itself; every
// other range is driven through its index protocol. Either way the callback
// sees the same elements in the same order and the result tells whether it
// broke early.

// ForEach calls f for every element of r in order until f returns Break.
// It returns Break if f did, and Continue otherwise.
//
// Example:
//
//	var seen []int
//	r := rangex.Reverse[int, int](rangex.Slice[int]{1, 2, 3, 4, 5})
//	rangex.ForEach[rangex.ReverseIndex[int]](r, func(v int) rangex.BreakOrContinue {
//	    seen = append(seen, v)
//	    return rangex.ContinueIf(v != 3)
//	})
//	// seen == [5 4 3], result == Break
func ForEach[I, E any](r Range[I, E], f func(E) BreakOrContinue) BreakOrContinue {
	return forEach[I, E](&r, f)
}

func forEach[I, E any, R Range[I, E]](p *R, f func(E) BreakOrContinue) BreakOrContinue {
	if en, ok := as[Enumerator[E]](p); ok {
		return en.Enumerate(f)
	}
	return enumerateIndices[I, E](*p, f)
}

// enumerateIndices drives f through the forward index protocol.
func enumerateIndices[I, E any, R Range[I, E]](r R, f func(E) BreakOrContinue) BreakOrContinue {
	for idx := r.BeginIndex(); !r.AtEndIndex(idx); r.IncrementIndex(&idx) {
		if f(r.DereferenceIndex(idx)) == Break {
			return Break
		}
	}
	return Continue
}

// ForEachReversed calls f for every element of r from last to first until f
// returns Break.
func ForEachReversed[I, E any](r BidirectionalRange[I, E], f func(E) BreakOrContinue) BreakOrContinue {
	return forEachReversed[I, E](&r, f)
}

func forEachReversed[I, E any, R BidirectionalRange[I, E]](p *R, f func(E) BreakOrContinue) BreakOrContinue {
	if re, ok := as[ReverseEnumerator[E]](p); ok {
		return re.EnumerateReversed(f)
	}
	return whole[I, E](p).EnumerateReversed(f)
}
