// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// EqualityRange is a forward range that can compare indices.
type EqualityRange[I, E any] interface {
	Range[I, E]
	Equaler[I]
}

// PartitionPoint returns the first index of r whose element does not
// satisfy pred, assuming r is partitioned: every element satisfying pred
// precedes every element that does not. It bisects with [MiddlePoint].
func PartitionPoint[I, E any](r EqualityRange[I, E], pred func(E) bool) I {
	lo, hi := r.BeginIndex(), r.EndIndex()
	for !r.EqualIndex(lo, hi) {
		mid := lo
		middlePoint[I, E](&r, &mid, hi)
		if pred(r.DereferenceIndex(mid)) {
			r.IncrementIndex(&mid)
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// Find returns the index of the first element of r satisfying pred, or the
// end index and false.
func Find[I, E any](r Range[I, E], pred func(E) bool) (I, bool) {
	idx := r.BeginIndex()
	for ; !r.AtEndIndex(idx); r.IncrementIndex(&idx) {
		if pred(r.DereferenceIndex(idx)) {
			return idx, true
		}
	}
	return idx, false
}

// Equal reports whether a and b have the same elements in the same order.
func Equal[I1, I2 any, E comparable](a Range[I1, E], b Range[I2, E]) bool {
	ia, ib := a.BeginIndex(), b.BeginIndex()
	for ; !a.AtEndIndex(ia); a.IncrementIndex(&ia) {
		if b.AtEndIndex(ib) || a.DereferenceIndex(ia) != b.DereferenceIndex(ib) {
			return false
		}
		b.IncrementIndex(&ib)
	}
	return b.AtEndIndex(ib)
}
