// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// Index-operation dispatch.
// Each dispatcher calls the range's own operation when it defines one and
// otherwise falls back to a generic implementation over the operations the
// range does have. Adaptors use the unexported forms over a pointer to their
// base so that pointer-receiver capabilities are found.

// EqualIndex reports whether lhs and rhs denote the same position of r.
// It panics if r does not implement [Equaler].
func EqualIndex[I, E any](r Range[I, E], lhs, rhs I) bool {
	return equalIndex[I](&r, lhs, rhs)
}

func equalIndex[I, R any](p *R, lhs, rhs I) bool {
	eq, ok := as[Equaler[I]](p)
	if !ok {
		missingCapability("EqualIndex", CapEqual)
	}
	return eq.EqualIndex(lhs, rhs)
}

// DistanceToIndex returns the number of increments from from to to.
// Ranges without [Distancer] are walked forward, which requires [Equaler]
// and to be reachable from from.
func DistanceToIndex[I, E any](r Range[I, E], from, to I) int {
	return distanceToIndex[I, E](&r, from, to)
}

func distanceToIndex[I, E any, R Range[I, E]](p *R, from, to I) int {
	if d, ok := as[Distancer[I]](p); ok {
		return d.DistanceToIndex(from, to)
	}
	n := 0
	for !equalIndex[I](p, from, to) {
		precondition(!(*p).AtEndIndex(from), "DistanceToIndex")
		(*p).IncrementIndex(&from)
		n++
	}
	return n
}

// AdvanceIndex moves idx by d positions.
// Ranges without [Advancer] are stepped one index at a time; a negative d
// then requires [Decrementer].
func AdvanceIndex[I, E any](r Range[I, E], idx *I, d int) {
	advanceIndex[I, E](&r, idx, d)
}

func advanceIndex[I, E any, R Range[I, E]](p *R, idx *I, d int) {
	if a, ok := as[Advancer[I]](p); ok {
		a.AdvanceIndex(idx, d)
		return
	}
	for ; d > 0; d-- {
		precondition(!(*p).AtEndIndex(*idx), "AdvanceIndex")
		(*p).IncrementIndex(idx)
	}
	if d == 0 {
		return
	}
	dec, ok := as[Decrementer[I]](p)
	if !ok {
		missingCapability("AdvanceIndex", CapDecrement)
	}
	for ; d < 0; d++ {
		dec.DecrementIndex(idx)
	}
}

// MiddlePoint moves idx to the middle of [idx, end).
//
// A range implementing [Bisector] decides the point itself. Otherwise the
// interval is measured, in constant time for ranges with [Distancer] and
// [Advancer] and by walking it for the rest, and idx moves forward by half
// its length rounded down.
func MiddlePoint[I, E any](r Range[I, E], idx *I, end I) {
	middlePoint[I, E](&r, idx, end)
}

func middlePoint[I, E any, R Range[I, E]](p *R, idx *I, end I) {
	if b, ok := as[Bisector[I]](p); ok {
		b.MiddlePoint(idx, end)
		return
	}
	advanceIndex[I, E](p, idx, distanceToIndex[I, E](p, *idx, end)/2)
}

// AddressIndex returns a pointer to the element of r at idx, or false when
// r does not implement [Addresser].
func AddressIndex[I, E any](r Range[I, E], idx I) (*E, bool) {
	return addressIndex[I, E](&r, idx)
}

func addressIndex[I, E, R any](p *R, idx I) (*E, bool) {
	if cr, ok := as[CapabilityReporter](p); ok && !cr.Capabilities().Has(CapAddress) {
		return nil, false
	}
	a, ok := as[Addresser[I, E]](p)
	if !ok {
		return nil, false
	}
	return a.AddressIndex(idx), true
}

// Size returns the number of elements of r.
// Ranges without [Distancer] are counted by a full traversal.
func Size[I, E any](r Range[I, E]) int {
	if d, ok := r.(Distancer[I]); ok {
		return d.DistanceToIndex(r.BeginIndex(), r.EndIndex())
	}
	n := 0
	for idx := r.BeginIndex(); !r.AtEndIndex(idx); r.IncrementIndex(&idx) {
		n++
	}
	return n
}

// IsEmpty reports whether r has no elements.
func IsEmpty[I, E any](r Range[I, E]) bool {
	return r.AtEndIndex(r.BeginIndex())
}
