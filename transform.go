// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// Transform adaptor.
// Indices are base indices and every index operation is forwarded
// unchanged; only dereference applies the mapping. Each tier exposes the
// traversal of its base tier. Elements are computed on every dereference,
// so the mapped range is not addressable.

// Transformed maps every element of a forward base range through fn.
type Transformed[I, E, F any, R Range[I, E]] struct {
	Adaptor[R]
	fn func(E) F
}

// Transform returns a mapped view that owns a copy of r.
//
// Example:
//
//	sq := rangex.Transform[int](rangex.Slice[int]{1, 2, 3}, func(v int) int { return v * v })
//	rangex.Collect[int, int](sq) // [1 4 9]
func Transform[I, E, F any, R Range[I, E]](r R, fn func(E) F) *Transformed[I, E, F, R] {
	return &Transformed[I, E, F, R]{Adaptor: newAdaptor(Own(r)), fn: fn}
}

// TransformRef returns a mapped view of *r.
func TransformRef[I, E, F any, R Range[I, E]](r *R, fn func(E) F) *Transformed[I, E, F, R] {
	return &Transformed[I, E, F, R]{Adaptor: newAdaptor(Borrow(r)), fn: fn}
}

func (t *Transformed[I, E, F, R]) BeginIndex() I { return (*t.BaseRange()).BeginIndex() }

func (t *Transformed[I, E, F, R]) EndIndex() I { return (*t.BaseRange()).EndIndex() }

func (t *Transformed[I, E, F, R]) AtEndIndex(idx I) bool { return (*t.BaseRange()).AtEndIndex(idx) }

func (t *Transformed[I, E, F, R]) IncrementIndex(idx *I) { (*t.BaseRange()).IncrementIndex(idx) }

// DereferenceIndex returns fn applied to the base element at idx.
func (t *Transformed[I, E, F, R]) DereferenceIndex(idx I) F {
	return t.fn((*t.BaseRange()).DereferenceIndex(idx))
}

// MiddlePoint forwards to the base range's middle point.
func (t *Transformed[I, E, F, R]) MiddlePoint(idx *I, end I) {
	middlePoint[I, E](t.BaseRange(), idx, end)
}

// Enumerate enumerates the base range, mapping each element.
func (t *Transformed[I, E, F, R]) Enumerate(f func(F) BreakOrContinue) BreakOrContinue {
	return forEach[I, E](t.BaseRange(), func(e E) BreakOrContinue {
		return f(t.fn(e))
	})
}

func (t *Transformed[I, E, F, R]) TakeInplace(border I) { t.trimmer().TakeInplace(border) }

func (t *Transformed[I, E, F, R]) DropInplace(border I) { t.trimmer().DropInplace(border) }

func (t *Transformed[I, E, F, R]) trimmer() Trimmer[I] {
	tr, ok := as[Trimmer[I]](t.BaseRange())
	if !ok {
		missingCapability("Trim", CapTrim)
	}
	return tr
}

func (t *Transformed[I, E, F, R]) Capabilities() Capability {
	return capabilitiesOf[I, E](t.BaseRange()) & (CapMiddlePoint | CapEnumerate | CapTrim)
}

// BidirectionalTransformed is a [Transformed] over a bidirectional base.
type BidirectionalTransformed[I, E, F any, R BidirectionalRange[I, E]] struct {
	Transformed[I, E, F, R]
}

// TransformBidirectional returns a bidirectional mapped view that owns a
// copy of r.
func TransformBidirectional[I, E, F any, R BidirectionalRange[I, E]](r R, fn func(E) F) *BidirectionalTransformed[I, E, F, R] {
	return &BidirectionalTransformed[I, E, F, R]{Transformed: *Transform[I](r, fn)}
}

// TransformBidirectionalRef returns a bidirectional mapped view of *r.
func TransformBidirectionalRef[I, E, F any, R BidirectionalRange[I, E]](r *R, fn func(E) F) *BidirectionalTransformed[I, E, F, R] {
	return &BidirectionalTransformed[I, E, F, R]{Transformed: *TransformRef[I](r, fn)}
}

func (t *BidirectionalTransformed[I, E, F, R]) DecrementIndex(idx *I) {
	(*t.BaseRange()).DecrementIndex(idx)
}

func (t *BidirectionalTransformed[I, E, F, R]) EqualIndex(lhs, rhs I) bool {
	return (*t.BaseRange()).EqualIndex(lhs, rhs)
}

// EnumerateReversed enumerates the base range backward, mapping each
// element.
func (t *BidirectionalTransformed[I, E, F, R]) EnumerateReversed(f func(F) BreakOrContinue) BreakOrContinue {
	return forEachReversed[I, E](t.BaseRange(), func(e E) BreakOrContinue {
		return f(t.fn(e))
	})
}

func (t *BidirectionalTransformed[I, E, F, R]) Capabilities() Capability {
	base := capabilitiesOf[I, E](t.BaseRange())
	return CapBidirectional | base&(CapMiddlePoint|CapEnumerate|CapEnumerateReversed|CapTrim)
}

// RandomAccessTransformed is a [Transformed] over a random-access base.
type RandomAccessTransformed[I, E, F any, R RandomAccessRange[I, E]] struct {
	BidirectionalTransformed[I, E, F, R]
}

// TransformRandomAccess returns a random-access mapped view that owns a
// copy of r.
func TransformRandomAccess[I, E, F any, R RandomAccessRange[I, E]](r R, fn func(E) F) *RandomAccessTransformed[I, E, F, R] {
	return &RandomAccessTransformed[I, E, F, R]{BidirectionalTransformed: *TransformBidirectional[I](r, fn)}
}

// TransformRandomAccessRef returns a random-access mapped view of *r.
func TransformRandomAccessRef[I, E, F any, R RandomAccessRange[I, E]](r *R, fn func(E) F) *RandomAccessTransformed[I, E, F, R] {
	return &RandomAccessTransformed[I, E, F, R]{BidirectionalTransformed: *TransformBidirectionalRef[I](r, fn)}
}

func (t *RandomAccessTransformed[I, E, F, R]) DistanceToIndex(from, to I) int {
	return (*t.BaseRange()).DistanceToIndex(from, to)
}

func (t *RandomAccessTransformed[I, E, F, R]) AdvanceIndex(idx *I, d int) {
	(*t.BaseRange()).AdvanceIndex(idx, d)
}

func (t *RandomAccessTransformed[I, E, F, R]) Capabilities() Capability {
	return t.BidirectionalTransformed.Capabilities() | CapDistance | CapAdvance
}
