// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// Filter adaptor.
// Indices are base indices positioned on matching elements or at the end.
// The number of elements between two indices is unknown without walking
// the base, so filtering drops distance, advance and the base middle point.

// Filtered keeps the elements of a forward base range that satisfy pred.
type Filtered[I, E any, R Range[I, E]] struct {
	Adaptor[R]
	pred func(E) bool
}

// Filter returns a filtered view that owns a copy of r.
func Filter[I, E any, R Range[I, E]](r R, pred func(E) bool) *Filtered[I, E, R] {
	return &Filtered[I, E, R]{Adaptor: newAdaptor(Own(r)), pred: pred}
}

// FilterRef returns a filtered view of *r.
func FilterRef[I, E any, R Range[I, E]](r *R, pred func(E) bool) *Filtered[I, E, R] {
	return &Filtered[I, E, R]{Adaptor: newAdaptor(Borrow(r)), pred: pred}
}

// skip moves idx forward to the first matching element at or after it.
func (f *Filtered[I, E, R]) skip(idx *I) {
	b := f.BaseRange()
	for !(*b).AtEndIndex(*idx) && !f.pred((*b).DereferenceIndex(*idx)) {
		(*b).IncrementIndex(idx)
	}
}

// BeginIndex returns the first matching element.
func (f *Filtered[I, E, R]) BeginIndex() I {
	idx := (*f.BaseRange()).BeginIndex()
	f.skip(&idx)
	return idx
}

func (f *Filtered[I, E, R]) EndIndex() I { return (*f.BaseRange()).EndIndex() }

func (f *Filtered[I, E, R]) AtEndIndex(idx I) bool { return (*f.BaseRange()).AtEndIndex(idx) }

func (f *Filtered[I, E, R]) DereferenceIndex(idx I) E {
	return (*f.BaseRange()).DereferenceIndex(idx)
}

// IncrementIndex moves idx to the next matching element.
func (f *Filtered[I, E, R]) IncrementIndex(idx *I) {
	(*f.BaseRange()).IncrementIndex(idx)
	f.skip(idx)
}

// AddressIndex forwards to the base range.
// It panics if the base range does not implement [Addresser].
func (f *Filtered[I, E, R]) AddressIndex(idx I) *E {
	p, ok := addressIndex[I, E](f.BaseRange(), idx)
	if !ok {
		missingCapability("AddressIndex", CapAddress)
	}
	return p
}

// Enumerate enumerates the base range, passing matching elements to fn.
func (f *Filtered[I, E, R]) Enumerate(fn func(E) BreakOrContinue) BreakOrContinue {
	return forEach[I, E](f.BaseRange(), f.matching(fn))
}

func (f *Filtered[I, E, R]) matching(fn func(E) BreakOrContinue) func(E) BreakOrContinue {
	return func(e E) BreakOrContinue {
		if !f.pred(e) {
			return Continue
		}
		return fn(e)
	}
}

func (f *Filtered[I, E, R]) TakeInplace(border I) { f.trimmer().TakeInplace(border) }

func (f *Filtered[I, E, R]) DropInplace(border I) { f.trimmer().DropInplace(border) }

func (f *Filtered[I, E, R]) trimmer() Trimmer[I] {
	t, ok := as[Trimmer[I]](f.BaseRange())
	if !ok {
		missingCapability("Trim", CapTrim)
	}
	return t
}

func (f *Filtered[I, E, R]) Capabilities() Capability {
	return capabilitiesOf[I, E](f.BaseRange()) & (CapAddress | CapEnumerate | CapTrim)
}

// BidirectionalFiltered is a [Filtered] over a bidirectional base.
type BidirectionalFiltered[I, E any, R BidirectionalRange[I, E]] struct {
	Filtered[I, E, R]
}

// FilterBidirectional returns a bidirectional filtered view that owns a
// copy of r.
func FilterBidirectional[I, E any, R BidirectionalRange[I, E]](r R, pred func(E) bool) *BidirectionalFiltered[I, E, R] {
	return &BidirectionalFiltered[I, E, R]{Filtered: *Filter[I](r, pred)}
}

// FilterBidirectionalRef returns a bidirectional filtered view of *r.
func FilterBidirectionalRef[I, E any, R BidirectionalRange[I, E]](r *R, pred func(E) bool) *BidirectionalFiltered[I, E, R] {
	return &BidirectionalFiltered[I, E, R]{Filtered: *FilterRef[I](r, pred)}
}

// DecrementIndex moves idx to the previous matching element.
// A matching element must exist before idx.
func (f *BidirectionalFiltered[I, E, R]) DecrementIndex(idx *I) {
	b := f.BaseRange()
	begin := (*b).BeginIndex()
	for {
		precondition(!(*b).EqualIndex(*idx, begin), "BidirectionalFiltered.DecrementIndex")
		(*b).DecrementIndex(idx)
		if f.pred((*b).DereferenceIndex(*idx)) {
			return
		}
	}
}

func (f *BidirectionalFiltered[I, E, R]) EqualIndex(lhs, rhs I) bool {
	return (*f.BaseRange()).EqualIndex(lhs, rhs)
}

// EnumerateReversed enumerates the base range backward, passing matching
// elements to fn.
func (f *BidirectionalFiltered[I, E, R]) EnumerateReversed(fn func(E) BreakOrContinue) BreakOrContinue {
	return forEachReversed[I, E](f.BaseRange(), f.matching(fn))
}

func (f *BidirectionalFiltered[I, E, R]) Capabilities() Capability {
	base := capabilitiesOf[I, E](f.BaseRange())
	return CapBidirectional | base&(CapAddress|CapEnumerate|CapEnumerateReversed|CapTrim)
}
