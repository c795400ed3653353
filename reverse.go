// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// Reverse adaptor.
// A reversed index holds the base index of its current element, so the
// reversed begin is the predecessor of the base end and the reversed end is
// the sentinel. Moving forward in the reversed range moves backward in the
// base and vice versa.

// Reversed presents a bidirectional base range back to front.
type Reversed[I, E any, R BidirectionalRange[I, E]] struct {
	Adaptor[R]
}

// Reverse returns a reversed view that owns a copy of r.
// The view is bidirectional whatever the tier of r; use
// [ReverseRandomAccess] to keep distance and advance over a random-access
// base.
//
// Example:
//
//	s := rangex.Slice[int]{1, 2, 3}
//	rangex.Collect[rangex.ReverseIndex[int], int](rangex.Reverse[int, int](s)) // [3 2 1]
func Reverse[I, E any, R BidirectionalRange[I, E]](r R) *Reversed[I, E, R] {
	return &Reversed[I, E, R]{Adaptor: newAdaptor(Own(r))}
}

// ReverseRef returns a reversed view of *r. The caller keeps *r alive.
func ReverseRef[I, E any, R BidirectionalRange[I, E]](r *R) *Reversed[I, E, R] {
	return &Reversed[I, E, R]{Adaptor: newAdaptor(Borrow(r))}
}

// TryReverse reverses a range known only through the forward protocol.
// It returns an error wrapping [ErrNotBidirectional] when r cannot be
// traversed backward.
func TryReverse[I, E any](r Range[I, E]) (*Reversed[I, E, BidirectionalRange[I, E]], error) {
	b, err := AsBidirectional(r)
	if err != nil {
		return nil, err
	}
	return Reverse[I, E](b), nil
}

// BeginIndex returns the index of the last base element, or the sentinel
// when the base is empty.
func (a *Reversed[I, E, R]) BeginIndex() ReverseIndex[I] {
	b := a.BaseRange()
	idx := (*b).EndIndex()
	if (*b).EqualIndex((*b).BeginIndex(), idx) {
		return Sentinel[I]()
	}
	(*b).DecrementIndex(&idx)
	return Held(idx)
}

// EndIndex returns the sentinel.
func (a *Reversed[I, E, R]) EndIndex() ReverseIndex[I] {
	return Sentinel[I]()
}

// AtEndIndex reports whether idx is the sentinel.
func (a *Reversed[I, E, R]) AtEndIndex(idx ReverseIndex[I]) bool {
	return idx.IsSentinel()
}

// DereferenceIndex returns the base element held by idx.
func (a *Reversed[I, E, R]) DereferenceIndex(idx ReverseIndex[I]) E {
	precondition(idx.held, "Reversed.DereferenceIndex")
	return (*a.BaseRange()).DereferenceIndex(idx.base)
}

// AddressIndex returns a pointer to the base element held by idx.
// It panics if the base range does not implement [Addresser].
func (a *Reversed[I, E, R]) AddressIndex(idx ReverseIndex[I]) *E {
	precondition(idx.held, "Reversed.AddressIndex")
	p, ok := addressIndex[I, E](a.BaseRange(), idx.base)
	if !ok {
		missingCapability("AddressIndex", CapAddress)
	}
	return p
}

// IncrementIndex steps toward the base begin; stepping past it yields the
// sentinel.
func (a *Reversed[I, E, R]) IncrementIndex(idx *ReverseIndex[I]) {
	precondition(idx.held, "Reversed.IncrementIndex")
	b := a.BaseRange()
	if (*b).EqualIndex((*b).BeginIndex(), idx.base) {
		*idx = Sentinel[I]()
		return
	}
	(*b).DecrementIndex(&idx.base)
}

// DecrementIndex steps toward the base end; the sentinel re-enters at the
// base begin.
func (a *Reversed[I, E, R]) DecrementIndex(idx *ReverseIndex[I]) {
	b := a.BaseRange()
	if !idx.held {
		precondition(!(*b).AtEndIndex((*b).BeginIndex()), "Reversed.DecrementIndex")
		*idx = Held((*b).BeginIndex())
		return
	}
	(*b).IncrementIndex(&idx.base)
	precondition(!(*b).AtEndIndex(idx.base), "Reversed.DecrementIndex")
}

// EqualIndex reports whether both indices are the sentinel or hold equal
// base indices.
func (a *Reversed[I, E, R]) EqualIndex(lhs, rhs ReverseIndex[I]) bool {
	return lhs.held == rhs.held && (!lhs.held || (*a.BaseRange()).EqualIndex(lhs.base, rhs.base))
}

// BorderBaseIndex returns the base border just after the element held by
// idx, or the base begin for the sentinel.
func (a *Reversed[I, E, R]) BorderBaseIndex(idx ReverseIndex[I]) I {
	b := a.BaseRange()
	if !idx.held {
		return (*b).BeginIndex()
	}
	border := idx.base
	(*b).IncrementIndex(&border)
	return border
}

// ElementBaseIndex returns the base index of the element at idx.
func (a *Reversed[I, E, R]) ElementBaseIndex(idx ReverseIndex[I]) I {
	precondition(idx.held, "Reversed.ElementBaseIndex")
	return idx.base
}

// MiddlePoint moves idx to the middle of [idx, end) by bisecting the base
// between the borders of end and idx. The result holds the base element at
// the base middle point.
func (a *Reversed[I, E, R]) MiddlePoint(idx *ReverseIndex[I], end ReverseIndex[I]) {
	if a.EqualIndex(*idx, end) {
		return
	}
	mid := a.BorderBaseIndex(end)
	middlePoint[I, E](a.BaseRange(), &mid, a.BorderBaseIndex(*idx))
	*idx = Held(mid)
}

// Enumerate calls f for every element back to front.
// A base implementing [ReverseEnumerator] enumerates itself; any other base
// is walked backward through a subrange over its full extent.
func (a *Reversed[I, E, R]) Enumerate(f func(E) BreakOrContinue) BreakOrContinue {
	if re, ok := as[ReverseEnumerator[E]](a.BaseRange()); ok {
		return re.EnumerateReversed(f)
	}
	return whole[I, E](a.BaseRange()).EnumerateReversed(f)
}

// EnumerateReversed enumerates the base range front to back.
func (a *Reversed[I, E, R]) EnumerateReversed(f func(E) BreakOrContinue) BreakOrContinue {
	return forEach[I, E](a.BaseRange(), f)
}

// TakeInplace keeps the reversed elements before border by dropping the
// base elements before its base border.
// It panics if the base range does not implement [Trimmer].
func (a *Reversed[I, E, R]) TakeInplace(border ReverseIndex[I]) {
	a.trimmer().DropInplace(a.BorderBaseIndex(border))
}

// DropInplace keeps the reversed elements from border on by taking the base
// elements before its base border.
// It panics if the base range does not implement [Trimmer].
func (a *Reversed[I, E, R]) DropInplace(border ReverseIndex[I]) {
	a.trimmer().TakeInplace(a.BorderBaseIndex(border))
}

func (a *Reversed[I, E, R]) trimmer() Trimmer[I] {
	t, ok := as[Trimmer[I]](a.BaseRange())
	if !ok {
		missingCapability("Trim", CapTrim)
	}
	return t
}

// Capabilities reports the bidirectional tier plus what the base provides
// for middle point, address and trimming, with the enumeration fast paths
// swapped.
func (a *Reversed[I, E, R]) Capabilities() Capability {
	return reversedCapabilities(CapBidirectional, capabilitiesOf[I, E](a.BaseRange()))
}

func reversedCapabilities(tier, base Capability) Capability {
	c := tier | base&(CapMiddlePoint|CapAddress|CapTrim)
	if base.Has(CapEnumerate) {
		c |= CapEnumerateReversed
	}
	if base.Has(CapEnumerateReversed) {
		c |= CapEnumerate
	}
	return c
}

// RandomAccessReversed is a [Reversed] over a random-access base, adding
// distance and advance.
type RandomAccessReversed[I, E any, R RandomAccessRange[I, E]] struct {
	Reversed[I, E, R]
}

// ReverseRandomAccess returns a random-access reversed view that owns a copy
// of r.
func ReverseRandomAccess[I, E any, R RandomAccessRange[I, E]](r R) *RandomAccessReversed[I, E, R] {
	return &RandomAccessReversed[I, E, R]{Reversed: Reversed[I, E, R]{Adaptor: newAdaptor(Own(r))}}
}

// ReverseRandomAccessRef returns a random-access reversed view of *r.
func ReverseRandomAccessRef[I, E any, R RandomAccessRange[I, E]](r *R) *RandomAccessReversed[I, E, R] {
	return &RandomAccessReversed[I, E, R]{Reversed: Reversed[I, E, R]{Adaptor: newAdaptor(Borrow(r))}}
}

// TryReverseRandomAccess reverses a range known only through the forward
// protocol, keeping random access. It returns an error wrapping
// [ErrNotRandomAccess] when r lacks it.
func TryReverseRandomAccess[I, E any](r Range[I, E]) (*RandomAccessReversed[I, E, RandomAccessRange[I, E]], error) {
	ra, err := AsRandomAccess(r)
	if err != nil {
		return nil, err
	}
	return ReverseRandomAccess[I, E](ra), nil
}

// DistanceToIndex returns the number of reversed increments from lhs to rhs.
// The sentinel is measured as the base begin, one step past it.
func (a *RandomAccessReversed[I, E, R]) DistanceToIndex(lhs, rhs ReverseIndex[I]) int {
	b := a.BaseRange()
	from, to := (*b).BeginIndex(), (*b).BeginIndex()
	d := 0
	if rhs.held {
		from = rhs.base
	} else {
		d++
	}
	if lhs.held {
		to = lhs.base
	} else {
		d--
	}
	return (*b).DistanceToIndex(from, to) + d
}

// AdvanceIndex moves idx by d reversed positions.
// Advancing from the sentinel is only valid toward the reversed begin.
func (a *RandomAccessReversed[I, E, R]) AdvanceIndex(idx *ReverseIndex[I], d int) {
	b := a.BaseRange()
	if idx.held {
		(*b).AdvanceIndex(&idx.base, -(d - 1))
		if (*b).EqualIndex((*b).BeginIndex(), idx.base) {
			*idx = Sentinel[I]()
		} else {
			(*b).DecrementIndex(&idx.base)
		}
		return
	}
	if d == 0 {
		return
	}
	precondition(d < 0, "RandomAccessReversed.AdvanceIndex")
	base := (*b).BeginIndex()
	(*b).AdvanceIndex(&base, -(d + 1))
	*idx = Held(base)
}

// Capabilities reports the random-access tier plus the forwarded base
// capabilities.
func (a *RandomAccessReversed[I, E, R]) Capabilities() Capability {
	return reversedCapabilities(CapRandomAccess, capabilitiesOf[I, E](a.BaseRange()))
}
