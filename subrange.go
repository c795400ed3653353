// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// Subrange is the view of the base elements in [begin, end).
// Indices are base indices; the view ends where an index equals end.
type Subrange[I, E any, R BidirectionalRange[I, E]] struct {
	Adaptor[R]
	begin, end I
}

// Sub returns a view of [begin, end) that owns a copy of r.
func Sub[I, E any, R BidirectionalRange[I, E]](r R, begin, end I) *Subrange[I, E, R] {
	return &Subrange[I, E, R]{Adaptor: newAdaptor(Own(r)), begin: begin, end: end}
}

// SubRef returns a view of [begin, end) of *r.
func SubRef[I, E any, R BidirectionalRange[I, E]](r *R, begin, end I) *Subrange[I, E, R] {
	return &Subrange[I, E, R]{Adaptor: newAdaptor(Borrow(r)), begin: begin, end: end}
}

// whole returns the view of all of *r.
func whole[I, E any, R BidirectionalRange[I, E]](r *R) *Subrange[I, E, R] {
	return SubRef[I, E](r, (*r).BeginIndex(), (*r).EndIndex())
}

// BeginIndex returns begin.
func (s *Subrange[I, E, R]) BeginIndex() I { return s.begin }

// EndIndex returns end.
func (s *Subrange[I, E, R]) EndIndex() I { return s.end }

// AtEndIndex reports whether idx equals end.
func (s *Subrange[I, E, R]) AtEndIndex(idx I) bool {
	return (*s.BaseRange()).EqualIndex(idx, s.end)
}

func (s *Subrange[I, E, R]) DereferenceIndex(idx I) E {
	precondition(!s.AtEndIndex(idx), "Subrange.DereferenceIndex")
	return (*s.BaseRange()).DereferenceIndex(idx)
}

func (s *Subrange[I, E, R]) AddressIndex(idx I) *E {
	p, ok := addressIndex[I, E](s.BaseRange(), idx)
	if !ok {
		missingCapability("AddressIndex", CapAddress)
	}
	return p
}

func (s *Subrange[I, E, R]) IncrementIndex(idx *I) {
	precondition(!s.AtEndIndex(*idx), "Subrange.IncrementIndex")
	(*s.BaseRange()).IncrementIndex(idx)
}

func (s *Subrange[I, E, R]) DecrementIndex(idx *I) {
	precondition(!s.EqualIndex(*idx, s.begin), "Subrange.DecrementIndex")
	(*s.BaseRange()).DecrementIndex(idx)
}

func (s *Subrange[I, E, R]) EqualIndex(lhs, rhs I) bool {
	return (*s.BaseRange()).EqualIndex(lhs, rhs)
}

// MiddlePoint bisects [idx, end) with the base range's middle point.
func (s *Subrange[I, E, R]) MiddlePoint(idx *I, end I) {
	middlePoint[I, E](s.BaseRange(), idx, end)
}

// Enumerate walks the view front to back.
func (s *Subrange[I, E, R]) Enumerate(f func(E) BreakOrContinue) BreakOrContinue {
	b := s.BaseRange()
	for idx := s.begin; !(*b).EqualIndex(idx, s.end); (*b).IncrementIndex(&idx) {
		if f((*b).DereferenceIndex(idx)) == Break {
			return Break
		}
	}
	return Continue
}

// EnumerateReversed walks the view back to front.
func (s *Subrange[I, E, R]) EnumerateReversed(f func(E) BreakOrContinue) BreakOrContinue {
	b := s.BaseRange()
	idx := s.end
	for !(*b).EqualIndex(s.begin, idx) {
		(*b).DecrementIndex(&idx)
		if f((*b).DereferenceIndex(idx)) == Break {
			return Break
		}
	}
	return Continue
}

// TakeInplace moves end to border.
func (s *Subrange[I, E, R]) TakeInplace(border I) { s.end = border }

// DropInplace moves begin to border.
func (s *Subrange[I, E, R]) DropInplace(border I) { s.begin = border }

func (s *Subrange[I, E, R]) Capabilities() Capability {
	base := capabilitiesOf[I, E](s.BaseRange())
	return CapBidirectional | CapEnumerate | CapEnumerateReversed | CapTrim |
		base&(CapMiddlePoint|CapAddress)
}

// RandomAccessSubrange is a [Subrange] over a random-access base.
type RandomAccessSubrange[I, E any, R RandomAccessRange[I, E]] struct {
	Subrange[I, E, R]
}

// SubRandomAccess returns a random-access view of [begin, end) that owns a
// copy of r.
func SubRandomAccess[I, E any, R RandomAccessRange[I, E]](r R, begin, end I) *RandomAccessSubrange[I, E, R] {
	return &RandomAccessSubrange[I, E, R]{Subrange: *Sub[I, E](r, begin, end)}
}

// SubRandomAccessRef returns a random-access view of [begin, end) of *r.
func SubRandomAccessRef[I, E any, R RandomAccessRange[I, E]](r *R, begin, end I) *RandomAccessSubrange[I, E, R] {
	return &RandomAccessSubrange[I, E, R]{Subrange: *SubRef[I, E](r, begin, end)}
}

func (s *RandomAccessSubrange[I, E, R]) DistanceToIndex(from, to I) int {
	return (*s.BaseRange()).DistanceToIndex(from, to)
}

func (s *RandomAccessSubrange[I, E, R]) AdvanceIndex(idx *I, d int) {
	(*s.BaseRange()).AdvanceIndex(idx, d)
}

func (s *RandomAccessSubrange[I, E, R]) Capabilities() Capability {
	return s.Subrange.Capabilities() | CapDistance | CapAdvance
}
