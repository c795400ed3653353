// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// Index protocol.
// A range exposes positions as opaque index values of type I and elements of
// type E. Only Range is mandatory; every other interface is a capability a
// range may add. An index is meaningful only for the range instance that
// produced it.

// Range is the forward index protocol.
//
// Preconditions are contracts, not checked errors: DereferenceIndex and
// IncrementIndex require an index that is not at end.
type Range[I, E any] interface {
	// BeginIndex returns the index of the first element, or an end index
	// when the range is empty.
	BeginIndex() I

	// EndIndex returns the past-the-end index.
	EndIndex() I

	// AtEndIndex reports whether idx denotes the end.
	AtEndIndex(idx I) bool

	// DereferenceIndex returns the element at idx.
	DereferenceIndex(idx I) E

	// IncrementIndex advances idx one step forward.
	IncrementIndex(idx *I)
}

// Decrementer moves an index one step backward.
// DecrementIndex requires an index that is not the begin index.
type Decrementer[I any] interface {
	DecrementIndex(idx *I)
}

// Equaler compares two indices of the same range for positional equality.
type Equaler[I any] interface {
	EqualIndex(lhs, rhs I) bool
}

// Distancer computes the signed number of increments from one index to
// another.
type Distancer[I any] interface {
	DistanceToIndex(from, to I) int
}

// Advancer moves an index by a signed offset in constant time.
type Advancer[I any] interface {
	AdvanceIndex(idx *I, d int)
}

// Bisector moves idx to a position between itself and end.
// For a non-empty interval the result is an element index strictly
// before end.
type Bisector[I any] interface {
	MiddlePoint(idx *I, end I)
}

// Addresser returns a pointer to the element stored at idx.
// Writes through the pointer are visible to later dereferences.
type Addresser[I, E any] interface {
	AddressIndex(idx I) *E
}

// Enumerator is the callback fast path for forward traversal.
// Enumerate calls f for every element in order until f returns Break,
// and returns Break in that case or Continue after the last element.
type Enumerator[E any] interface {
	Enumerate(f func(E) BreakOrContinue) BreakOrContinue
}

// ReverseEnumerator is the callback fast path for backward traversal.
type ReverseEnumerator[E any] interface {
	EnumerateReversed(f func(E) BreakOrContinue) BreakOrContinue
}

// Trimmer shrinks a range in place at a border index.
// TakeInplace keeps the elements before border; DropInplace keeps the
// elements from border on.
type Trimmer[I any] interface {
	TakeInplace(border I)
	DropInplace(border I)
}

// Cloner returns an independent copy of a range.
type Cloner[R any] interface {
	Clone() R
}

// BidirectionalRange is the tier of ranges that can be traversed in both
// directions and compare indices. It is the minimum a range must provide to
// be reversed.
type BidirectionalRange[I, E any] interface {
	Range[I, E]
	Decrementer[I]
	Equaler[I]
}

// RandomAccessRange adds constant-time distance and advance.
type RandomAccessRange[I, E any] interface {
	BidirectionalRange[I, E]
	Distancer[I]
	Advancer[I]
}
