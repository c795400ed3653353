// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rangex provides index-based lazy range adaptors in Go.
//
// A range exposes its positions as opaque index values and its elements
// through those indices. Adaptors such as [Reverse], [Transform] and
// [Filter] wrap a base range and re-express its index operations, so a
// chain of adaptors is one lazy traversal with no intermediate slices.
//
// # Design Philosophy
//
// rangex provides:
//   - A small index protocol every range implements a subset of
//   - Capability tiers fixed at compile time by constructor constraints
//   - Optional capabilities found by structural interface assertion and
//     forwarded through every adaptor
//   - A callback fast path that skips index materialisation when a range
//     can enumerate itself
//
// # Index Protocol
//
// Mandatory forward traversal:
//
//   - [Range]: BeginIndex, EndIndex, AtEndIndex, DereferenceIndex, IncrementIndex
//
// Optional capabilities:
//
//   - [Decrementer]: step backward
//   - [Equaler]: positional equality
//   - [Distancer]: signed distance between indices
//   - [Advancer]: constant-time seek by offset
//   - [Bisector]: middle point of an interval
//   - [Addresser]: pointer to a stored element
//   - [Enumerator], [ReverseEnumerator]: callback fast paths
//   - [Trimmer]: take or drop in place at a border index
//
// Tiers:
//
//   - [BidirectionalRange]: Range + Decrementer + Equaler
//   - [RandomAccessRange]: BidirectionalRange + Distancer + Advancer
//
// Preconditions (not at end for dereference and increment, not at begin
// for decrement) are contracts. They are checked, with a panic, only in
// builds tagged rangexdebug.
//
// # Capability Detection
//
//   - [Capability]: bit set of optional operations
//   - [Capabilities], [Supports]: query a range
//   - [CapabilityReporter]: adaptors report what they inherit from their base
//   - [AsBidirectional], [AsRandomAccess]: runtime tier upgrade with
//     [ErrNotBidirectional] and [ErrNotRandomAccess]
//
// Dispatchers call the native operation when the range defines it and fall
// back to the index protocol otherwise:
//
//   - [EqualIndex], [DistanceToIndex], [AdvanceIndex], [MiddlePoint]
//   - [AddressIndex], [Size], [IsEmpty]
//
// # Adaptors
//
// Every adaptor embeds [Adaptor], which holds the base through
// [RefOrValue] and offers four accessors: [Adaptor.BaseRange],
// [Adaptor.BaseRangeValue], [Adaptor.TakeBaseRange] and
// [Adaptor.CloneBaseRange]. Constructors without the Ref suffix own a
// copy of their argument; Ref constructors borrow the caller's range.
//
// Reverse:
//
//   - [Reverse], [ReverseRef], [TryReverse]: bidirectional tier ([Reversed])
//   - [ReverseRandomAccess], [ReverseRandomAccessRef], [TryReverseRandomAccess]:
//     random-access tier ([RandomAccessReversed])
//   - [ReverseIndex]: sentinel or held base index
//
// Transform and filter:
//
//   - [Transform], [TransformBidirectional], [TransformRandomAccess]
//   - [Filter], [FilterBidirectional]
//
// Subranges:
//
//   - [Sub], [SubRef], [SubRandomAccess], [SubRandomAccessRef]
//
// # Concrete Ranges
//
//   - [Slice]: random access, addressable, trimmable through a pointer
//   - [Iota] via [Count]: integers in a half-open interval
//   - [List] via [NewList]: bidirectional linked list
//
// # Enumeration
//
//   - [ForEach], [ForEachReversed]: callback traversal reporting Break or Continue
//   - [BreakOrContinue], [ContinueIf], [Continuing]: early-exit protocol
//   - [Cursor]: external stepping
//   - [All], [Backward], [Indexed], [Collect], [Of]: iter package bridge
//
// # Algorithms
//
//   - [PartitionPoint]: bisection over any range with equality
//   - [Find], [Equal]
//
// # Example
//
//	s := rangex.Slice[int]{1, 2, 3, 4, 5}
//	r := rangex.Reverse[int, int](s)
//	var seen []int
//	res := rangex.ForEach[rangex.ReverseIndex[int]](r, func(v int) rangex.BreakOrContinue {
//		seen = append(seen, v)
//		return rangex.ContinueIf(v != 3)
//	})
//	// seen == [5 4 3], res == rangex.Break
package rangex
