// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

import "slices"

// Slice is a random-access range over a Go slice. Indices are positions in
// [0, len]; len is the end index.
//
// Slice has value receivers for the index protocol, so a Slice value shares
// its backing array with its copies. Trimming needs a *Slice.
type Slice[T any] []T

// Len returns the number of elements.
func (s Slice[T]) Len() int { return len(s) }

func (s Slice[T]) BeginIndex() int { return 0 }

func (s Slice[T]) EndIndex() int { return len(s) }

func (s Slice[T]) AtEndIndex(idx int) bool { return idx == len(s) }

func (s Slice[T]) DereferenceIndex(idx int) T { return s[idx] }

func (s Slice[T]) AddressIndex(idx int) *T { return &s[idx] }

func (s Slice[T]) IncrementIndex(idx *int) {
	precondition(*idx < len(s), "Slice.IncrementIndex")
	*idx++
}

func (s Slice[T]) DecrementIndex(idx *int) {
	precondition(*idx > 0, "Slice.DecrementIndex")
	*idx--
}

func (s Slice[T]) EqualIndex(lhs, rhs int) bool { return lhs == rhs }

func (s Slice[T]) DistanceToIndex(from, to int) int { return to - from }

func (s Slice[T]) AdvanceIndex(idx *int, d int) {
	precondition(*idx+d >= 0 && *idx+d <= len(s), "Slice.AdvanceIndex")
	*idx += d
}

// MiddlePoint moves idx halfway to end, rounding toward idx.
func (s Slice[T]) MiddlePoint(idx *int, end int) {
	precondition(*idx <= end, "Slice.MiddlePoint")
	*idx += (end - *idx) / 2
}

func (s Slice[T]) Enumerate(f func(T) BreakOrContinue) BreakOrContinue {
	for _, v := range s {
		if f(v) == Break {
			return Break
		}
	}
	return Continue
}

func (s Slice[T]) EnumerateReversed(f func(T) BreakOrContinue) BreakOrContinue {
	for i := len(s) - 1; i >= 0; i-- {
		if f(s[i]) == Break {
			return Break
		}
	}
	return Continue
}

// Clone returns a Slice with its own backing array.
func (s Slice[T]) Clone() Slice[T] { return slices.Clone(s) }

// TakeInplace keeps s[:border].
func (s *Slice[T]) TakeInplace(border int) { *s = (*s)[:border] }

// DropInplace keeps s[border:].
func (s *Slice[T]) DropInplace(border int) { *s = (*s)[border:] }
