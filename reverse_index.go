// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// ReverseIndex is the index of a reversed range: either the sentinel that
// marks the reversed end, or a base index holding the current element.
// The zero value is the sentinel.
type ReverseIndex[I any] struct {
	held bool
	base I
}

// Sentinel returns the reversed end index.
func Sentinel[I any]() ReverseIndex[I] {
	return ReverseIndex[I]{}
}

// Held returns a reversed index positioned on base element idx.
func Held[I any](idx I) ReverseIndex[I] {
	return ReverseIndex[I]{held: true, base: idx}
}

// IsSentinel returns true if this is the reversed end.
func (x ReverseIndex[I]) IsSentinel() bool {
	return !x.held
}

// Base returns the held base index and true, or zero and false for the
// sentinel.
func (x ReverseIndex[I]) Base() (I, bool) {
	return x.base, x.held
}

// MatchReverseIndex pattern matches on x, calling onSentinel or onHeld.
func MatchReverseIndex[I, T any](x ReverseIndex[I], onSentinel func() T, onHeld func(I) T) T {
	if x.held {
		return onHeld(x.base)
	}
	return onSentinel()
}
