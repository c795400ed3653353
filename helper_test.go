// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex_test

import "code.hybscloud.com/rangex"

type rix = rangex.ReverseIndex[int]

// forwardOnly implements nothing beyond the forward protocol.
type forwardOnly []int

func (f forwardOnly) BeginIndex() int { return 0 }
func (f forwardOnly) EndIndex() int { return len(f) }
func (f forwardOnly) AtEndIndex(idx int) bool { return idx == len(f) }
func (f forwardOnly) DereferenceIndex(idx int) int { return f[idx] }
func (f forwardOnly) IncrementIndex(idx *int) { *idx++ }

// bidiOnly adds decrement and equality, and no fast path.
type bidiOnly struct{ forwardOnly }

func (b bidiOnly) DecrementIndex(idx *int) { *idx-- }
func (b bidiOnly) EqualIndex(lhs, rhs int) bool { return lhs == rhs }

// walk collects r through its index protocol only.
func walk[I, E any](r rangex.Range[I, E]) []E {
	var out []E
	for idx := r.BeginIndex(); !r.AtEndIndex(idx); r.IncrementIndex(&idx) {
		out = append(out, r.DereferenceIndex(idx))
	}
	return out
}

// walkBack collects r from end to begin through decrement.
func walkBack[I, E any](r rangex.BidirectionalRange[I, E]) []E {
	var out []E
	idx := r.EndIndex()
	for !r.EqualIndex(idx, r.BeginIndex()) {
		r.DecrementIndex(&idx)
		out = append(out, r.DereferenceIndex(idx))
	}
	return out
}

func reversed(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
