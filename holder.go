// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// Ownership of wrapped ranges.
// An adaptor either owns a private copy of its base range or borrows a
// range the caller keeps. Borrowing shares the caller's range, so in-place
// operations such as trimming act on it; owning isolates the adaptor from
// later reassignment of the caller's variable.

// RefOrValue holds a range of type R either by value or by reference.
// The zero value owns the zero R.
type RefOrValue[R any] struct {
	ref *R
	val R
}

// Own creates a holder that stores a copy of r.
func Own[R any](r R) RefOrValue[R] {
	return RefOrValue[R]{val: r}
}

// Borrow creates a holder that refers to *r.
// The caller keeps *r alive and unchanged in shape while the holder is used.
func Borrow[R any](r *R) RefOrValue[R] {
	if r == nil {
		panic("rangex: borrow of nil range")
	}
	return RefOrValue[R]{ref: r}
}

// IsOwned reports whether the holder stores its own copy.
func (h *RefOrValue[R]) IsOwned() bool {
	return h.ref == nil
}

// Get returns the held range regardless of storage mode.
func (h *RefOrValue[R]) Get() *R {
	if h.ref != nil {
		return h.ref
	}
	return &h.val
}

// Take extracts the held range.
// An owned range is moved out and the holder reset to the zero R;
// a borrowed range is copied and left in place.
func (h *RefOrValue[R]) Take() R {
	if h.ref != nil {
		return *h.ref
	}
	r := h.val
	var zero R
	h.val = zero
	return r
}

// Clone returns an independent copy of the held range.
// Ranges implementing [Cloner] produce the copy themselves; any other range
// is copied by assignment.
func (h *RefOrValue[R]) Clone() R {
	if c, ok := as[Cloner[R]](h.Get()); ok {
		return c.Clone()
	}
	return *h.Get()
}
