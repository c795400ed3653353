// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// Cursor boundary.
// A Cursor pairs a range with one index and steps it one element at a
// time, for callers that drive a traversal from outside instead of handing
// the range a callback.

// Cursor is a movable position in a range.
//
// Usage:
//
//	for c := rangex.NewCursor(r); c.Valid(); c.Next() {
//	    v := c.Value()
//	    // process v
//	}
type Cursor[I, E any] struct {
	r   Range[I, E]
	idx I
}

// NewCursor returns a cursor at the begin index of r.
func NewCursor[I, E any](r Range[I, E]) *Cursor[I, E] {
	return &Cursor[I, E]{r: r, idx: r.BeginIndex()}
}

// Valid reports whether the cursor is positioned on an element.
func (c *Cursor[I, E]) Valid() bool {
	return !c.r.AtEndIndex(c.idx)
}

// Index returns the current index.
func (c *Cursor[I, E]) Index() I {
	return c.idx
}

// Value returns the element at the cursor.
// Behavior is undefined if Valid returns false.
func (c *Cursor[I, E]) Value() E {
	precondition(c.Valid(), "Cursor.Value")
	return c.r.DereferenceIndex(c.idx)
}

// Ref returns a pointer to the element at the cursor, or false when the
// range is not addressable.
func (c *Cursor[I, E]) Ref() (*E, bool) {
	precondition(c.Valid(), "Cursor.Ref")
	return addressIndex[I, E](&c.r, c.idx)
}

// Next advances the cursor and reports whether it is on an element.
// Behavior is undefined if Valid returns false.
func (c *Cursor[I, E]) Next() bool {
	precondition(c.Valid(), "Cursor.Next")
	c.r.IncrementIndex(&c.idx)
	return c.Valid()
}

// Prev moves the cursor back one element. It returns false, leaving the
// cursor in place, when the cursor is already at the begin index.
// It panics if the range does not implement [Decrementer] and [Equaler].
func (c *Cursor[I, E]) Prev() bool {
	if equalIndex[I](&c.r, c.idx, c.r.BeginIndex()) {
		return false
	}
	dec, ok := as[Decrementer[I]](&c.r)
	if !ok {
		missingCapability("Cursor.Prev", CapDecrement)
	}
	dec.DecrementIndex(&c.idx)
	return true
}

// Seek positions the cursor at idx.
func (c *Cursor[I, E]) Seek(idx I) {
	c.idx = idx
}

// SeekFirst positions the cursor at the begin index and reports whether it
// is on an element.
func (c *Cursor[I, E]) SeekFirst() bool {
	c.idx = c.r.BeginIndex()
	return c.Valid()
}

// SeekLast positions the cursor at the last element and reports whether the
// range is non-empty. It panics if the range does not implement
// [Decrementer] and [Equaler].
func (c *Cursor[I, E]) SeekLast() bool {
	c.idx = c.r.EndIndex()
	return c.Prev()
}
