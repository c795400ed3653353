// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

import "container/list"

// List is a bidirectional range over a doubly linked list.
// Indices are list elements and nil is the end index. List has no distance,
// advance, middle point or callback fast path; generic algorithms reach them
// through the index protocol.
//
// Copies of a List share the same underlying list. Create Lists with
// [NewList]; the zero List is not usable.
type List[T any] struct {
	l *list.List
}

// NewList returns a List holding elems in order.
func NewList[T any](elems ...T) List[T] {
	l := List[T]{l: list.New()}
	for _, e := range elems {
		l.l.PushBack(e)
	}
	return l
}

// PushBack appends v.
func (r List[T]) PushBack(v T) { r.l.PushBack(v) }

// PushFront prepends v.
func (r List[T]) PushFront(v T) { r.l.PushFront(v) }

// Len returns the number of elements.
func (r List[T]) Len() int { return r.l.Len() }

func (r List[T]) BeginIndex() *list.Element { return r.l.Front() }

func (r List[T]) EndIndex() *list.Element { return nil }

func (r List[T]) AtEndIndex(idx *list.Element) bool { return idx == nil }

func (r List[T]) DereferenceIndex(idx *list.Element) T { return idx.Value.(T) }

func (r List[T]) IncrementIndex(idx **list.Element) {
	precondition(*idx != nil, "List.IncrementIndex")
	*idx = (*idx).Next()
}

// DecrementIndex steps back one element; the end index steps to the last
// element.
func (r List[T]) DecrementIndex(idx **list.Element) {
	if *idx == nil {
		*idx = r.l.Back()
	} else {
		*idx = (*idx).Prev()
	}
	precondition(*idx != nil, "List.DecrementIndex")
}

func (r List[T]) EqualIndex(lhs, rhs *list.Element) bool { return lhs == rhs }

// Clone returns a List with its own copy of the elements.
func (r List[T]) Clone() List[T] {
	c := List[T]{l: list.New()}
	c.l.PushBackList(r.l)
	return c
}
