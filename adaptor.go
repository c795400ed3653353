// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// Adaptor is the common base of every range adaptor.
// It holds exactly one base range and gives access to it; it defines no
// index operation. An embedding adaptor decides per operation whether to
// redefine it, forward it unchanged, or leave it out.
type Adaptor[R any] struct {
	base RefOrValue[R]
}

func newAdaptor[R any](h RefOrValue[R]) Adaptor[R] {
	return Adaptor[R]{base: h}
}

// BaseRange returns the base range for mutation.
func (a *Adaptor[R]) BaseRange() *R {
	return a.base.Get()
}

// BaseRangeValue returns a copy of the base range for reading.
func (a *Adaptor[R]) BaseRangeValue() R {
	return *a.base.Get()
}

// TakeBaseRange extracts the base range, moving it out when owned.
// An adaptor whose owned base was taken must not be traversed again.
func (a *Adaptor[R]) TakeBaseRange() R {
	return a.base.Take()
}

// CloneBaseRange returns an independent copy of the base range.
func (a *Adaptor[R]) CloneBaseRange() R {
	return a.base.Clone()
}

// OwnsBaseRange reports whether the adaptor stores its own copy of the base.
func (a *Adaptor[R]) OwnsBaseRange() bool {
	return a.base.IsOwned()
}
