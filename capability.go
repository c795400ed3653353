// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

import (
	"fmt"
	"strings"
)

// Capability detection.
// Tier capabilities are fixed by a range's method set and enforced by
// constructor constraints at compile time. Optional capabilities are
// discovered through structural interface assertions, the same way a
// handler discovers dispatch methods on an operation.

// Capability is a set of index operations a range supports beyond the
// mandatory forward protocol.
type Capability uint16

const (
	CapDecrement Capability = 1 << iota
	CapEqual
	CapDistance
	CapAdvance
	CapMiddlePoint
	CapAddress
	CapEnumerate
	CapEnumerateReversed
	CapTrim
)

const (
	// CapBidirectional is the capability set required by Reverse.
	CapBidirectional = CapDecrement | CapEqual
	// CapRandomAccess is the capability set required by ReverseRandomAccess.
	CapRandomAccess = CapBidirectional | CapDistance | CapAdvance
)

var capabilityNames = [...]string{
	"decrement",
	"equal",
	"distance",
	"advance",
	"middle-point",
	"address",
	"enumerate",
	"enumerate-reversed",
	"trim",
}

// Has reports whether every capability in o is present in c.
func (c Capability) Has(o Capability) bool {
	return c&o == o
}

// String lists the capabilities joined by "|", or "forward" for the empty set.
func (c Capability) String() string {
	if c == 0 {
		return "forward"
	}
	var b strings.Builder
	for i, name := range capabilityNames {
		if c&(1<<i) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
	}
	return b.String()
}

// CapabilityReporter is implemented by adaptors whose optional capabilities
// are inherited from their base range. Adaptors define forwarding methods
// unconditionally, so their method set alone would over-report.
type CapabilityReporter interface {
	Capabilities() Capability
}

// as recovers capability T from the range stored at p.
// The stored value is tried first, so a pointer-typed or interface-typed R
// is inspected through its own method set; the address is tried second to
// pick up pointer-receiver methods of a value-typed R.
func as[T, R any](p *R) (T, bool) {
	if t, ok := any(*p).(T); ok {
		return t, true
	}
	t, ok := any(p).(T)
	return t, ok
}

func implements[T, R any](p *R) bool {
	_, ok := as[T](p)
	return ok
}

// capabilitiesOf computes the capability set of the range stored at p.
func capabilitiesOf[I, E, R any](p *R) Capability {
	if cr, ok := as[CapabilityReporter](p); ok {
		return cr.Capabilities()
	}
	var c Capability
	if implements[Decrementer[I]](p) {
		c |= CapDecrement
	}
	if implements[Equaler[I]](p) {
		c |= CapEqual
	}
	if implements[Distancer[I]](p) {
		c |= CapDistance
	}
	if implements[Advancer[I]](p) {
		c |= CapAdvance
	}
	if implements[Bisector[I]](p) {
		c |= CapMiddlePoint
	}
	if implements[Addresser[I, E]](p) {
		c |= CapAddress
	}
	if implements[Enumerator[E]](p) {
		c |= CapEnumerate
	}
	if implements[ReverseEnumerator[E]](p) {
		c |= CapEnumerateReversed
	}
	if implements[Trimmer[I]](p) {
		c |= CapTrim
	}
	return c
}

// Capabilities returns the capability set of r.
// Pointer-receiver capabilities are visible only when r holds a pointer.
func Capabilities[I, E any](r Range[I, E]) Capability {
	return capabilitiesOf[I, E](&r)
}

// Supports reports whether r provides every capability in c.
func Supports[I, E any](r Range[I, E], c Capability) bool {
	return Capabilities(r).Has(c)
}

// AsBidirectional upgrades r to the bidirectional tier.
// It returns an error wrapping [ErrNotBidirectional] when r lacks
// decrement or equality.
func AsBidirectional[I, E any](r Range[I, E]) (BidirectionalRange[I, E], error) {
	if b, ok := r.(BidirectionalRange[I, E]); ok {
		return b, nil
	}
	return nil, fmt.Errorf("%w: range provides %s", ErrNotBidirectional, Capabilities(r))
}

// AsRandomAccess upgrades r to the random-access tier.
// It returns an error wrapping [ErrNotRandomAccess] when r lacks any of
// decrement, equality, distance or advance.
func AsRandomAccess[I, E any](r Range[I, E]) (RandomAccessRange[I, E], error) {
	if ra, ok := r.(RandomAccessRange[I, E]); ok {
		return ra, nil
	}
	return nil, fmt.Errorf("%w: range provides %s", ErrNotRandomAccess, Capabilities(r))
}
