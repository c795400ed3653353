// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// Early-exit protocol for callback enumeration.
// A callback returns Continue to request the next element or Break to stop.
// Every enumeration entry point reports which of the two ended it.

// BreakOrContinue is the signal returned by enumeration callbacks.
type BreakOrContinue uint8

const (
	// Break stops the enumeration.
	Break BreakOrContinue = iota
	// Continue requests the next element.
	Continue
)

// String returns "break" or "continue".
func (s BreakOrContinue) String() string {
	if s == Continue {
		return "continue"
	}
	return "break"
}

// ContinueIf returns Continue when cond holds and Break otherwise.
func ContinueIf(cond bool) BreakOrContinue {
	if cond {
		return Continue
	}
	return Break
}

// Continuing lifts a callback without a signal into one that always
// continues. Use it to pass plain element visitors to [ForEach].
//
// Example:
//
//	var sum int
//	rangex.ForEach[int](rangex.Slice[int]{1, 2, 3}, rangex.Continuing(func(v int) {
//	    sum += v
//	}))
func Continuing[E any](f func(E)) func(E) BreakOrContinue {
	return func(e E) BreakOrContinue {
		f(e)
		return Continue
	}
}

// yieldSignal adapts an iter.Seq yield function to the callback protocol.
func yieldSignal[E any](yield func(E) bool) func(E) BreakOrContinue {
	return func(e E) BreakOrContinue {
		return ContinueIf(yield(e))
	}
}
