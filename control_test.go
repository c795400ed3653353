// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex_test

import (
	"testing"

	"code.hybscloud.com/rangex"
)

func TestBreakOrContinue(t *testing.T) {
	var zero rangex.BreakOrContinue
	if zero != rangex.Break {
		t.Fatalf("zero value = %v, want break", zero)
	}
	if got := rangex.ContinueIf(true); got != rangex.Continue {
		t.Fatalf("ContinueIf(true) = %v", got)
	}
	if got := rangex.ContinueIf(false); got != rangex.Break {
		t.Fatalf("ContinueIf(false) = %v", got)
	}
	if rangex.Break.String() != "break" || rangex.Continue.String() != "continue" {
		t.Fatalf("String: %q %q", rangex.Break.String(), rangex.Continue.String())
	}
}

func TestContinuingVisitsAll(t *testing.T) {
	sum := 0
	res := rangex.ForEach[int](rangex.Slice[int]{1, 2, 3}, rangex.Continuing(func(v int) {
		sum += v
	}))
	if res != rangex.Continue || sum != 6 {
		t.Fatalf("got %v sum=%d, want continue sum=6", res, sum)
	}
}

func TestForEachBreakThroughAdaptors(t *testing.T) {
	// Reverse of a transform of a filter, all on fast paths.
	f := rangex.FilterBidirectional[int](rangex.Count(0, 20), func(v int) bool { return v%3 == 0 })
	tr := rangex.TransformBidirectional[int](f, func(v int) int { return v * 10 })
	r := rangex.Reverse[int, int](tr)

	var seen []int
	res := rangex.ForEach[rix](r, func(v int) rangex.BreakOrContinue {
		seen = append(seen, v)
		return rangex.ContinueIf(len(seen) < 2)
	})
	if res != rangex.Break {
		t.Fatalf("got %v, want break", res)
	}
	if len(seen) != 2 || seen[0] != 180 || seen[1] != 150 {
		t.Fatalf("seen %v, want [180 150]", seen)
	}
}
