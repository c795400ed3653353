// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex_test

import (
	"slices"
	"sort"
	"testing"

	"code.hybscloud.com/rangex"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func drawSlice(t *rapid.T) rangex.Slice[int] {
	return rangex.Slice[int](rapid.SliceOf(rapid.IntRange(-1000, 1000)).Draw(t, "s"))
}

// --- Reverse laws ---

// TestPropertyReverseOrder: Reverse(x) visits x back to front.
func TestPropertyReverseOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawSlice(t)
		r := rangex.Reverse[int, int](s)
		want := reversed(s)
		if diff := cmp.Diff(want, walk[rix, int](r), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("index walk (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want, rangex.Collect[rix, int](r), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("enumerate (-want +got):\n%s", diff)
		}
	})
}

// TestPropertyReverseInvolution: Reverse(Reverse(x)) ≡ x
func TestPropertyReverseInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawSlice(t)
		rr := rangex.Reverse[rix, int](rangex.Reverse[int, int](s))
		got := walk[rangex.ReverseIndex[rix], int](rr)
		if diff := cmp.Diff([]int(s), got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("(-want +got):\n%s", diff)
		}
	})
}

// TestPropertyReverseDistance: distance(begin, end) ≡ size(x)
func TestPropertyReverseDistance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawSlice(t)
		r := rangex.ReverseRandomAccess[int, int](s)
		if d := r.DistanceToIndex(r.BeginIndex(), r.EndIndex()); d != len(s) {
			t.Fatalf("distance = %d, want %d", d, len(s))
		}
		if r.EqualIndex(r.BeginIndex(), r.EndIndex()) != (len(s) == 0) {
			t.Fatalf("begin == end disagrees with emptiness for len %d", len(s))
		}
	})
}

// TestPropertyReverseAdvance: advance(advance(i, k), -k) ≡ i and
// advance(begin, k) ≡ k increments.
func TestPropertyReverseAdvance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawSlice(t)
		r := rangex.ReverseRandomAccess[int, int](s)
		from := rapid.IntRange(0, len(s)).Draw(t, "from")
		k := rapid.IntRange(0, len(s)-from).Draw(t, "k")

		start := r.BeginIndex()
		r.AdvanceIndex(&start, from)
		stepped := start
		for range k {
			r.IncrementIndex(&stepped)
		}
		jumped := start
		r.AdvanceIndex(&jumped, k)
		if !r.EqualIndex(jumped, stepped) {
			t.Fatalf("advance %d from %d: %v, want %v", k, from, jumped, stepped)
		}
		if d := r.DistanceToIndex(start, jumped); d != k {
			t.Fatalf("distance after advance = %d, want %d", d, k)
		}
		r.AdvanceIndex(&jumped, -k)
		if !r.EqualIndex(jumped, start) {
			t.Fatalf("advance %d then %d from %d: %v, want %v", k, -k, from, jumped, start)
		}
	})
}

// TestPropertyReverseBreak: breaking after n elements reports Break and
// visits exactly the first n reversed elements.
func TestPropertyReverseBreak(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawSlice(t)
		n := rapid.IntRange(1, len(s)+1).Draw(t, "n")
		var seen []int
		res := rangex.ForEach[rix](rangex.Reverse[int, int](s), func(v int) rangex.BreakOrContinue {
			seen = append(seen, v)
			return rangex.ContinueIf(len(seen) < n)
		})
		want := reversed(s)
		wantRes := rangex.Continue
		if n <= len(s) {
			want = want[:n]
			wantRes = rangex.Break
		}
		if res != wantRes {
			t.Fatalf("got %v, want %v", res, wantRes)
		}
		if diff := cmp.Diff(want, seen, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("(-want +got):\n%s", diff)
		}
	})
}

// --- Composition laws ---

// TestPropertyTransformCommutesWithReverse: Reverse(Transform(x, f)) ≡ Transform(Reverse(x), f)
func TestPropertyTransformCommutesWithReverse(t *testing.T) {
	double := func(v int) int { return 2 * v }
	rapid.Check(t, func(t *rapid.T) {
		s := drawSlice(t)
		outer := rangex.Reverse[int, int](rangex.TransformBidirectional[int](s, double))
		inner := rangex.TransformBidirectional[rix](rangex.Reverse[int, int](s), double)
		a := rangex.Collect[rix, int](outer)
		b := rangex.Collect[rix, int](inner)
		if diff := cmp.Diff(a, b, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("(-outer +inner):\n%s", diff)
		}
		if len(a) != len(s) {
			t.Fatalf("length %d, want %d", len(a), len(s))
		}
	})
}

// TestPropertyFilterCommutesWithReverse: Reverse(Filter(x, p)) ≡ Filter(Reverse(x), p)
func TestPropertyFilterCommutesWithReverse(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	rapid.Check(t, func(t *rapid.T) {
		s := drawSlice(t)
		var want []int
		for _, v := range slices.Backward(s) {
			if even(v) {
				want = append(want, v)
			}
		}
		outer := rangex.Reverse[int, int](rangex.FilterBidirectional[int](s, even))
		inner := rangex.FilterBidirectional[rix](rangex.Reverse[int, int](s), even)
		if diff := cmp.Diff(want, walk[rix, int](outer), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("reverse of filter (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want, rangex.Collect[rix, int](inner), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("filter of reverse (-want +got):\n%s", diff)
		}
	})
}

// --- Algorithms ---

// TestPropertyPartitionPoint: PartitionPoint over Reverse(descending)
// agrees with sort.SearchInts over the ascending copy.
func TestPropertyPartitionPoint(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		asc := slices.Sorted(slices.Values(drawSlice(t)))
		x := rapid.IntRange(-1100, 1100).Draw(t, "x")
		r := rangex.ReverseRandomAccess[int, int](rangex.Slice[int](reversed(asc)))

		idx := rangex.PartitionPoint[rix, int](r, func(v int) bool { return v < x })
		got := r.DistanceToIndex(r.BeginIndex(), idx)
		if want := sort.SearchInts(asc, x); got != want {
			t.Fatalf("partition point %d, want %d (x=%d, asc=%v)", got, want, x, asc)
		}
	})
}

// TestPropertyReverseCapabilities: Reverse forwards the optional
// capabilities of its base and swaps the enumeration fast paths.
func TestPropertyReverseCapabilities(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawSlice(t)
		base := rangex.Capabilities[int, int](&s)
		got := rangex.Capabilities[rix, int](rangex.ReverseRef[int, int](&s))
		forwarded := rangex.CapMiddlePoint | rangex.CapAddress | rangex.CapTrim
		if got&forwarded != base&forwarded {
			t.Fatalf("forwarded %v, base %v", got&forwarded, base&forwarded)
		}
		if got.Has(rangex.CapEnumerate) != base.Has(rangex.CapEnumerateReversed) {
			t.Fatalf("enumeration fast paths not swapped: %v", got)
		}
	})
}
