// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/rangex"
	"github.com/stretchr/testify/require"
)

func TestTransformForward(t *testing.T) {
	tr := rangex.Transform[int](forwardOnly{1, 2, 3}, strconv.Itoa)
	require.Equal(t, []string{"1", "2", "3"}, rangex.Collect[int, string](tr))
	require.Equal(t, []string{"1", "2", "3"}, walk[int, string](tr))
	require.Equal(t, rangex.Capability(0), rangex.Capabilities[int, string](tr))
}

func TestTransformBidirectional(t *testing.T) {
	neg := func(v int) int { return -v }
	tr := rangex.TransformBidirectional[int](bidiOnly{forwardOnly{1, 2, 3}}, neg)
	require.Equal(t, []int{-3, -2, -1}, walkBack[int, int](tr))

	var got []int
	res := rangex.ForEachReversed[int](tr, func(v int) rangex.BreakOrContinue {
		got = append(got, v)
		return rangex.Continue
	})
	require.Equal(t, rangex.Continue, res)
	require.Equal(t, []int{-3, -2, -1}, got)
	require.Equal(t, rangex.CapBidirectional, rangex.Capabilities[int, int](tr))
}

func TestTransformRandomAccess(t *testing.T) {
	sq := rangex.TransformRandomAccess[int](rangex.Slice[int]{1, 2, 3, 4}, func(v int) int { return v * v })
	require.Equal(t, 4, rangex.Size[int, int](sq))

	idx := sq.BeginIndex()
	sq.AdvanceIndex(&idx, 2)
	require.Equal(t, 9, sq.DereferenceIndex(idx))
	require.Equal(t, 2, sq.DistanceToIndex(idx, sq.EndIndex()))

	caps := rangex.Capabilities[int, int](sq)
	require.True(t, caps.Has(rangex.CapRandomAccess))
	require.True(t, caps.Has(rangex.CapMiddlePoint|rangex.CapEnumerate|rangex.CapEnumerateReversed))
	require.False(t, caps.Has(rangex.CapAddress), "mapped elements are not addressable")

	_, ok := rangex.AddressIndex[int, int](sq, 0)
	require.False(t, ok)
}

func TestTransformRefTrimsBase(t *testing.T) {
	s := rangex.Slice[int]{1, 2, 3, 4}
	tr := rangex.TransformRef[int](&s, strconv.Itoa)
	require.True(t, rangex.Supports[int, string](tr, rangex.CapTrim))

	tr.TakeInplace(3)
	tr.DropInplace(1)
	require.Equal(t, rangex.Slice[int]{2, 3}, s)
	require.Equal(t, []string{"2", "3"}, rangex.Collect[int, string](tr))
}

func TestTransformTrimWithoutTrimmerPanics(t *testing.T) {
	tr := rangex.Transform[int](forwardOnly{1, 2}, strconv.Itoa)
	require.PanicsWithValue(t, "rangex: Trim requires trim", func() {
		tr.TakeInplace(1)
	})
}

func TestTransformEarlyBreak(t *testing.T) {
	tr := rangex.Transform[int](rangex.Count(0, 100), func(v int) int { return v + 1 })
	var got []int
	res := rangex.ForEach[int](tr, func(v int) rangex.BreakOrContinue {
		got = append(got, v)
		return rangex.ContinueIf(v < 3)
	})
	require.Equal(t, rangex.Break, res)
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestTransformOfReverse(t *testing.T) {
	r := rangex.Reverse[int, int](rangex.Slice[int]{1, 2, 3})
	tr := rangex.TransformBidirectional[rix](r, strconv.Itoa)
	require.Equal(t, []string{"3", "2", "1"}, walk[rix, string](tr))
	require.Equal(t, []string{"1", "2", "3"}, walkBack[rix, string](tr))
}
