package lanes

import (
	"math"
	"testing"
)

// Each comparison must agree lane-for-lane with the scalar operator.
func TestComparisonsMatchScalar(t *testing.T) {
	n := LaneCount[float32]()
	aData := make([]float32, n)
	bData := make([]float32, n)
	for i := range aData {
		aData[i] = float32(i % 3)
		bData[i] = float32((i + 1) % 3)
	}
	a := Load(aData, Unaligned)
	b := Load(bData, Unaligned)

	cases := []struct {
		name   string
		mask   Mask[float32]
		scalar func(x, y float32) bool
	}{
		{"Equal", Equal(a, b), func(x, y float32) bool { return x == y }},
		{"NotEqual", NotEqual(a, b), func(x, y float32) bool { return x != y }},
		{"LessThan", LessThan(a, b), func(x, y float32) bool { return x < y }},
		{"LessEqual", LessEqual(a, b), func(x, y float32) bool { return x <= y }},
		{"GreaterThan", GreaterThan(a, b), func(x, y float32) bool { return x > y }},
		{"GreaterEqual", GreaterEqual(a, b), func(x, y float32) bool { return x >= y }},
	}

	for _, tc := range cases {
		for i := 0; i < n; i++ {
			if tc.mask.At(i) != tc.scalar(aData[i], bData[i]) {
				t.Errorf("%s: lane %d: mask %v, scalar %v", tc.name, i, tc.mask.At(i), tc.scalar(aData[i], bData[i]))
			}
		}
	}
}

func TestComparisonWidthMatchesVector(t *testing.T) {
	a := Zero[int16]()
	b := One[int16]()
	k := LessThan(a, b)

	if k.NumLanes() != a.NumLanes() {
		t.Errorf("mask width %d, vector width %d", k.NumLanes(), a.NumLanes())
	}
	if !k.AllTrue() {
		t.Error("0 < 1 must select every lane")
	}
}

// NaN is unordered: every comparison except NotEqual yields false.
func TestComparisonsNaN(t *testing.T) {
	nan := Splat[float64](math.NaN())
	x := Splat[float64](1)

	if LessThan(nan, x).AnyTrue() || GreaterThan(nan, x).AnyTrue() || Equal(nan, x).AnyTrue() {
		t.Error("ordered comparison with NaN selected a lane")
	}
	if !NotEqual(nan, x).AllTrue() {
		t.Error("NaN != x must select every lane")
	}
}

func TestUnsignedOrdering(t *testing.T) {
	a := Splat[uint8](200)
	b := Splat[uint8](100)

	if !GreaterThan(a, b).AllTrue() {
		t.Error("200 > 100 must hold under unsigned ordering")
	}
}
