package lanes

import "testing"

func TestWhereSet(t *testing.T) {
	n := LaneCount[float32]()
	v := Splat[float32](1)
	x := Splat[float32](9)
	k := TailMask[float32](n / 2)

	v.Where(k).Set(x)
	for i := 0; i < n; i++ {
		want := float32(1)
		if k.At(i) {
			want = 9
		}
		if v.At(i) != want {
			t.Errorf("Where.Set: lane %d: got %v, want %v", i, v.At(i), want)
		}
	}
}

func TestWhereAdd(t *testing.T) {
	n := LaneCount[int32]()
	v := Splat[int32](10)
	k := TailMask[int32](n - 1)

	v.Where(k).Add(Splat[int32](5))
	for i := 0; i < n; i++ {
		want := int32(10)
		if k.At(i) {
			want = 15
		}
		if v.At(i) != want {
			t.Errorf("Where.Add: lane %d: got %v, want %v", i, v.At(i), want)
		}
	}
}

func TestWhereSubMulDiv(t *testing.T) {
	n := LaneCount[float64]()
	k := TailMask[float64](n / 2)

	v := Splat[float64](12)
	v.Where(k).Sub(Splat[float64](2))
	for i := 0; i < n; i++ {
		want := 12.0
		if k.At(i) {
			want = 10
		}
		if v.At(i) != want {
			t.Errorf("Where.Sub: lane %d: got %v, want %v", i, v.At(i), want)
		}
	}

	v = Splat[float64](3)
	v.Where(k).Mul(Splat[float64](4))
	for i := 0; i < n; i++ {
		want := 3.0
		if k.At(i) {
			want = 12
		}
		if v.At(i) != want {
			t.Errorf("Where.Mul: lane %d: got %v, want %v", i, v.At(i), want)
		}
	}

	v = Splat[float64](8)
	v.Where(k).Div(Splat[float64](2))
	for i := 0; i < n; i++ {
		want := 8.0
		if k.At(i) {
			want = 4
		}
		if v.At(i) != want {
			t.Errorf("Where.Div: lane %d: got %v, want %v", i, v.At(i), want)
		}
	}
}

func TestWhereSetZero(t *testing.T) {
	n := LaneCount[int32]()
	v := Splat[int32](7)
	k := TailMask[int32](1)

	v.Where(k).SetZero()
	if v.At(0) != 0 {
		t.Errorf("Where.SetZero: lane 0 = %v, want 0", v.At(0))
	}
	for i := 1; i < n; i++ {
		if v.At(i) != 7 {
			t.Errorf("Where.SetZero: lane %d disturbed: %v", i, v.At(i))
		}
	}
}

// The canonical scenario: v = {1,2,3,4,...}, k = v < 3, v.Where(k) += 10
// leaves lanes >= 3 untouched and bumps the rest.
func TestWhereScenario(t *testing.T) {
	v := Add(Iota[int32](), One[int32]()) // {1, 2, 3, 4, ...}
	k := LessThan(v, Splat[int32](3))     // {T, T, F, F, ...}

	if !k.At(0) || !k.At(1) || k.At(2) || k.At(3) {
		t.Fatalf("mask: got %v %v %v %v, want T T F F", k.At(0), k.At(1), k.At(2), k.At(3))
	}

	v.Where(k).Add(Splat[int32](10))
	want := []int32{11, 12, 3, 4}
	for i := 0; i < min(4, v.NumLanes()); i++ {
		if v.At(i) != want[i] {
			t.Errorf("scenario: lane %d: got %v, want %v", i, v.At(i), want[i])
		}
	}
	for i := 4; i < v.NumLanes(); i++ {
		if v.At(i) != int32(i+1) {
			t.Errorf("scenario: lane %d: got %v, want %v", i, v.At(i), i+1)
		}
	}
}
