package lanes

import (
	"testing"
	"unsafe"
)

func TestMemoryAlignment(t *testing.T) {
	m := NewMemoryN[float32](100)
	s := m.Slice()

	addr := uintptr(unsafe.Pointer(&s[0]))
	if addr%AlignBoundary != 0 {
		t.Errorf("base address %#x not on a %d-byte boundary", addr, AlignBoundary)
	}
}

func TestMemoryRoundsUp(t *testing.T) {
	n := LaneCount[float64]()
	m := NewMemoryN[float64](n + 1)

	if m.Len() != 2*n {
		t.Errorf("Len() = %d, want %d", m.Len(), 2*n)
	}
	if m.NumVectors() != 2 {
		t.Errorf("NumVectors() = %d, want 2", m.NumVectors())
	}
}

func TestMemoryDefaultWidth(t *testing.T) {
	m := NewMemory[int32]()
	if m.Len() != LaneCount[int32]() {
		t.Errorf("Len() = %d, want %d", m.Len(), LaneCount[int32]())
	}
	if m.NumVectors() != 1 {
		t.Errorf("NumVectors() = %d, want 1", m.NumVectors())
	}
}

// The staging pattern: populate scalar-wise, then bulk-load as a vector.
func TestMemoryScalarStaging(t *testing.T) {
	m := NewMemory[int32]()
	for i := 0; i < m.Len(); i++ {
		m.Set(i, int32(i*i))
	}

	v := m.VectorAt(0)
	for i := 0; i < v.NumLanes(); i++ {
		if v.At(i) != int32(i*i) {
			t.Errorf("staging: lane %d: got %v, want %d", i, v.At(i), i*i)
		}
	}
	if m.At(1) != 1 {
		t.Errorf("At(1) = %v, want 1", m.At(1))
	}
}

func TestMemoryVectorRoundTrip(t *testing.T) {
	m := NewMemoryN[float32](3 * LaneCount[float32]())
	v := Splat[float32](2.5)

	m.SetVectorAt(2, v)
	back := m.VectorAt(2)
	for i := 0; i < back.NumLanes(); i++ {
		if back.At(i) != 2.5 {
			t.Errorf("vector round trip: lane %d: got %v", i, back.At(i))
		}
	}
	// Preceding chunks must stay zero.
	if m.At(0) != 0 {
		t.Errorf("chunk 0 disturbed: %v", m.At(0))
	}
}

func TestAlignedSize(t *testing.T) {
	n := LaneCount[float32]()

	if got := AlignedSize[float32](1); got != n {
		t.Errorf("AlignedSize(1) = %d, want %d", got, n)
	}
	if got := AlignedSize[float32](n); got != n {
		t.Errorf("AlignedSize(n) = %d, want %d", got, n)
	}
	if got := AlignedSize[float32](n + 1); got != 2*n {
		t.Errorf("AlignedSize(n+1) = %d, want %d", got, 2*n)
	}
}

func TestIsSizeAligned(t *testing.T) {
	n := LaneCount[int64]()
	if !IsSizeAligned[int64](2 * n) {
		t.Error("2n must be size-aligned")
	}
	if IsSizeAligned[int64](n + 1) {
		t.Error("n+1 must not be size-aligned")
	}
}

func TestMemoryZeroLength(t *testing.T) {
	m := NewMemoryN[float32](0)
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}
