// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

import "unsafe"

// Memory is an aligned, fixed-length staging buffer of T. It exists for
// the cases where per-lane scalar construction logic is easier to write as
// a loop than as vector factories:
//
//	m := lanes.NewMemory[float32]()
//	for i := 0; i < m.Len(); i++ {
//	    m.Set(i, f(i))
//	}
//	v := m.VectorAt(0)
//
// The buffer always spans a whole number of vectors and its base address
// satisfies AlignBoundary, so VectorAt/SetVectorAt may use the Aligned
// path. Memory owns its buffer; there is no resizing and no sharing.
type Memory[T Entries] struct {
	buf []T
}

// NewMemory returns an aligned buffer holding exactly one vector of T.
func NewMemory[T Entries]() *Memory[T] {
	return NewMemoryN[T](LaneCount[T]())
}

// NewMemoryN returns an aligned buffer holding at least n entries of T,
// rounded up to a whole number of vectors.
func NewMemoryN[T Entries](n int) *Memory[T] {
	if n < 0 {
		n = 0
	}
	size := AlignedSize[T](n)
	return &Memory[T]{buf: allocAligned[T](size)}
}

// Len returns the number of entries, always a multiple of LaneCount[T]().
func (m *Memory[T]) Len() int {
	return len(m.buf)
}

// NumVectors returns the number of whole vectors the buffer holds.
func (m *Memory[T]) NumVectors() int {
	n := LaneCount[T]()
	if n == 0 {
		return 0
	}
	return len(m.buf) / n
}

// At returns entry i. Scalar access path; range is a caller obligation.
func (m *Memory[T]) At(i int) T {
	return m.buf[i]
}

// Set writes entry i. Scalar access path; range is a caller obligation.
func (m *Memory[T]) Set(i int, x T) {
	m.buf[i] = x
}

// Slice returns the whole buffer as a slice. The base address satisfies
// AlignBoundary, so the slice may be passed to Load/Store with Aligned.
func (m *Memory[T]) Slice() []T {
	return m.buf
}

// VectorAt loads the i-th vector-sized chunk.
func (m *Memory[T]) VectorAt(i int) Vector[T] {
	n := LaneCount[T]()
	return Load(m.buf[i*n:(i+1)*n], Aligned)
}

// SetVectorAt stores v into the i-th vector-sized chunk.
func (m *Memory[T]) SetVectorAt(i int, v Vector[T]) {
	n := LaneCount[T]()
	v.Store(m.buf[i*n:(i+1)*n], Aligned)
}

// AlignedSize rounds n up to the next multiple of LaneCount[T]().
func AlignedSize[T Entries](n int) int {
	lanes := LaneCount[T]()
	if lanes == 0 {
		return n
	}
	return ((n + lanes - 1) / lanes) * lanes
}

// IsSizeAligned reports whether n is a multiple of LaneCount[T]().
func IsSizeAligned[T Entries](n int) bool {
	lanes := LaneCount[T]()
	if lanes == 0 {
		return true
	}
	return n%lanes == 0
}

// allocAligned returns a slice of n entries of T whose base address is an
// AlignBoundary multiple. It over-allocates by one boundary and rounds the
// base address up; the enclosing array stays alive through the returned
// slice.
func allocAligned[T Entries](n int) []T {
	if n == 0 {
		return nil
	}
	var dummy T
	elemSize := int(unsafe.Sizeof(dummy))
	byteSize := n * elemSize

	buf := make([]byte, byteSize+AlignBoundary)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	offset := (AlignBoundary - (addr & (AlignBoundary - 1))) & (AlignBoundary - 1)
	base := buf[offset : offset+uintptr(byteSize)]

	return unsafe.Slice((*T)(unsafe.Pointer(&base[0])), n)
}
