// Package lanes provides a portable fixed-width data-parallel vector type.
//
// A Vector[T] holds a fixed number of scalar lanes of a numeric element
// type. The lane count is determined once per process by the detected
// hardware width (see LaneCount) and is identical for every Vector[T] of
// the same element type, so numeric code written against this package runs
// unchanged across 128/256/512-bit targets.
//
// Basic usage:
//
//	a := lanes.Load(data1, lanes.Unaligned)
//	b := lanes.Load(data2, lanes.Unaligned)
//
//	sum := lanes.Add(a, b)
//
//	k := lanes.LessThan(sum, lanes.Splat[float32](100))
//	sum.Where(k).Add(lanes.One[float32]())
//
//	sum.Store(out, lanes.Unaligned)
//
// The package trades safety for throughput: lane indexes, alignment claims
// and gather/scatter offsets are caller obligations and are not checked on
// the hot path. The lanes/debug package provides opt-in checked variants.
package lanes

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Entries is the constraint for all types a Vector lane can hold.
type Entries interface {
	Floats | Integers
}

// Indexes is the constraint for index-vector element types used by gather
// and scatter. Only unsigned types qualify; inactive lanes of a masked
// gather/scatter may hold arbitrary bit patterns without consequence.
type Indexes interface {
	~uint32 | ~uint64
}

// Vector is a fixed-width vector of Size lanes of T, where Size is
// LaneCount[T]() for the process. It is a value type: copies duplicate all
// lanes, operations return fresh vectors, and no state is shared between
// instances.
//
// The zero value is an uninitialized vector of width zero; overwrite it
// (Load, Zero, Splat, ...) before reading. Use Undefined to allocate full
// width when the initial contents do not matter.
type Vector[T Entries] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
// A zero-value Vector reports 0 until it is assigned.
func (v Vector[T]) NumLanes() int {
	return len(v.data)
}

// At returns a copy of lane i. The range [0, NumLanes) is a caller
// obligation; out-of-range indexes fault.
func (v Vector[T]) At(i int) T {
	return v.data[i]
}

// SetAt writes x into lane i. This is the single-lane scalar write path;
// use Where for mask-directed multi-lane writes.
func (v *Vector[T]) SetAt(i int, x T) {
	v.data[i] = x
}

// Clone returns a full duplicate of v with its own lane storage.
func (v Vector[T]) Clone() Vector[T] {
	data := make([]T, len(v.data))
	copy(data, v.data)
	return Vector[T]{data: data}
}

// Slice returns the underlying lane storage. This is primarily for tests
// and diagnostics; mutating the returned slice mutates the vector.
func (v Vector[T]) Slice() []T {
	return v.data
}

// Mask is a per-lane boolean vector. Masks are produced by comparisons,
// MaskFromBits or TailMask, and consumed by masked operations. A Mask is
// width-paired with the Vector type it was derived from; the pairing is
// carried in the type parameter, so mixing element types is a compile
// error.
type Mask[T Entries] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// At reports whether lane i is selected.
func (m Mask[T]) At(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// AllTrue reports whether every lane is selected.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane is selected.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of selected lanes.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// FirstTrue returns the lowest selected lane, or -1 if none is selected.
func (m Mask[T]) FirstTrue() int {
	for i, bit := range m.bits {
		if bit {
			return i
		}
	}
	return -1
}
