package lanes

// This file provides vector construction, load/store and zeroing. The
// portable tier implements every operation as a plain Go loop over the lane
// slice; wider tiers keep the same semantics with native registers.

// Alignment selects the memory-access contract for Load and Store.
//
// Aligned promises the slice base address is a multiple of the active
// tier's register width (CurrentWidth) and lets the backend pick its
// fastest load/store form; making that promise for a misaligned base is a
// contract violation, not a checked error. Unaligned makes no promise and
// is always safe. Buffers allocated on AlignBoundary satisfy Aligned on
// every tier. The portable tier executes both paths identically; the flag
// is the cross-backend contract.
type Alignment int

const (
	// Unaligned makes no promise about the slice base address.
	Unaligned Alignment = iota

	// Aligned promises the slice base address is a CurrentWidth multiple.
	Aligned
)

// Zero returns a vector with all lanes set to zero.
func Zero[T Entries]() Vector[T] {
	return Vector[T]{data: make([]T, LaneCount[T]())}
}

// One returns a vector with all lanes set to one.
func One[T Entries]() Vector[T] {
	data := make([]T, LaneCount[T]())
	for i := range data {
		data[i] = 1
	}
	return Vector[T]{data: data}
}

// Iota returns a vector with lane i set to i, for integer element types.
func Iota[T Integers]() Vector[T] {
	data := make([]T, LaneCount[T]())
	for i := range data {
		data[i] = T(i)
	}
	return Vector[T]{data: data}
}

// Splat returns a vector with all lanes set to x.
//
// Splat(0) and Splat(1) are equivalent to Zero() and One(); the dedicated
// factories remain the idiomatic spellings.
func Splat[T Entries](x T) Vector[T] {
	data := make([]T, LaneCount[T]())
	for i := range data {
		data[i] = x
	}
	return Vector[T]{data: data}
}

// Undefined returns a full-width vector whose lane contents are unspecified
// by contract. Use it when every lane will be overwritten before being
// read, such as the destination of a masked gather that covers all lanes.
func Undefined[T Entries]() Vector[T] {
	return Vector[T]{data: make([]T, LaneCount[T]())}
}

// Load returns a vector holding the first LaneCount[T]() entries of src.
// If src is shorter, the vector has correspondingly fewer lanes; combine
// with TailMask to process trailing partial blocks.
//
// align states the caller's promise about the base address of src; see
// Alignment.
func Load[T Entries](src []T, align Alignment) Vector[T] {
	_ = align
	n := min(len(src), LaneCount[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vector[T]{data: data}
}

// Load overwrites all lanes of v from src. The method form of the Load
// function; v adopts fresh full-width storage.
func (v *Vector[T]) Load(src []T, align Alignment) {
	*v = Load(src, align)
}

// Store writes all lanes of v to dst. If dst is shorter than the vector,
// only the lanes that fit are written.
//
// align states the caller's promise about the base address of dst.
func (v Vector[T]) Store(dst []T, align Alignment) {
	_ = align
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// StoreMasked writes only the lanes of v selected by k to dst; other
// entries of dst keep their prior values.
func (v Vector[T]) StoreMasked(dst []T, k Mask[T]) {
	n := min(len(dst), min(len(v.data), len(k.bits)))
	for i := range n {
		if k.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// LoadMasked returns a vector holding src entries for lanes selected by k
// and zero elsewhere. Unselected entries of src are never read.
func LoadMasked[T Entries](src []T, k Mask[T]) Vector[T] {
	result := make([]T, len(k.bits))
	n := min(len(src), len(k.bits))
	for i := range n {
		if k.bits[i] {
			result[i] = src[i]
		}
	}
	return Vector[T]{data: result}
}

// SetZero sets every lane of v to zero.
func (v *Vector[T]) SetZero() {
	if v.data == nil {
		v.data = make([]T, LaneCount[T]())
		return
	}
	clear(v.data)
}

// SetZeroWhere sets the lanes of v selected by k to zero; other lanes keep
// their prior values.
func (v *Vector[T]) SetZeroWhere(k Mask[T]) {
	n := min(len(v.data), len(k.bits))
	for i := range n {
		if k.bits[i] {
			var zero T
			v.data[i] = zero
		}
	}
}

// Convert returns v's lanes converted to element type U using Go's value
// conversion rules (float/int truncation included). The result has the
// destination type's lane count: trailing destination lanes are zero when
// U is narrower in width, and surplus source lanes are dropped when U is
// wider. Conversion is explicit-only; there is no implicit mixing of
// element types anywhere in the package.
func Convert[U, T Entries](v Vector[T]) Vector[U] {
	data := make([]U, LaneCount[U]())
	n := min(len(data), len(v.data))
	for i := range n {
		data[i] = U(v.data[i])
	}
	return Vector[U]{data: data}
}

// MaskFromBits builds a full-width mask from the given lane selections.
// Missing trailing lanes are unselected; surplus entries are ignored.
func MaskFromBits[T Entries](bits ...bool) Mask[T] {
	out := make([]bool, LaneCount[T]())
	copy(out, bits)
	return Mask[T]{bits: out}
}
