package lanes

// Mask combination and construction helpers. Masks combine lane-wise like
// vectors do; widths are paired through the element type parameter.

// MaskAnd returns the lane-wise conjunction of two masks.
func MaskAnd[T Entries](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskOr returns the lane-wise disjunction of two masks.
func MaskOr[T Entries](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskXor returns the lane-wise exclusive-or of two masks.
func MaskXor[T Entries](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] != b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskAndNot returns the lane-wise !a && b.
func MaskAndNot[T Entries](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = !a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskNot returns the lane-wise complement of a mask.
func MaskNot[T Entries](m Mask[T]) Mask[T] {
	bits := make([]bool, len(m.bits))
	for i, bit := range m.bits {
		bits[i] = !bit
	}
	return Mask[T]{bits: bits}
}

// TailMask returns a full-width mask selecting the first count lanes.
// This is the standard way to process the tail of a slice whose length is
// not a multiple of the vector width:
//
//	n := lanes.LaneCount[float32]()
//	rem := len(data) % n
//	if rem > 0 {
//	    k := lanes.TailMask[float32](rem)
//	    v := lanes.LoadMasked(data[len(data)-rem:], k)
//	    // ... process ...
//	    v.StoreMasked(out[len(out)-rem:], k)
//	}
func TailMask[T Entries](count int) Mask[T] {
	n := LaneCount[T]()
	if count < 0 {
		count = 0
	}
	if count > n {
		count = n
	}
	bits := make([]bool, n)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// IfThenElse returns a vector selecting lanes from a where the mask is set
// and from b elsewhere. This is the blend primitive every masked write in
// the package reduces to.
func IfThenElse[T Entries](k Mask[T], a, b Vector[T]) Vector[T] {
	n := min(len(b.data), min(len(a.data), len(k.bits)))
	result := make([]T, n)
	for i := range n {
		if k.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vector[T]{data: result}
}
