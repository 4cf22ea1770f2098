package lanes

// Gather and scatter move lanes between a vector and memory addressed
// indirectly through an index vector. Three addressing shapes are
// supported: a flat slice, one struct-field level (Field variants) and two
// struct-field levels (Field2 variants), the field being located by an
// accessor function rather than a field offset.
//
// Index vectors are unsigned and may be wider than the data vector (for
// example a Vector[uint32] paired with a Vector[float64]); only the first
// LaneCount-of-result index lanes are consumed.
//
// Range checking is deliberately absent: an out-of-range index on an
// active lane is a caller contract violation and faults with the runtime's
// native bounds panic. Lanes excluded by a mask are never dereferenced, so
// they may carry arbitrary or stale indexes, typically leftovers of a
// boundary computation. The lanes/debug package offers checked variants.

// Gather returns a vector with lane i loaded from src[idx[i]].
func Gather[T Entries, I Indexes](src []T, idx Vector[I]) Vector[T] {
	n := min(LaneCount[T](), len(idx.data))
	result := make([]T, n)
	for i := range n {
		result[i] = src[idx.data[i]]
	}
	return Vector[T]{data: result}
}

// GatherMasked loads src[idx[i]] into dst's lane i for every lane selected
// by k; unselected lanes of dst keep their prior values and their indexes
// are never dereferenced.
func GatherMasked[T Entries, I Indexes](dst *Vector[T], src []T, idx Vector[I], k Mask[T]) {
	n := min(len(dst.data), min(len(idx.data), len(k.bits)))
	for i := range n {
		if k.bits[i] {
			dst.data[i] = src[idx.data[i]]
		}
	}
}

// Scatter stores lane i of v to dst[idx[i]]. When indexes collide, the
// highest colliding lane wins, matching hardware scatter ordering.
func Scatter[T Entries, I Indexes](v Vector[T], dst []T, idx Vector[I]) {
	n := min(len(v.data), len(idx.data))
	for i := range n {
		dst[idx.data[i]] = v.data[i]
	}
}

// ScatterMasked stores lane i of v to dst[idx[i]] for every lane selected
// by k; unselected lanes write nothing and their indexes are never
// dereferenced.
func ScatterMasked[T Entries, I Indexes](v Vector[T], dst []T, idx Vector[I], k Mask[T]) {
	n := min(len(v.data), min(len(idx.data), len(k.bits)))
	for i := range n {
		if k.bits[i] {
			dst[idx.data[i]] = v.data[i]
		}
	}
}

// GatherField returns a vector with lane i loaded from
// field(&objs[idx[i]]). The accessor locates one scalar field inside the
// addressed struct; it must not capture or retain the pointer.
func GatherField[S any, T Entries, I Indexes](objs []S, field func(*S) *T, idx Vector[I]) Vector[T] {
	n := min(LaneCount[T](), len(idx.data))
	result := make([]T, n)
	for i := range n {
		result[i] = *field(&objs[idx.data[i]])
	}
	return Vector[T]{data: result}
}

// GatherFieldMasked is GatherField restricted to the lanes selected by k;
// unselected lanes of dst keep their prior values.
func GatherFieldMasked[S any, T Entries, I Indexes](dst *Vector[T], objs []S, field func(*S) *T, idx Vector[I], k Mask[T]) {
	n := min(len(dst.data), min(len(idx.data), len(k.bits)))
	for i := range n {
		if k.bits[i] {
			dst.data[i] = *field(&objs[idx.data[i]])
		}
	}
}

// ScatterField stores lane i of v to field(&objs[idx[i]]).
func ScatterField[S any, T Entries, I Indexes](v Vector[T], objs []S, field func(*S) *T, idx Vector[I]) {
	n := min(len(v.data), len(idx.data))
	for i := range n {
		*field(&objs[idx.data[i]]) = v.data[i]
	}
}

// ScatterFieldMasked is ScatterField restricted to the lanes selected by k.
func ScatterFieldMasked[S any, T Entries, I Indexes](v Vector[T], objs []S, field func(*S) *T, idx Vector[I], k Mask[T]) {
	n := min(len(v.data), min(len(idx.data), len(k.bits)))
	for i := range n {
		if k.bits[i] {
			*field(&objs[idx.data[i]]) = v.data[i]
		}
	}
}

// GatherField2 returns a vector with lane i loaded two indirection levels
// deep: inner(outer(&objs[idx[i]])).
func GatherField2[S, M any, T Entries, I Indexes](objs []S, outer func(*S) *M, inner func(*M) *T, idx Vector[I]) Vector[T] {
	n := min(LaneCount[T](), len(idx.data))
	result := make([]T, n)
	for i := range n {
		result[i] = *inner(outer(&objs[idx.data[i]]))
	}
	return Vector[T]{data: result}
}

// GatherField2Masked is GatherField2 restricted to the lanes selected by
// k; unselected lanes of dst keep their prior values.
func GatherField2Masked[S, M any, T Entries, I Indexes](dst *Vector[T], objs []S, outer func(*S) *M, inner func(*M) *T, idx Vector[I], k Mask[T]) {
	n := min(len(dst.data), min(len(idx.data), len(k.bits)))
	for i := range n {
		if k.bits[i] {
			dst.data[i] = *inner(outer(&objs[idx.data[i]]))
		}
	}
}

// ScatterField2 stores lane i of v two indirection levels deep.
func ScatterField2[S, M any, T Entries, I Indexes](v Vector[T], objs []S, outer func(*S) *M, inner func(*M) *T, idx Vector[I]) {
	n := min(len(v.data), len(idx.data))
	for i := range n {
		*inner(outer(&objs[idx.data[i]])) = v.data[i]
	}
}

// ScatterField2Masked is ScatterField2 restricted to the lanes selected by k.
func ScatterField2Masked[S, M any, T Entries, I Indexes](v Vector[T], objs []S, outer func(*S) *M, inner func(*M) *T, idx Vector[I], k Mask[T]) {
	n := min(len(v.data), min(len(idx.data), len(k.bits)))
	for i := range n {
		if k.bits[i] {
			*inner(outer(&objs[idx.data[i]])) = v.data[i]
		}
	}
}

// IndicesIota returns an index vector with lanes [0, 1, 2, ...] at the
// index type's own lane count.
func IndicesIota[I Indexes]() Vector[I] {
	n := LaneCount[I]()
	result := make([]I, n)
	for i := range n {
		result[i] = I(i)
	}
	return Vector[I]{data: result}
}

// IndicesStride returns an index vector with lanes
// [start, start+stride, start+2*stride, ...].
func IndicesStride[I Indexes](start, stride I) Vector[I] {
	n := LaneCount[I]()
	result := make([]I, n)
	for i := range n {
		result[i] = start + I(i)*stride
	}
	return Vector[I]{data: result}
}

// IndicesFromFunc returns an index vector with lane i set to f(i). Useful
// for irregular gather patterns.
func IndicesFromFunc[I Indexes](f func(lane int) I) Vector[I] {
	n := LaneCount[I]()
	result := make([]I, n)
	for i := range n {
		result[i] = f(i)
	}
	return Vector[I]{data: result}
}
