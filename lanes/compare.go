package lanes

// Lane-wise comparisons. Each produces a Mask of matching width; no
// reduction to a single boolean is performed (use Mask.AllTrue/AnyTrue).
// Float lanes compare under IEEE ordering, so a NaN lane is unordered and
// every comparison with it except NotEqual yields false.

// Equal performs lane-wise equality comparison.
func Equal[T Entries](a, b Vector[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// NotEqual performs lane-wise inequality comparison.
func NotEqual[T Entries](a, b Vector[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] != b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessThan performs lane-wise less-than comparison.
func LessThan[T Entries](a, b Vector[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessEqual performs lane-wise less-than-or-equal comparison.
func LessEqual[T Entries](a, b Vector[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] <= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterThan performs lane-wise greater-than comparison.
func GreaterThan[T Entries](a, b Vector[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterEqual performs lane-wise greater-than-or-equal comparison.
func GreaterEqual[T Entries](a, b Vector[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] >= b.data[i]
	}
	return Mask[T]{bits: bits}
}
