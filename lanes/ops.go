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

// This file provides the lane-wise arithmetic and bitwise operations. Every
// operation is a pure value transformation: operands are untouched and the
// result has fresh storage. There is no cross-lane interaction; horizontal
// reductions live in contrib/algo.

// Add performs lane-wise addition.
func Add[T Entries](a, b Vector[T]) Vector[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vector[T]{data: result}
}

// Sub performs lane-wise subtraction.
func Sub[T Entries](a, b Vector[T]) Vector[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] - b.data[i]
	}
	return Vector[T]{data: result}
}

// Mul performs lane-wise multiplication.
func Mul[T Entries](a, b Vector[T]) Vector[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Vector[T]{data: result}
}

// Div performs lane-wise division. A zero divisor lane follows the element
// type's native semantics: IEEE Inf/NaN for floats, a runtime panic for
// integers. The package does not intercept either.
func Div[T Entries](a, b Vector[T]) Vector[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] / b.data[i]
	}
	return Vector[T]{data: result}
}

// Neg negates all lanes. For unsigned element types this is two's
// complement negation.
func Neg[T Entries](v Vector[T]) Vector[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = -x
	}
	return Vector[T]{data: result}
}

// Abs returns the lane-wise absolute value. Unsigned lanes pass through.
func Abs[T Entries](v Vector[T]) Vector[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		if x < 0 {
			result[i] = -x
		} else {
			result[i] = x
		}
	}
	return Vector[T]{data: result}
}

// Min returns the lane-wise minimum.
func Min[T Entries](a, b Vector[T]) Vector[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = min(a.data[i], b.data[i])
	}
	return Vector[T]{data: result}
}

// Max returns the lane-wise maximum.
func Max[T Entries](a, b Vector[T]) Vector[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = max(a.data[i], b.data[i])
	}
	return Vector[T]{data: result}
}

// ShiftLeft shifts every lane left by the given bit count.
func ShiftLeft[T Integers](v Vector[T], bits int) Vector[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x << bits
	}
	return Vector[T]{data: result}
}

// ShiftRight shifts every lane right by the given bit count: arithmetic
// (sign-extending) for signed element types, logical for unsigned.
func ShiftRight[T Integers](v Vector[T], bits int) Vector[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x >> bits
	}
	return Vector[T]{data: result}
}

// And performs lane-wise bitwise AND. Float lanes are combined on their
// IEEE bit patterns, as the hardware does.
func And[T Entries](a, b Vector[T]) Vector[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = fromBits[T](toBits(a.data[i]) & toBits(b.data[i]))
	}
	return Vector[T]{data: result}
}

// Or performs lane-wise bitwise OR.
func Or[T Entries](a, b Vector[T]) Vector[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = fromBits[T](toBits(a.data[i]) | toBits(b.data[i]))
	}
	return Vector[T]{data: result}
}

// Xor performs lane-wise bitwise XOR.
func Xor[T Entries](a, b Vector[T]) Vector[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = fromBits[T](toBits(a.data[i]) ^ toBits(b.data[i]))
	}
	return Vector[T]{data: result}
}

// AndNot performs lane-wise bitwise (^a) & b.
func AndNot[T Entries](a, b Vector[T]) Vector[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = fromBits[T]((^toBits(a.data[i])) & toBits(b.data[i]))
	}
	return Vector[T]{data: result}
}

// Not performs lane-wise bitwise complement.
func Not[T Entries](v Vector[T]) Vector[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = fromBits[T](^toBits(x))
	}
	return Vector[T]{data: result}
}

// toBits reinterprets a lane value as its raw bits, widened to uint64.
// fromBits is its inverse; both are keyed on the lane's byte size rather
// than its dynamic type, so named element types (type Celsius float32)
// reinterpret the same way the predeclared ones do. The round trip through
// uint64 is exact for every element type.
func toBits[T Entries](x T) uint64 {
	switch unsafe.Sizeof(x) {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&x)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&x)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&x)))
	default:
		return *(*uint64)(unsafe.Pointer(&x))
	}
}

func fromBits[T Entries](b uint64) T {
	var x T
	switch unsafe.Sizeof(x) {
	case 1:
		*(*uint8)(unsafe.Pointer(&x)) = uint8(b)
	case 2:
		*(*uint16)(unsafe.Pointer(&x)) = uint16(b)
	case 4:
		*(*uint32)(unsafe.Pointer(&x)) = uint32(b)
	default:
		*(*uint64)(unsafe.Pointer(&x)) = b
	}
	return x
}
