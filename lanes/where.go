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

// Where is a transient binding of a vector and a mask. Every write through
// it touches only the lanes the mask selects; other lanes keep their prior
// values. Obtain one from Vector.Where and use it within the statement that
// created it:
//
//	v.Where(k).Add(delta)      // v[i] += delta[i] where k[i]
//	v.Where(k).Set(x)          // v[i] = x[i]      where k[i]
//
// A Where must not be stored in a variable or kept across mutations of the
// underlying vector; it holds a live reference and gives no aliasing
// guarantees beyond the single expression. This is the only multi-lane
// partial-write path into a vector, and each write is a single blend, not
// an element-wise branch on the stored representation.
type Where[T Entries] struct {
	v *Vector[T]
	k Mask[T]
}

// Where binds v to the lanes selected by k for masked assignment.
func (v *Vector[T]) Where(k Mask[T]) Where[T] {
	return Where[T]{v: v, k: k}
}

// Set assigns x into the selected lanes.
func (w Where[T]) Set(x Vector[T]) {
	w.blend(x)
}

// Add adds x into the selected lanes.
func (w Where[T]) Add(x Vector[T]) {
	w.blend(Add(*w.v, x))
}

// Sub subtracts x from the selected lanes.
func (w Where[T]) Sub(x Vector[T]) {
	w.blend(Sub(*w.v, x))
}

// Mul multiplies the selected lanes by x.
func (w Where[T]) Mul(x Vector[T]) {
	w.blend(Mul(*w.v, x))
}

// Div divides the selected lanes by x. Zero divisor lanes follow the
// element type's native semantics even when unselected lanes are the only
// zeros involved: the quotient is computed full-width and then blended.
func (w Where[T]) Div(x Vector[T]) {
	w.blend(Div(*w.v, x))
}

// SetZero zeroes the selected lanes. Equivalent to Vector.SetZeroWhere.
func (w Where[T]) SetZero() {
	w.v.SetZeroWhere(w.k)
}

// blend commits the full-width candidate result into the masked lanes.
func (w Where[T]) blend(x Vector[T]) {
	n := min(len(w.v.data), min(len(x.data), len(w.k.bits)))
	for i := range n {
		if w.k.bits[i] {
			w.v.data[i] = x.data[i]
		}
	}
}
