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

// Package debug provides checked variants of the lanes hot-path
// operations. The core package performs no range or alignment validation
// by design; this package is the explicit opt-in layer for callers that
// want descriptive errors instead of faults while developing.
//
// Nothing in the core path calls into this package, and production code
// should not either: every function here revalidates its inputs lane by
// lane.
package debug

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-lanes/lanes"
)

var (
	// ErrIndexRange reports an out-of-range index on an active lane.
	ErrIndexRange = errors.New("lanes/debug: index out of range")

	// ErrShortSlice reports a slice too short for a full-width access.
	ErrShortSlice = errors.New("lanes/debug: slice shorter than vector width")

	// ErrMisaligned reports an Aligned promise on a misaligned base address.
	ErrMisaligned = errors.New("lanes/debug: base address violates alignment promise")

	// ErrWidthMismatch reports an index vector narrower than the data vector.
	ErrWidthMismatch = errors.New("lanes/debug: index vector narrower than data vector")
)

// Gather is a checked lanes.Gather: every consumed index is validated
// against len(src) before any memory is read.
func Gather[T lanes.Entries, I lanes.Indexes](src []T, idx lanes.Vector[I]) (lanes.Vector[T], error) {
	n := lanes.LaneCount[T]()
	if idx.NumLanes() < n {
		return lanes.Vector[T]{}, fmt.Errorf("%w: %d index lanes for %d data lanes", ErrWidthMismatch, idx.NumLanes(), n)
	}
	for i := 0; i < n; i++ {
		// Unsigned compare: converting a huge index to int would wrap
		// negative and slip past the check.
		if j := uint64(idx.At(i)); j >= uint64(len(src)) {
			return lanes.Vector[T]{}, fmt.Errorf("%w: lane %d index %d, len %d", ErrIndexRange, i, j, len(src))
		}
	}
	return lanes.Gather(src, idx), nil
}

// GatherMasked is a checked lanes.GatherMasked: indexes are validated for
// active lanes only, preserving the guarantee that excluded lanes may hold
// arbitrary indexes.
func GatherMasked[T lanes.Entries, I lanes.Indexes](dst *lanes.Vector[T], src []T, idx lanes.Vector[I], k lanes.Mask[T]) error {
	n := min(dst.NumLanes(), min(idx.NumLanes(), k.NumLanes()))
	for i := 0; i < n; i++ {
		if !k.At(i) {
			continue
		}
		if j := uint64(idx.At(i)); j >= uint64(len(src)) {
			return fmt.Errorf("%w: active lane %d index %d, len %d", ErrIndexRange, i, j, len(src))
		}
	}
	lanes.GatherMasked(dst, src, idx, k)
	return nil
}

// Scatter is a checked lanes.Scatter.
func Scatter[T lanes.Entries, I lanes.Indexes](v lanes.Vector[T], dst []T, idx lanes.Vector[I]) error {
	n := min(v.NumLanes(), idx.NumLanes())
	for i := 0; i < n; i++ {
		if j := uint64(idx.At(i)); j >= uint64(len(dst)) {
			return fmt.Errorf("%w: lane %d index %d, len %d", ErrIndexRange, i, j, len(dst))
		}
	}
	lanes.Scatter(v, dst, idx)
	return nil
}

// ScatterMasked is a checked lanes.ScatterMasked; only active lanes are
// validated.
func ScatterMasked[T lanes.Entries, I lanes.Indexes](v lanes.Vector[T], dst []T, idx lanes.Vector[I], k lanes.Mask[T]) error {
	n := min(v.NumLanes(), min(idx.NumLanes(), k.NumLanes()))
	for i := 0; i < n; i++ {
		if !k.At(i) {
			continue
		}
		if j := uint64(idx.At(i)); j >= uint64(len(dst)) {
			return fmt.Errorf("%w: active lane %d index %d, len %d", ErrIndexRange, i, j, len(dst))
		}
	}
	lanes.ScatterMasked(v, dst, idx, k)
	return nil
}

// Load is a checked lanes.Load: it requires a full vector's worth of
// entries and, when align is lanes.Aligned, verifies the base address
// actually satisfies lanes.AlignBoundary.
func Load[T lanes.Entries](src []T, align lanes.Alignment) (lanes.Vector[T], error) {
	if len(src) < lanes.LaneCount[T]() {
		return lanes.Vector[T]{}, fmt.Errorf("%w: len %d, width %d", ErrShortSlice, len(src), lanes.LaneCount[T]())
	}
	if err := checkAlign(src, align); err != nil {
		return lanes.Vector[T]{}, err
	}
	return lanes.Load(src, align), nil
}

// Store is a checked Vector.Store with the same validations as Load.
func Store[T lanes.Entries](v lanes.Vector[T], dst []T, align lanes.Alignment) error {
	if len(dst) < v.NumLanes() {
		return fmt.Errorf("%w: len %d, width %d", ErrShortSlice, len(dst), v.NumLanes())
	}
	if err := checkAlign(dst, align); err != nil {
		return err
	}
	v.Store(dst, align)
	return nil
}

func checkAlign[T lanes.Entries](s []T, align lanes.Alignment) error {
	if align != lanes.Aligned || len(s) == 0 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&s[0]))
	if width := uintptr(lanes.CurrentWidth()); addr%width != 0 {
		return fmt.Errorf("%w: address %#x, boundary %d", ErrMisaligned, addr, width)
	}
	return nil
}
