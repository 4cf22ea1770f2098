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

// Package algo provides slice-level algorithms built on the lanes vector
// core: whole slices are walked in vector-sized blocks with a masked tail,
// so callers write one vector-to-vector function and never deal with
// remainders themselves.
package algo

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-lanes/lanes"
)

// Transform applies f to src in vector-sized blocks and writes the results
// to dst. The tail past the last full block is handled with a mask, so
// len(src) need not be a width multiple. Only min(len(dst), len(src))
// entries are written.
func Transform[T lanes.Entries](dst, src []T, f func(lanes.Vector[T]) lanes.Vector[T]) {
	n := min(len(dst), len(src))
	lanes.ProcessBlocks[T](n,
		func(offset int) {
			v := lanes.Load(src[offset:], lanes.Unaligned)
			f(v).Store(dst[offset:], lanes.Unaligned)
		},
		func(offset, count int) {
			k := lanes.TailMask[T](count)
			v := lanes.LoadMasked(src[offset:], k)
			f(v).StoreMasked(dst[offset:], k)
		},
	)
}

// Fill sets every entry of dst to x.
func Fill[T lanes.Entries](dst []T, x T) {
	v := lanes.Splat(x)
	lanes.ProcessBlocks[T](len(dst),
		func(offset int) {
			v.Store(dst[offset:], lanes.Unaligned)
		},
		func(offset, count int) {
			v.StoreMasked(dst[offset:], lanes.TailMask[T](count))
		},
	)
}

// Sum returns the sum of all entries of src: blocks are accumulated
// lane-wise and reduced once at the end, with the tail added through a
// mask. Float summation order therefore differs from a plain scalar loop.
func Sum[T lanes.Entries](src []T) T {
	acc := lanes.Zero[T]()
	lanes.ProcessBlocks[T](len(src),
		func(offset int) {
			acc = lanes.Add(acc, lanes.Load(src[offset:], lanes.Unaligned))
		},
		func(offset, count int) {
			k := lanes.TailMask[T](count)
			acc.Where(k).Add(lanes.LoadMasked(src[offset:], k))
		},
	)
	var sum T
	for _, x := range acc.Slice() {
		sum += x
	}
	return sum
}

// ParallelTransform is Transform with the full blocks fanned out over
// workers goroutines (GOMAXPROCS when workers <= 0). Each worker owns a
// disjoint block range, so no two goroutines touch the same dst entries.
// Cancellation is observed between block batches; the function returns
// ctx.Err if the context ends before the work does.
func ParallelTransform[T lanes.Entries](ctx context.Context, dst, src []T, workers int, f func(lanes.Vector[T]) lanes.Vector[T]) error {
	n := min(len(dst), len(src))
	width := lanes.LaneCount[T]()
	blocks := n / width
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	// Hand each worker a contiguous batch of blocks rather than one block
	// per goroutine; block bodies are far too small to amortize a spawn.
	const blocksPerBatch = 64
	for start := 0; start < blocks; start += blocksPerBatch {
		end := min(start+blocksPerBatch, blocks)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for b := start; b < end; b++ {
				offset := b * width
				v := lanes.Load(src[offset:], lanes.Unaligned)
				f(v).Store(dst[offset:], lanes.Unaligned)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Masked tail runs on the caller's goroutine.
	if rem := n % width; rem > 0 {
		offset := blocks * width
		k := lanes.TailMask[T](rem)
		v := lanes.LoadMasked(src[offset:], k)
		f(v).StoreMasked(dst[offset:], k)
	}
	return nil
}
