package algo

import (
	"context"
	"testing"

	"github.com/ajroetker/go-lanes/lanes"
)

func TestTransform(t *testing.T) {
	n := 3*lanes.LaneCount[float32]() + 2 // force a masked tail
	src := make([]float32, n)
	for i := range src {
		src[i] = float32(i)
	}
	dst := make([]float32, n)

	Transform(dst, src, func(v lanes.Vector[float32]) lanes.Vector[float32] {
		return lanes.Mul(v, v)
	})

	for i := range src {
		want := src[i] * src[i]
		if dst[i] != want {
			t.Errorf("Transform: entry %d: got %v, want %v", i, dst[i], want)
		}
	}
}

func TestTransformShortDst(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	dst := make([]float32, 5)

	Transform(dst, src, func(v lanes.Vector[float32]) lanes.Vector[float32] {
		return lanes.Add(v, v)
	})
	for i := range dst {
		if dst[i] != src[i]*2 {
			t.Errorf("entry %d: got %v, want %v", i, dst[i], src[i]*2)
		}
	}
}

func TestFill(t *testing.T) {
	dst := make([]int32, 2*lanes.LaneCount[int32]()+3)
	Fill(dst, int32(-7))

	for i := range dst {
		if dst[i] != -7 {
			t.Errorf("Fill: entry %d: got %v, want -7", i, dst[i])
		}
	}
}

func TestSum(t *testing.T) {
	n := 4*lanes.LaneCount[int64]() + 1
	src := make([]int64, n)
	var want int64
	for i := range src {
		src[i] = int64(i)
		want += int64(i)
	}

	if got := Sum(src); got != want {
		t.Errorf("Sum: got %v, want %v", got, want)
	}
}

func TestSumEmpty(t *testing.T) {
	if got := Sum([]float32{}); got != 0 {
		t.Errorf("Sum of empty: got %v, want 0", got)
	}
}

func TestParallelTransform(t *testing.T) {
	n := 1000*lanes.LaneCount[float32]() + 3
	src := make([]float32, n)
	for i := range src {
		src[i] = float32(i % 17)
	}
	dst := make([]float32, n)

	err := ParallelTransform(context.Background(), dst, src, 4,
		func(v lanes.Vector[float32]) lanes.Vector[float32] {
			return lanes.Add(v, lanes.One[float32]())
		})
	if err != nil {
		t.Fatalf("ParallelTransform: %v", err)
	}

	for i := range src {
		if dst[i] != src[i]+1 {
			t.Fatalf("entry %d: got %v, want %v", i, dst[i], src[i]+1)
		}
	}
}

func TestParallelTransformCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := make([]float32, 100000*lanes.LaneCount[float32]())
	dst := make([]float32, len(src))

	err := ParallelTransform(ctx, dst, src, 2,
		func(v lanes.Vector[float32]) lanes.Vector[float32] { return v })
	if err == nil {
		t.Error("expected context error after cancellation")
	}
}
