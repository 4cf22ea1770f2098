package lanes

import (
	"os"
	"strconv"
	"unsafe"
)

// Level identifies the hardware width tier backing all vectors in this
// process. It is fixed at package init and never changes afterwards, so
// every Vector[T] created during the process's lifetime has the same lane
// count for a given T.
type Level int

const (
	// LevelScalar indicates no SIMD hardware; 128-bit vectors emulated
	// in pure Go.
	LevelScalar Level = iota

	// LevelSSE2 indicates 128-bit vectors (x86-64 baseline).
	LevelSSE2

	// LevelAVX2 indicates 256-bit vectors.
	LevelAVX2

	// LevelAVX512 indicates 512-bit vectors.
	LevelAVX512

	// LevelNEON indicates 128-bit vectors on ARM.
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// AlignBoundary is the allocation alignment that satisfies the Aligned
// load/store contract on every tier. It is the widest tier's requirement
// (AVX-512) so that aligned buffers stay valid when the same binary runs
// on a wider machine; the contract itself only demands CurrentWidth.
const AlignBoundary = 64

// currentLevel and currentWidth describe the active tier.
// Set by init() in dispatch_*.go files, possibly overridden by environment.
var (
	currentLevel Level
	currentWidth int
)

// CurrentLevel returns the hardware width tier in use.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// LaneCount returns the number of lanes a Vector[T] holds in this process.
//
// For example, with a 256-bit tier:
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - uint32:  32/4 = 8 lanes
//
// Vectors of differently sized element types have different lane counts;
// code that pairs a data vector with an index vector must consume only the
// first LaneCount[T]() index lanes (gather/scatter do this internally).
func LaneCount[T Entries]() int {
	var dummy T
	return currentWidth / int(unsafe.Sizeof(dummy))
}

// noSimdEnv reports whether LANES_NO_SIMD requests the scalar tier.
// Any non-empty value that does not parse as false counts as set.
func noSimdEnv() bool {
	val := os.Getenv("LANES_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// forcedWidth returns the width requested via LANES_WIDTH, or 0 when unset
// or invalid. Only 16, 32 and 64 are honored.
func forcedWidth() int {
	val := os.Getenv("LANES_WIDTH")
	if val == "" {
		return 0
	}
	w, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	switch w {
	case 16, 32, 64:
		return w
	}
	return 0
}

// applyOverrides adjusts the detected tier from the environment.
// Called by every dispatch_*.go init after hardware detection.
func applyOverrides() {
	if noSimdEnv() {
		currentLevel = LevelScalar
		currentWidth = 16
		return
	}
	if w := forcedWidth(); w != 0 {
		currentWidth = w
	}
}
