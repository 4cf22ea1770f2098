package lanes

import (
	"testing"
	"unsafe"
)

func TestCurrentWidthSane(t *testing.T) {
	switch CurrentWidth() {
	case 16, 32, 64:
	default:
		t.Errorf("CurrentWidth() = %d, want 16, 32 or 64", CurrentWidth())
	}
	if CurrentLevel().String() == "unknown" {
		t.Errorf("CurrentLevel() = %d has no name", CurrentLevel())
	}
}

func TestLaneCountMatchesWidth(t *testing.T) {
	if got := LaneCount[float32](); got != CurrentWidth()/4 {
		t.Errorf("LaneCount[float32]() = %d, want %d", got, CurrentWidth()/4)
	}
	if got := LaneCount[float64](); got != CurrentWidth()/8 {
		t.Errorf("LaneCount[float64]() = %d, want %d", got, CurrentWidth()/8)
	}
	if got := LaneCount[uint8](); got != CurrentWidth() {
		t.Errorf("LaneCount[uint8]() = %d, want %d", got, CurrentWidth())
	}
}

// Lane counts of differently sized element types are related by their
// size ratio; this is the width pairing gather/scatter relies on.
func TestLaneCountRatio(t *testing.T) {
	var f32 float32
	var f64 float64
	ratio := int(unsafe.Sizeof(f64) / unsafe.Sizeof(f32))
	if LaneCount[float32]() != ratio*LaneCount[float64]() {
		t.Errorf("lane count ratio: float32 %d, float64 %d", LaneCount[float32](), LaneCount[float64]())
	}
}

func TestLevelStrings(t *testing.T) {
	names := map[Level]string{
		LevelScalar: "scalar",
		LevelSSE2:   "sse2",
		LevelAVX2:   "avx2",
		LevelAVX512: "avx512",
		LevelNEON:   "neon",
	}
	for level, want := range names {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}
