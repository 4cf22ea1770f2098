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

// Command lanesinfo prints the vector tier the lanes package selected for
// this machine: level, register width, alignment boundary and the lane
// count of every element type.
//
// Usage:
//
//	lanesinfo            # human-readable report
//	lanesinfo -json      # machine-readable report
//	lanesinfo -v         # structured diagnostics on stderr
//
// The LANES_NO_SIMD and LANES_WIDTH environment variables influence the
// selection the same way they do for any other program using the package.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ajroetker/go-lanes/lanes"
)

var (
	jsonOut = flag.Bool("json", false, "Emit the report as JSON")
	verbose = flag.Bool("v", false, "Emit structured diagnostics on stderr")
)

type report struct {
	Level     string         `json:"level"`
	Width     int            `json:"width_bytes"`
	Alignment int            `json:"alignment_bytes"`
	Lanes     map[string]int `json:"lanes"`
}

func main() {
	flag.Parse()

	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		logger.Debug("tier selection",
			"level", lanes.CurrentLevel().String(),
			"width", lanes.CurrentWidth(),
			"LANES_NO_SIMD", os.Getenv("LANES_NO_SIMD"),
			"LANES_WIDTH", os.Getenv("LANES_WIDTH"),
		)
	}

	r := report{
		Level:     lanes.CurrentLevel().String(),
		Width:     lanes.CurrentWidth(),
		Alignment: lanes.AlignBoundary,
		Lanes: map[string]int{
			"float32": lanes.LaneCount[float32](),
			"float64": lanes.LaneCount[float64](),
			"int8":    lanes.LaneCount[int8](),
			"int16":   lanes.LaneCount[int16](),
			"int32":   lanes.LaneCount[int32](),
			"int64":   lanes.LaneCount[int64](),
			"uint8":   lanes.LaneCount[uint8](),
			"uint16":  lanes.LaneCount[uint16](),
			"uint32":  lanes.LaneCount[uint32](),
			"uint64":  lanes.LaneCount[uint64](),
		},
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("level:     %s\n", r.Level)
	fmt.Printf("width:     %d bytes\n", r.Width)
	fmt.Printf("alignment: %d bytes\n", r.Alignment)
	fmt.Println("lanes:")
	for _, name := range []string{"float32", "float64", "int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64"} {
		fmt.Printf("  %-8s %d\n", name, r.Lanes[name])
	}
}
