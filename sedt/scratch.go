// Copyright 2025 go-sedt Authors
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

package sedt

import "math"

// Scratch bundles the per-fiber working buffers Envelope1D needs: V holds
// the column indices of parabolas on the lower envelope, Z holds the
// breakpoints between them. One Scratch serves one fiber at a time; its
// length is fixed to the axis extent it was built for.
type Scratch struct {
	V []int32
	Z []float32
}

// NewScratch allocates a Scratch sized for a fiber of length n.
func NewScratch(n int) *Scratch {
	return &Scratch{
		V: make([]int32, n),
		Z: make([]float32, n+1),
	}
}

// Len reports the fiber length this Scratch was sized for.
func (s *Scratch) Len() int {
	return len(s.V)
}

// Reset poisons V and Z so that any read of stale data left over from a
// prior fiber is visibly wrong rather than silently reusing an old
// envelope. Envelope1D always rewrites v[0], z[0], and z[1] itself before
// reading anything else, so Reset is not required for correctness on a
// single call — it exists to make the "no stale data observed across
// fibers" invariant mechanically checkable, and to give callers a clear
// seam between fibers when reusing one Scratch serially.
func (s *Scratch) Reset() {
	for i := range s.V {
		s.V[i] = -1
	}
	for i := range s.Z {
		s.Z[i] = float32(math.NaN())
	}
}

// PassScratch holds the reusable buffers one axis pass needs: the
// Envelope1D scratch (V, Z) sized to the pass's fiber length, plus Fiber
// and FiberOut gather buffers used whenever a fiber is not contiguous in
// the backing array (every axis but the innermost one, for a grid stored
// in row-major order). Envelope1D itself only ever sees contiguous slices
// (spec requires this); PassScratch is where the orchestrator stages the
// gather/scatter around that contract.
type PassScratch struct {
	*Scratch
	Fiber    []float32
	FiberOut []float32
}

// NewPassScratch allocates a PassScratch whose buffers are sized for the
// largest fiber length the caller will ever hand it (e.g. max(rows, cols)
// for a 2D grid, or max(depth, rows, cols) for 3D). Passes with a shorter
// fiber length simply use a prefix of these buffers.
func NewPassScratch(maxFiberLen int) *PassScratch {
	return &PassScratch{
		Scratch:  NewScratch(maxFiberLen),
		Fiber:    make([]float32, maxFiberLen),
		FiberOut: make([]float32, maxFiberLen),
	}
}

// scratchFor returns the prefix of scratch sized exactly to n, for passes
// whose fiber length is shorter than the buffers were allocated for.
func scratchFor(scratch *PassScratch, n int) (v []int32, z []float32, fiber, fiberOut []float32) {
	return scratch.V[:n], scratch.Z[:n+1], scratch.Fiber[:n], scratch.FiberOut[:n]
}
