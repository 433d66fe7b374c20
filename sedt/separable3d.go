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

import "github.com/ajroetker/go-sedt/sedt/contrib/workerpool"

// Grid3D computes the SEDT of a (depth, rows, cols) grid stored row-major
// (slice-major, then row-major within a slice) in f, writing into output
// (same shape; must not alias f).
//
// Pass schedule (spec §4.2): for each fixed depth index, run the full 2D
// separable transform on the (rows, cols) plane into output; copy the
// entire output volume back into f; then sweep axis 0 (depth) for every
// (row, col) pair.
//
// If temp is non-nil it must have length depth*rows*cols and is used as
// the inter-pass staging buffer instead of overwriting f, so that the
// caller's original f survives the call (spec §3, temp is optional). If
// temp is nil, f is overwritten between passes as in Grid2D.
//
// scratch must be sized for max(depth, rows, cols) and, as in Grid2D, is
// reused serially when pool is nil; Grid3D allocates private per-worker
// scratch internally when pool is non-nil.
func Grid3D(f, output []float32, depth, rows, cols int, temp []float32, scratch *PassScratch, pool *workerpool.Pool) {
	n := depth * rows * cols
	if len(f) != n {
		panic("sedt: f length must equal depth*rows*cols")
	}
	if len(output) != n {
		panic("sedt: output length must equal depth*rows*cols")
	}
	if temp != nil && len(temp) != n {
		panic("sedt: temp length must equal depth*rows*cols")
	}
	maxFiber := max(depth, max(rows, cols))
	if scratch != nil && scratch.Len() < maxFiber {
		panic("sedt: scratch too small for grid shape")
	}

	planeSize := rows * cols

	// With temp, every copy-back lands in temp and f is only read.
	stage := f
	if temp != nil {
		stage = temp
		copy(stage, f)
	}

	// Pass 1: 2D separable transform on each (rows, cols) plane.
	for d := 0; d < depth; d++ {
		off := d * planeSize
		plane := stage[off : off+planeSize]
		out := output[off : off+planeSize]
		rowPass(plane, out, rows, cols, scratch, pool)
		copy(plane, out)
		colPass(plane, out, rows, cols, scratch, pool)
	}

	// Pass 2: copy-back so the axis-0 sweep reads the post-pass-1 values.
	copy(stage, output)

	// Pass 3: sweep axis 0 (depth) for every (row, col) pair. These pairs
	// are strided planeSize apart, so each fiber is gathered, transformed,
	// and scattered back exactly as colPass does for 2D.
	fiberFn := func(start, end int, s *PassScratch) {
		v, z, fiber, fiberOut := scratchFor(s, depth)
		for idx := start; idx < end; idx++ {
			r, c := idx/cols, idx%cols
			base := r*cols + c
			for d := 0; d < depth; d++ {
				fiber[d] = stage[d*planeSize+base]
			}
			Envelope1D(fiber, fiberOut, v, z)
			for d := 0; d < depth; d++ {
				output[d*planeSize+base] = fiberOut[d]
			}
		}
	}
	dispatch(pool, rows*cols, depth, scratch, fiberFn)
}
