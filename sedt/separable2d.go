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

// Grid2D computes the SEDT of a (rows, cols) grid stored row-major in f,
// writing the result into output (same shape; must not alias f).
//
// The pass schedule follows spec §4.2: every row is first swept along axis
// 1 (columns) with Envelope1D, writing into output; output is then copied
// back into f so the column pass reads the post-row-pass values; then every
// column is swept along axis 0 (rows), again reading f and writing output.
//
// scratch must be sized for the larger of rows and cols (NewPassScratch(max
// (rows, cols))) and is reused serially across every fiber of both passes
// when pool is nil — the true zero-extra-allocation in-place path. When
// pool is non-nil, fibers within a pass run concurrently and therefore
// cannot share one scratch; Grid2D allocates one private PassScratch per
// worker in that case (bounded by pool.NumWorkers(), not by the grid size)
// and scratch may be nil.
//
// Either way the result is bit-for-bit identical (spec §8 property 6,
// thread invariance): fibers never observe each other's scratch and the
// floating-point operations within one fiber are never reassociated.
//
// Panics if output does not have length rows*cols, or if scratch is
// non-nil and shorter than max(rows, cols).
func Grid2D(f, output []float32, rows, cols int, scratch *PassScratch, pool *workerpool.Pool) {
	if len(f) != rows*cols {
		panic("sedt: f length must equal rows*cols")
	}
	if len(output) != rows*cols {
		panic("sedt: output length must equal rows*cols")
	}
	maxFiber := max(rows, cols)
	if scratch != nil && scratch.Len() < maxFiber {
		panic("sedt: scratch too small for grid shape")
	}

	rowPass(f, output, rows, cols, scratch, pool)
	copy(f, output)
	colPass(f, output, rows, cols, scratch, pool)
}

// rowPass runs Envelope1D along axis 1 for every row. Rows are already
// contiguous in row-major storage, so no gather/scatter is needed.
func rowPass(f, output []float32, rows, cols int, scratch *PassScratch, pool *workerpool.Pool) {
	fiberFn := func(start, end int, s *PassScratch) {
		v, z, _, _ := scratchFor(s, cols)
		for r := start; r < end; r++ {
			off := r * cols
			Envelope1D(f[off:off+cols], output[off:off+cols], v, z)
		}
	}
	dispatch(pool, rows, cols, scratch, fiberFn)
}

// colPass runs Envelope1D along axis 0 for every column. Columns are
// strided cols elements apart in row-major storage, so each fiber is
// gathered into a contiguous buffer, transformed, and scattered back.
func colPass(f, output []float32, rows, cols int, scratch *PassScratch, pool *workerpool.Pool) {
	fiberFn := func(start, end int, s *PassScratch) {
		v, z, fiber, fiberOut := scratchFor(s, rows)
		for c := start; c < end; c++ {
			for r := 0; r < rows; r++ {
				fiber[r] = f[r*cols+c]
			}
			Envelope1D(fiber, fiberOut, v, z)
			for r := 0; r < rows; r++ {
				output[r*cols+c] = fiberOut[r]
			}
		}
	}
	dispatch(pool, cols, rows, scratch, fiberFn)
}

// dispatch distributes a [0, n) fiber loop across pool, or runs it inline
// with the caller-supplied scratch when pool is nil. fiberWidth is the
// fiber length this pass needs (used only to size a private PassScratch
// per worker in the threaded case).
func dispatch(pool *workerpool.Pool, n, fiberWidth int, scratch *PassScratch, fiberFn func(start, end int, s *PassScratch)) {
	if pool == nil {
		fiberFn(0, n, scratch)
		return
	}
	pool.ParallelFor(n, func(start, end int) {
		fiberFn(start, end, NewPassScratch(fiberWidth))
	})
}
