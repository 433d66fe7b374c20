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

// Transform1D allocates output and scratch and returns SEDT(f) for a 1D
// input. It is the allocating counterpart to Grid1D.
func Transform1D(f []float32) []float32 {
	output := make([]float32, len(f))
	Grid1D(f, output, NewScratch(len(f)))
	return output
}

// Transform2D allocates output and scratch and returns SEDT(f) for a
// (rows, cols) grid. f is copied before use so the caller's input is never
// mutated, unlike the in-place Grid2D.
//
// threaded selects the workerpool-backed fiber dispatch in Grid2D; the
// pool is created for the duration of this call and closed before
// returning.
func Transform2D(f []float32, rows, cols int, threaded bool) []float32 {
	fCopy := append([]float32(nil), f...)
	output := make([]float32, rows*cols)

	var pool *workerpool.Pool
	var scratch *PassScratch
	if threaded {
		pool = workerpool.New(0)
		defer pool.Close()
	} else {
		scratch = NewPassScratch(max(rows, cols))
	}

	Grid2D(fCopy, output, rows, cols, scratch, pool)
	return output
}

// Transform3D allocates output, a temp staging buffer, and scratch, and
// returns SEDT(f) for a (depth, rows, cols) grid without mutating f.
func Transform3D(f []float32, depth, rows, cols int, threaded bool) []float32 {
	fCopy := append([]float32(nil), f...)
	output := make([]float32, depth*rows*cols)
	temp := make([]float32, depth*rows*cols)

	var pool *workerpool.Pool
	var scratch *PassScratch
	if threaded {
		pool = workerpool.New(0)
		defer pool.Close()
	} else {
		scratch = NewPassScratch(max(depth, max(rows, cols)))
	}

	Grid3D(fCopy, output, depth, rows, cols, temp, scratch, pool)
	return output
}
