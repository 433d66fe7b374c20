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

package gpukernel

import (
	"math"

	"github.com/ajroetker/go-sedt/sedt/contrib/workerpool"
)

// Sentinel is the squared-distance value a point too far from any
// foreground point receives (spec §4.3.1).
const Sentinel = 1e10

// Foreground is the threshold a value must meet or exceed to count as
// foreground under this package's input encoding (spec §4.3).
const Foreground = 0.5

// refineBatch is the batch size Kernel2/Kernel3 grab per atomic
// work-stealing step: after Kernel1, most points already have a small
// search radius, so batching amortizes stealing overhead across many
// cheap points instead of paying it per point.
const refineBatch = 64

// grid describes the shape of a flat, row-major lattice and the strides
// needed to walk it one axis at a time.
type grid struct {
	shape   []int
	strides []int
	size    int
}

func newGrid(shape []int) grid {
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return grid{shape: shape, strides: strides, size: stride}
}

func (g grid) coordAt(p, axis int) int {
	return (p / g.strides[axis]) % g.shape[axis]
}

// Kernel1 implements spec §4.3.1: for every lattice point, either it is
// foreground (distance zero) or the nearest foreground point along axis is
// found by a bounded brute-force search outward in both directions at
// once, taking whichever side reaches a foreground cell first (the
// combined symmetric/one-sided phases of the spec collapse into one loop
// here because on whichever side runs out of bounds first, the loop
// condition simply stops offering that side as an option).
//
// Search length varies per point with how far the nearest foreground cell
// is, so fan-out uses pool.ParallelForAtomic's work-stealing rather than a
// fixed static split, to keep workers from idling behind one long search.
// ParallelForAtomic blocks until every point is done, standing in for a
// single GPU kernel launch plus the device-wide synchronize spec §5
// requires before the result is visible.
func Kernel1(f, out []float32, g grid, axis int, pool *workerpool.Pool) {
	extent := g.shape[axis]
	stride := g.strides[axis]

	pool.ParallelForAtomic(g.size, func(p int) {
		if f[p] >= Foreground {
			out[p] = 0
			return
		}

		coord := g.coordAt(p, axis)
		for ct := 1; ; ct++ {
			leftOK := coord-ct >= 0
			rightOK := coord+ct < extent
			if !leftOK && !rightOK {
				out[p] = Sentinel
				return
			}
			if leftOK && f[p-ct*stride] >= Foreground {
				out[p] = float32(ct * ct)
				return
			}
			if rightOK && f[p+ct*stride] >= Foreground {
				out[p] = float32(ct * ct)
				return
			}
		}
	})
}

// refine is the radius-pruned refinement spec §4.3.2 describes twice, once
// per remaining axis: out[p] already holds the best squared distance found
// along earlier axes; org is a snapshot of that same buffer taken before
// this call. For each point, search outward along axis in both
// directions, pruning as soon as the step distance reaches the current
// best radius.
//
// Kernel2 and Kernel3 both call this with different axes: the spec names
// them separately for where they sit in the dispatch schedule, not because
// the refinement algorithm differs between them. Fan-out uses
// ParallelForAtomicBatched: work per point is already bounded by the
// radius found in the prior pass, so batching trades a little load
// balance for fewer atomic steals than ParallelForAtomic would need.
func refine(out, org []float32, g grid, axis int, pool *workerpool.Pool) {
	extent := g.shape[axis]
	stride := g.strides[axis]

	pool.ParallelForAtomicBatched(g.size, refineBatch, func(start, end int) {
		for p := start; p < end; p++ {
			currL := math.Sqrt(float64(out[p]))
			coord := g.coordAt(p, axis)

			for _, dir := range [2]int{-1, 1} {
				for ct := 1; float64(ct) < currL; ct++ {
					nc := coord + dir*ct
					if nc < 0 || nc >= extent {
						break
					}
					neighbor := p + dir*ct*stride
					temp := float32(ct*ct) + org[neighbor]
					if temp < out[p] {
						out[p] = temp
						currL = math.Sqrt(float64(temp))
					}
				}
			}
		}
	})
}

// Kernel2 implements spec §4.3.2 for the first axis refined after Kernel1:
// refine out in place using org, a snapshot of out taken before the call.
func Kernel2(out, org []float32, g grid, axis int, pool *workerpool.Pool) {
	refine(out, org, g, axis, pool)
}

// Kernel3 implements spec §4.3.2 for the second refined axis (3D only):
// the same refinement step as Kernel2, applied to the next axis.
func Kernel3(out, org []float32, g grid, axis int, pool *workerpool.Pool) {
	refine(out, org, g, axis, pool)
}

// Dispatch2D computes the SEDT of a (rows, cols) grid using the GPU kernel
// strategy: Kernel1 along axis 1 (columns), a copy-back, then Kernel2
// along axis 0 (rows) — the schedule of spec §4.3.3.
//
// f uses the thresholded encoding (foreground >= 0.5); output receives the
// squared distance. f and output must each have length rows*cols and must
// not alias each other.
func Dispatch2D(f, output []float32, rows, cols int) error {
	if len(f) != rows*cols || len(output) != rows*cols {
		panic("gpukernel: f and output must have length rows*cols")
	}
	g := newGrid([]int{rows, cols})

	pool := workerpool.New(0)
	defer pool.Close()

	Kernel1(f, output, g, 1, pool)

	org := append([]float32(nil), output...)
	Kernel2(output, org, g, 0, pool)
	return nil
}

// Dispatch3D computes the SEDT of a (depth, rows, cols) grid using the GPU
// kernel strategy: Kernel1 along axis 2 (columns), copy-back, Kernel2
// along axis 1 (rows), copy-back, Kernel3 along axis 0 (depth) — the
// schedule of spec §4.3.3.
func Dispatch3D(f, output []float32, depth, rows, cols int) error {
	n := depth * rows * cols
	if len(f) != n || len(output) != n {
		panic("gpukernel: f and output must have length depth*rows*cols")
	}
	g := newGrid([]int{depth, rows, cols})

	pool := workerpool.New(0)
	defer pool.Close()

	Kernel1(f, output, g, 2, pool)

	org1 := append([]float32(nil), output...)
	Kernel2(output, org1, g, 1, pool)

	org2 := append([]float32(nil), output...)
	Kernel3(output, org2, g, 0, pool)
	return nil
}
