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

import "github.com/samber/lo"

// Reference computes the SEDT of a flat, row-major grid with the given
// shape by brute force: for every point p, the minimum over every point q
// of f[q] + ||p-q||^2, in 64-bit float. It exists for testing only (spec
// §8 property 1, "reference equivalence") — O(n^2) in the number of grid
// points, so it is only ever run on small inputs.
//
// shape lists the extent of each axis, outermost first (so shape = [rows,
// cols] for 2D, [depth, rows, cols] for 3D); len(f) must equal the product
// of shape.
func Reference(f []float64, shape ...int) []float64 {
	n := 1
	for _, s := range shape {
		n *= s
	}
	if len(f) != n {
		panic("sedt: reference input length does not match shape")
	}

	coords := lo.Map(lo.Range(n), func(i, _ int) []int {
		return unflatten(i, shape)
	})

	out := make([]float64, n)
	for p, pc := range coords {
		best := posInfF64
		for q, qc := range coords {
			d2 := sqDist(pc, qc)
			if v := f[q] + d2; v < best {
				best = v
			}
		}
		out[p] = best
	}
	return out
}

const posInfF64 = float64(1) << 62

func unflatten(idx int, shape []int) []int {
	coord := make([]int, len(shape))
	for axis := len(shape) - 1; axis >= 0; axis-- {
		coord[axis] = idx % shape[axis]
		idx /= shape[axis]
	}
	return coord
}

func sqDist(a, b []int) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i] - b[i])
		sum += d * d
	}
	return sum
}
