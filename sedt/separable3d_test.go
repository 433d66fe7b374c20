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

import (
	"testing"

	"github.com/ajroetker/go-sedt/sedt/contrib/workerpool"
	"github.com/stretchr/testify/require"
)

// TestGrid3D_S3Homogeneity is scenario S3 of spec §8: stacking the 2D case
// S2 along a new axis replicates the 2D answer along that axis, because
// minima along the new axis always resolve to offset zero.
func TestGrid3D_S3Homogeneity(t *testing.T) {
	const depth = 3
	planeSize := s2Rows * s2Cols

	f := make([]float32, depth*planeSize)
	plane := s2Foreground()
	for d := 0; d < depth; d++ {
		copy(f[d*planeSize:(d+1)*planeSize], plane)
	}

	out := make([]float32, len(f))
	scratch := NewPassScratch(max(depth, max(s2Rows, s2Cols)))
	Grid3D(f, out, depth, s2Rows, s2Cols, nil, scratch, nil)

	for d := 0; d < depth; d++ {
		require.InDeltaSlice(t, s2Want, out[d*planeSize:(d+1)*planeSize], 1e-4)
	}
}

func TestGrid3D_SinglePointCorners(t *testing.T) {
	depth, rows, cols := 5, 4, 6
	n := depth * rows * cols
	f := make([]float32, n)
	for i := range f {
		f[i] = sentinel
	}
	cd, cr, cc := 2, 1, 4
	f[cd*rows*cols+cr*cols+cc] = 0

	out := make([]float32, n)
	Grid3D(f, out, depth, rows, cols, nil, NewPassScratch(max(depth, max(rows, cols))), nil)

	corners := [][3]int{
		{0, 0, 0}, {0, 0, cols - 1}, {0, rows - 1, 0}, {0, rows - 1, cols - 1},
		{depth - 1, 0, 0}, {depth - 1, 0, cols - 1}, {depth - 1, rows - 1, 0}, {depth - 1, rows - 1, cols - 1},
	}
	for _, c := range corners {
		d, r, cl := c[0], c[1], c[2]
		want := float32((d-cd)*(d-cd) + (r-cr)*(r-cr) + (cl-cc)*(cl-cc))
		require.InDelta(t, want, out[d*rows*cols+r*cols+cl], 1e-4)
	}
}

func TestGrid3D_AllForeground(t *testing.T) {
	depth, rows, cols := 2, 3, 3
	n := depth * rows * cols
	f := make([]float32, n)
	out := make([]float32, n)
	Grid3D(f, out, depth, rows, cols, nil, NewPassScratch(max(depth, max(rows, cols))), nil)
	for _, v := range out {
		require.Zero(t, v)
	}
}

func TestGrid3D_AllBackground(t *testing.T) {
	depth, rows, cols := 2, 3, 3
	n := depth * rows * cols
	f := make([]float32, n)
	for i := range f {
		f[i] = sentinel
	}
	out := make([]float32, n)
	Grid3D(f, out, depth, rows, cols, nil, NewPassScratch(max(depth, max(rows, cols))), nil)
	for _, v := range out {
		require.InDelta(t, sentinel, v, 1e-4)
	}
}

func TestGrid3D_TempPreservesInput(t *testing.T) {
	depth, rows, cols := 2, s2Rows, s2Cols
	planeSize := rows * cols
	f := make([]float32, depth*planeSize)
	plane := s2Foreground()
	copy(f[0:planeSize], plane)
	copy(f[planeSize:2*planeSize], plane)
	fOrig := append([]float32(nil), f...)

	out := make([]float32, len(f))
	temp := make([]float32, len(f))
	Grid3D(f, out, depth, rows, cols, temp, NewPassScratch(max(depth, max(rows, cols))), nil)

	require.Equal(t, fOrig, f, "temp buffer should keep f from being overwritten")
}

func TestGrid3D_ThreadInvariance(t *testing.T) {
	const depth = 2
	planeSize := s2Rows * s2Cols
	plane := s2Foreground()

	serialIn := make([]float32, depth*planeSize)
	for d := 0; d < depth; d++ {
		copy(serialIn[d*planeSize:(d+1)*planeSize], plane)
	}
	serialOut := make([]float32, len(serialIn))
	Grid3D(serialIn, serialOut, depth, s2Rows, s2Cols, nil, NewPassScratch(max(depth, max(s2Rows, s2Cols))), nil)

	pool := workerpool.New(4)
	defer pool.Close()

	threadedIn := make([]float32, depth*planeSize)
	for d := 0; d < depth; d++ {
		copy(threadedIn[d*planeSize:(d+1)*planeSize], plane)
	}
	threadedOut := make([]float32, len(threadedIn))
	Grid3D(threadedIn, threadedOut, depth, s2Rows, s2Cols, nil, nil, pool)

	require.Equal(t, serialOut, threadedOut)
}

func TestGrid3D_ShapePanics(t *testing.T) {
	require.Panics(t, func() {
		Grid3D(make([]float32, 23), make([]float32, 24), 2, 3, 4, nil, nil, nil)
	})
	require.Panics(t, func() {
		Grid3D(make([]float32, 24), make([]float32, 24), 2, 3, 4, make([]float32, 5), nil, nil)
	})
}
