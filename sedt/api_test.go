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

	"github.com/stretchr/testify/require"
)

func TestTransform1D(t *testing.T) {
	f := indicator([]int{0, 1, 0, 0, 0, 1, 1, 1, 1, 1, 0})
	want := []float32{1, 0, 1, 4, 1, 0, 0, 0, 0, 0, 1}

	got := Transform1D(f)

	require.InDeltaSlice(t, want, got, 1e-4)
}

func TestTransform2D_DoesNotMutateInput(t *testing.T) {
	f := s2Foreground()
	fOrig := append([]float32(nil), f...)

	_ = Transform2D(f, s2Rows, s2Cols, false)

	require.Equal(t, fOrig, f)
}

func TestTransform2D_ThreadedMatchesSerial(t *testing.T) {
	f := s2Foreground()

	serial := Transform2D(f, s2Rows, s2Cols, false)
	threaded := Transform2D(f, s2Rows, s2Cols, true)

	require.Equal(t, serial, threaded)
	require.InDeltaSlice(t, s2Want, serial, 1e-4)
}

func TestTransform3D_DoesNotMutateInput(t *testing.T) {
	const depth = 2
	planeSize := s2Rows * s2Cols
	plane := s2Foreground()
	f := make([]float32, depth*planeSize)
	for d := 0; d < depth; d++ {
		copy(f[d*planeSize:(d+1)*planeSize], plane)
	}
	fOrig := append([]float32(nil), f...)

	_ = Transform3D(f, depth, s2Rows, s2Cols, false)

	require.Equal(t, fOrig, f)
}

func TestTransform3D_ThreadedMatchesSerial(t *testing.T) {
	const depth = 2
	planeSize := s2Rows * s2Cols
	plane := s2Foreground()
	f := make([]float32, depth*planeSize)
	for d := 0; d < depth; d++ {
		copy(f[d*planeSize:(d+1)*planeSize], plane)
	}

	serial := Transform3D(f, depth, s2Rows, s2Cols, false)
	threaded := Transform3D(f, depth, s2Rows, s2Cols, true)

	require.Equal(t, serial, threaded)
}
