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

// Grid1D computes the SEDT of f, writing into output (must not alias f).
// It is the in-place entry point for one axis — naming parity with
// Grid2D/Grid3D for a pass schedule that, in 1D, is just the one
// Envelope1D sweep.
//
// If scratch is nil, one is allocated for the call; otherwise it must be
// sized for len(f) (NewScratch(len(f))).
func Grid1D(f, output []float32, scratch *Scratch) {
	if scratch == nil {
		scratch = NewScratch(len(f))
	}
	if scratch.Len() != len(f) {
		panic("sedt: scratch length must equal input length")
	}
	Envelope1D(f, output, scratch.V, scratch.Z)
}
