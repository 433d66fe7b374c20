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

var (
	negInf = float32(math.Inf(-1))
	posInf = float32(math.Inf(1))
)

// Envelope1D computes, for every index q in [0, len(f)), the value
//
//	out[q] = min over i of f[i] + (q - i)^2
//
// by building the lower envelope of the upward parabolas p_i(q) = f[i] +
// (q-i)^2 and then querying it once per q. This is the O(n) kernel the rest
// of the package composes along each axis.
//
// v and z are caller-owned scratch: v[0:k] holds the indices of the
// parabolas currently on the envelope (strictly increasing), and z[0:k+1]
// holds the breakpoints between them (strictly increasing, with z[0] = -Inf
// and the final in-use entry set to +Inf). Both are fully reinitialized by
// this call; callers do not need to pre-zero them, only to size them
// correctly.
//
// Panics if:
//   - len(out) != len(f)
//   - len(v) != len(f)
//   - len(z) != len(f)+1
//
// f, v, and z are read and/or written in place; out must not alias f.
func Envelope1D(f, out []float32, v []int32, z []float32) {
	n := len(f)
	if len(out) != n {
		panic("sedt: output length must equal input length")
	}
	if len(v) != n {
		panic("sedt: v scratch length must equal input length")
	}
	if len(z) != n+1 {
		panic("sedt: z scratch length must equal input length + 1")
	}
	if n == 0 {
		return
	}

	// Phase 1: build the lower envelope.
	k := 0
	v[0] = 0
	z[0] = negInf
	z[1] = posInf

	for q := 1; q < n; q++ {
		qf := float32(q)
		fq := f[q] + qf*qf

		var s float32
		for {
			vk := v[k]
			vkf := float32(vk)
			s = (fq - (f[vk] + vkf*vkf)) / (2*qf - 2*vkf)
			if s > z[k] || k == 0 {
				break
			}
			k--
		}

		k++
		v[k] = int32(q)
		z[k] = s
		z[k+1] = posInf
	}

	// Phase 2: query the envelope.
	k = 0
	for q := 0; q < n; q++ {
		qf := float32(q)
		for z[k+1] < qf {
			k++
		}
		d := qf - float32(v[k])
		out[q] = d*d + f[v[k]]
	}
}
