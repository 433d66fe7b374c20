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

// Package sedt computes the exact squared Euclidean distance transform
// (SEDT) of 1D, 2D, and 3D float32 arrays.
//
// Given a sampled function f on a regular grid, the transform produces, at
// every grid point p:
//
//	D(p) = min over q of f(q) + ||p - q||^2
//
// The canonical caller encodes a binary foreground/background indicator as
// f: 0 on foreground, a large sentinel (e.g. 1e10) on background. D(p) is
// then the squared distance from p to the nearest foreground point.
//
// # Algorithm
//
// The transform is separable: the squared-L2 metric factors per axis, so
// the full N-dimensional problem reduces to a sequence of independent 1D
// problems, one per "fiber" (a 1D slice obtained by fixing all axes but
// one). Each 1D problem is solved in O(n) by Envelope1D, the lower-envelope
// sweep of Felzenszwalb & Huttenlocher (2012). Grid2D and Grid3D apply
// Envelope1D along each axis in turn, copying the partial result back into
// the input buffer between passes so every pass reads from f and writes to
// output.
//
// # API shape
//
// Each dimensionality has an in-place entry point (Grid1D, Grid2D, Grid3D)
// that requires caller-supplied output and scratch, and an allocating
// convenience wrapper (Transform1D, Transform2D, Transform3D) that
// allocates output and scratch and delegates to the in-place form.
// Transform2D and Transform3D take a threaded bool selecting parallel fiber
// iteration via contrib/workerpool; Grid2D and Grid3D take a
// *workerpool.Pool instead (nil runs the fibers serially).
//
// # GPU path
//
// contrib/gpukernel implements the same separable decomposition with a
// different, data-parallel strategy (bounded brute-force nearest-nonzero
// search) suited to a GPU-like execution model. Its input encoding differs
// from this package's: foreground is any value >= 0.5, background < 0.5.
package sedt
