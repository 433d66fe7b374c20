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

// Package gpukernel implements the SEDT separable decomposition with the
// data-parallel strategy a GPU would use: bounded brute-force
// nearest-nonzero search along the first axis (Kernel1), followed by
// radius-pruned refinement along the remaining axes (Kernel2, Kernel3).
// This is algorithmically distinct from sedt's envelope sweep — no lower
// envelope is built — and it is the backend meant for hardware where one
// logical thread per lattice point and tolerant divergence are cheap.
//
// Dispatch2D and Dispatch3D dispatch one logical unit of work per lattice
// point through a contrib/workerpool.Pool (Kernel1 via ParallelForAtomic,
// Kernel2/Kernel3 via ParallelForAtomicBatched), to stand in for a GPU
// kernel launch on a machine with no cgo/CUDA bridge available. Each pool
// call blocks until every point is done — the "device-wide synchronize"
// spec §5 requires between consecutive kernels and before returning
// control to the caller.
//
// # Input encoding
//
// This package's input encoding is the threshold contract of spec §4.3,
// not sedt's 0/sentinel contract: f[p] >= 0.5 means foreground (distance
// zero), f[p] < 0.5 means background.
package gpukernel
