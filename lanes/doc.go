// Copyright 2025 go-highway Authors
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

// Package lanes provides fixed-width generic vectors whose comparison and
// select operations run on the best native instructions of the build tier.
//
// The tier (scalar, SSE2, AVX2, AVX-512 or NEON) is chosen at build time by
// build constraints; there is no runtime dispatch. A vector's width is part
// of its type, so operands of different widths or lane types do not compile.
// Vectors wider than one native register are decomposed into per-register
// operations whose results are concatenated.
//
// Basic usage:
//
//	a := lanes.Load[lanes.W8]([]int32{1, 5, 3, 9, 0, 0, 7, 7})
//	b := lanes.Splat[lanes.W8](int32(4))
//	m := lanes.CmpLE(a, b)               // per-lane a <= b
//	r := lanes.BitSelectMask(a, b, m)    // min(a, b)
//
// Building with GOEXPERIMENT=simd and GOAMD64=v3 or v4 selects the AVX2 or
// AVX-512 tier; the purego tag forces the scalar tier.
package lanes
