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

//go:build arm64 && !purego

package lanes

// 128-bit kernels in neon_arm64.s.

//go:noescape
func bitselectNEON(dst, on, off, mask *register)

//go:noescape
func cmpeqBNEON(dst, a, b *register)

//go:noescape
func cmpeqHNEON(dst, a, b *register)

//go:noescape
func cmpeqSNEON(dst, a, b *register)

// The kernels below store all-ones lanes where a >= b (ge, hs), a > b
// (gt, hi) or a == b (eq) holds. ge and gt are signed, hs and hi unsigned.

//go:noescape
func cmpgeBNEON(dst, a, b *register)

//go:noescape
func cmpgeHNEON(dst, a, b *register)

//go:noescape
func cmpgeSNEON(dst, a, b *register)

//go:noescape
func cmpgeDNEON(dst, a, b *register)

//go:noescape
func cmpgtBNEON(dst, a, b *register)

//go:noescape
func cmpgtHNEON(dst, a, b *register)

//go:noescape
func cmpgtSNEON(dst, a, b *register)

//go:noescape
func cmpgtDNEON(dst, a, b *register)

//go:noescape
func cmphsBNEON(dst, a, b *register)

//go:noescape
func cmphsHNEON(dst, a, b *register)

//go:noescape
func cmphsSNEON(dst, a, b *register)

//go:noescape
func cmphsDNEON(dst, a, b *register)

//go:noescape
func cmphiBNEON(dst, a, b *register)

//go:noescape
func cmphiHNEON(dst, a, b *register)

//go:noescape
func cmphiSNEON(dst, a, b *register)

//go:noescape
func cmphiDNEON(dst, a, b *register)

//go:noescape
func cmpeqDNEON(dst, a, b *register)

//go:noescape
func fcmgeSNEON(dst, a, b *register)

//go:noescape
func fcmgeDNEON(dst, a, b *register)

//go:noescape
func fcmgtSNEON(dst, a, b *register)

//go:noescape
func fcmgtDNEON(dst, a, b *register)

//go:noescape
func fcmeqSNEON(dst, a, b *register)

//go:noescape
func fcmeqDNEON(dst, a, b *register)
