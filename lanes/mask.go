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

package lanes

import (
	"math/bits"

	"github.com/ajroetker/go-lanes/internal/caps"
)

// Mask holds one boolean per lane of a Vec[T, W], typically the result of a
// comparison.
//
// The physical encoding depends on the build tier. Full-vector tiers store a
// lane of T per boolean, all-ones for true and zero for false. The AVX-512
// tier stores one bit per lane, lane i at bit i%64 of word i/64, the way its
// predicate registers hold comparison results. The logical booleans are the
// same for every encoding; Bits, ToVec and their inverses convert between
// forms exactly.
//
// The zero value has every lane false.
type Mask[T Lanes, W Width] struct {
	full   []T
	packed []uint64
}

func newMask[T Lanes, W Width]() Mask[T, W] {
	n := widthOf[W]()
	if caps.PackedMasks {
		return Mask[T, W]{packed: make([]uint64, wordsFor(n))}
	}
	return Mask[T, W]{full: make([]T, n)}
}

func wordsFor(n int) int {
	return (n + 63) / 64
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T, W]) NumLanes() int {
	return widthOf[W]()
}

// Packed reports whether the mask is stored as one bit per lane.
func (m Mask[T, W]) Packed() bool {
	return caps.PackedMasks
}

// Lane reports whether lane i is true. It panics if i is out of range.
func (m Mask[T, W]) Lane(i int) bool {
	if uint(i) >= uint(m.NumLanes()) {
		panic("lanes: mask lane index out of range")
	}
	switch {
	case m.packed != nil:
		return m.packed[i/64]>>uint(i%64)&1 != 0
	case m.full != nil:
		return laneBits(m.full[i]) != 0
	}
	return false
}

// Bools returns the per-lane booleans.
func (m Mask[T, W]) Bools() []bool {
	out := make([]bool, m.NumLanes())
	for i := range out {
		out[i] = m.Lane(i)
	}
	return out
}

// AllTrue returns true if every lane is true.
func (m Mask[T, W]) AllTrue() bool {
	return m.CountTrue() == m.NumLanes()
}

// AnyTrue returns true if at least one lane is true.
func (m Mask[T, W]) AnyTrue() bool {
	return m.CountTrue() > 0
}

// CountTrue returns the number of true lanes.
func (m Mask[T, W]) CountTrue() int {
	count := 0
	for _, w := range m.Bits() {
		count += bits.OnesCount64(w)
	}
	return count
}

// Bits returns the mask packed one bit per lane: lane i at bit i%64 of word
// i/64. Bits past NumLanes are zero.
func (m Mask[T, W]) Bits() []uint64 {
	n := m.NumLanes()
	if m.packed != nil {
		out := make([]uint64, wordsFor(n))
		copy(out, m.packed)
		return out
	}
	if m.full != nil {
		return packFull(m.full)
	}
	return make([]uint64, wordsFor(n))
}

// ToVec returns the full-vector form: all-ones lanes where the mask is true
// and zero lanes elsewhere. Float lanes that are true hold a NaN bit pattern.
func (m Mask[T, W]) ToVec() Vec[T, W] {
	n := m.NumLanes()
	switch {
	case m.full != nil:
		data := make([]T, n)
		copy(data, m.full)
		return Vec[T, W]{data: data}
	case m.packed != nil:
		return Vec[T, W]{data: expandPacked[T](m.packed, n)}
	}
	return Zero[T, W]()
}

// MaskFromVec returns a mask that is true for every nonzero lane of v.
// Lanes holding -0.0 are nonzero.
func MaskFromVec[T Lanes, W Width](v Vec[T, W]) Mask[T, W] {
	full := canonicalFull(v.slice())
	if caps.PackedMasks {
		return Mask[T, W]{packed: packFull(full)}
	}
	return Mask[T, W]{full: full}
}

// MaskFromBits is the inverse of Mask.Bits. Missing words read as zero and
// bits past the width are ignored.
func MaskFromBits[T Lanes, W Width](bits []uint64) Mask[T, W] {
	n := widthOf[W]()
	words := make([]uint64, wordsFor(n))
	copy(words, bits)
	if r := n % 64; r != 0 {
		words[len(words)-1] &= laneMask(r)
	}
	if caps.PackedMasks {
		return Mask[T, W]{packed: words}
	}
	return Mask[T, W]{full: expandPacked[T](words, n)}
}

// MaskFromBools returns a mask with lane i set to b[i]. Lanes past len(b)
// are false.
func MaskFromBools[T Lanes, W Width](b []bool) Mask[T, W] {
	n := widthOf[W]()
	words := make([]uint64, wordsFor(n))
	for i := 0; i < n && i < len(b); i++ {
		if b[i] {
			words[i/64] |= 1 << uint(i%64)
		}
	}
	return MaskFromBits[T, W](words)
}

// FirstN returns a mask with the first n lanes true.
func FirstN[T Lanes, W Width](n int) Mask[T, W] {
	width := widthOf[W]()
	n = max(0, min(n, width))
	words := make([]uint64, wordsFor(width))
	for i := 0; n > 0; i++ {
		words[i] = laneMask(n)
		n -= 64
	}
	return MaskFromBits[T, W](words)
}

// MaskAnd returns a & b.
func MaskAnd[T Lanes, W Width](a, b Mask[T, W]) Mask[T, W] {
	return maskCombine(a, b, func(x, y uint64) uint64 { return x & y })
}

// MaskOr returns a | b.
func MaskOr[T Lanes, W Width](a, b Mask[T, W]) Mask[T, W] {
	return maskCombine(a, b, func(x, y uint64) uint64 { return x | y })
}

// MaskXor returns a ^ b.
func MaskXor[T Lanes, W Width](a, b Mask[T, W]) Mask[T, W] {
	return maskCombine(a, b, func(x, y uint64) uint64 { return x ^ y })
}

// MaskAndNot returns a &^ b.
func MaskAndNot[T Lanes, W Width](a, b Mask[T, W]) Mask[T, W] {
	return maskCombine(a, b, func(x, y uint64) uint64 { return x &^ y })
}

// MaskNot returns the lane-wise negation of m.
func MaskNot[T Lanes, W Width](m Mask[T, W]) Mask[T, W] {
	words := m.Bits()
	for i := range words {
		words[i] = ^words[i]
	}
	return MaskFromBits[T, W](words)
}

// maskCombine applies f to the packed words of a and b. Canonical masks
// combine the same way in either encoding, so the packed form is enough.
func maskCombine[T Lanes, W Width](a, b Mask[T, W], f func(x, y uint64) uint64) Mask[T, W] {
	x, y := a.Bits(), b.Bits()
	for i := range x {
		x[i] = f(x[i], y[i])
	}
	return MaskFromBits[T, W](x)
}

// loadRegister returns lanes [lo, hi) of m as a per-register mask.
func (m Mask[T, W]) loadRegister(lo, hi int) regMask {
	var rm regMask
	switch {
	case m.packed != nil:
		rm.bits = bitField(m.packed, lo, hi-lo)
	case m.full != nil:
		rm.vec = loadRegister(m.full[lo:hi])
	}
	return rm
}

// storeRegister writes a per-register mask into lanes [lo, hi) of m, which
// must come from newMask.
func (m Mask[T, W]) storeRegister(lo, hi int, rm regMask) {
	if caps.PackedMasks {
		setBitField(m.packed, lo, hi-lo, rm.bits)
		return
	}
	storeRegister(m.full[lo:hi], &rm.vec)
}

// Mask normalization. The helpers below convert between the full-vector and
// packed encodings one register at a time.

// packRegister returns bit i set for each nonzero lane i < n of r.
func packRegister(k LaneKind, r *register, n int) uint64 {
	var out uint64
	for i := 0; i < n; i++ {
		if r.lane(k, i) != 0 {
			out |= 1 << uint(i)
		}
	}
	return out
}

// expandRegister returns an all-ones lane for each set bit i < n of b.
func expandRegister(k LaneKind, b uint64, n int) (r register) {
	ones := laneMask(8 * k.Size())
	for i := 0; i < n; i++ {
		if b>>uint(i)&1 != 0 {
			r.setLane(k, i, ones)
		}
	}
	return r
}

// packFull packs a full-vector mask into words.
func packFull[T Lanes](full []T) []uint64 {
	k := KindOf[T]()
	words := make([]uint64, wordsFor(len(full)))
	forEachRegister(len(full), registerLanes(k), func(lo, hi int) {
		r := loadRegister(full[lo:hi])
		setBitField(words, lo, hi-lo, packRegister(k, &r, hi-lo))
	})
	return words
}

// expandPacked expands the first n bits of words into a full-vector mask.
func expandPacked[T Lanes](words []uint64, n int) []T {
	k := KindOf[T]()
	out := make([]T, n)
	forEachRegister(n, registerLanes(k), func(lo, hi int) {
		r := expandRegister(k, bitField(words, lo, hi-lo), hi-lo)
		storeRegister(out[lo:hi], &r)
	})
	return out
}

// canonicalFull maps every nonzero lane to all-ones.
func canonicalFull[T Lanes](v []T) []T {
	ones := allOnes[T]()
	out := make([]T, len(v))
	for i, x := range v {
		if laneBits(x) != 0 {
			out[i] = ones
		}
	}
	return out
}

// bitField returns bits [lo, lo+n) of words, n <= 64. Missing words read as
// zero.
func bitField(words []uint64, lo, n int) uint64 {
	w, s := lo/64, uint(lo%64)
	var out uint64
	if w < len(words) {
		out = words[w] >> s
	}
	if s != 0 && int(s)+n > 64 && w+1 < len(words) {
		out |= words[w+1] << (64 - s)
	}
	return out & laneMask(n)
}

// setBitField ORs the low n bits of b into bits [lo, lo+n) of words.
func setBitField(words []uint64, lo, n int, b uint64) {
	b &= laneMask(n)
	w, s := lo/64, uint(lo%64)
	words[w] |= b << s
	if s != 0 && int(s)+n > 64 {
		words[w+1] |= b >> (64 - s)
	}
}
