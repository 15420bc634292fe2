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

import "github.com/ajroetker/go-lanes/internal/caps"

// forEachRegister calls fn once per native register of an n-lane vector with
// the lane range [lo, hi) that register covers. The last range is short when
// n is not a multiple of perRegister; kernels see it zero-padded.
func forEachRegister(n, perRegister int, fn func(lo, hi int)) {
	for lo := 0; lo < n; lo += perRegister {
		fn(lo, min(lo+perRegister, n))
	}
}

// compareVec runs compareRegister over every register of a and b. Lanes of
// one register never influence another, so the result is the concatenation
// of the per-register results.
func compareVec[T Lanes, W Width](op cmpOp, a, b Vec[T, W]) Mask[T, W] {
	k := KindOf[T]()
	as, bs := a.slice(), b.slice()
	m := newMask[T, W]()
	forEachRegister(len(as), registerLanes(k), func(lo, hi int) {
		ra, rb := loadRegister(as[lo:hi]), loadRegister(bs[lo:hi])
		m.storeRegister(lo, hi, compareRegister(op, k, &ra, &rb))
	})
	return m
}

func bitselectVec[T Lanes, W Width](on, off, mask Vec[T, W]) Vec[T, W] {
	k := KindOf[T]()
	ons, offs, masks := on.slice(), off.slice(), mask.slice()
	out := make([]T, len(ons))
	forEachRegister(len(ons), registerLanes(k), func(lo, hi int) {
		ron, roff, rmask := loadRegister(ons[lo:hi]), loadRegister(offs[lo:hi]), loadRegister(masks[lo:hi])
		r := bitselectRegister(&ron, &roff, &rmask)
		storeRegister(out[lo:hi], &r)
	})
	return Vec[T, W]{data: out}
}

func blendVec[T Lanes, W Width](on, off Vec[T, W], m Mask[T, W]) Vec[T, W] {
	k := KindOf[T]()
	ons, offs := on.slice(), off.slice()
	out := make([]T, len(ons))
	forEachRegister(len(ons), registerLanes(k), func(lo, hi int) {
		ron, roff := loadRegister(ons[lo:hi]), loadRegister(offs[lo:hi])
		r := blendRegister(k, &ron, &roff, m.loadRegister(lo, hi))
		storeRegister(out[lo:hi], &r)
	})
	return Vec[T, W]{data: out}
}

// maskBitselectVec selects between two masks under a third. Packed masks
// combine as words, as kand/kandn/kor would; full-vector masks go through
// the vector bitselect kernel.
func maskBitselectVec[T Lanes, W Width](on, off, mask Mask[T, W]) Mask[T, W] {
	if caps.PackedMasks {
		x, y, s := on.Bits(), off.Bits(), mask.Bits()
		for i := range x {
			x[i] = x[i]&s[i] | y[i]&^s[i]
		}
		return MaskFromBits[T, W](x)
	}
	return Mask[T, W]{full: bitselectVec(on.ToVec(), off.ToVec(), mask.ToVec()).data}
}
