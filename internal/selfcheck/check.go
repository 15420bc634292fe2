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

package selfcheck

import (
	"math/rand/v2"
	"slices"
	"unsafe"

	"github.com/samber/lo"

	"github.com/ajroetker/go-lanes/lanes"
)

// checkKind runs one random input set of lane type T through every
// dispatched operation.
func checkKind[T lanes.Lanes, W lanes.Width](rec *recorder, rng *rand.Rand) {
	k := lanes.KindOf[T]()
	n := lanes.Zero[T, W]().NumLanes()
	a := lo.Times(n, func(int) T { return randomLane[T](rng) })
	b := lo.Times(n, func(i int) T {
		if rng.IntN(4) == 0 {
			return a[i]
		}
		return randomLane[T](rng)
	})
	sel := lo.Times(n, func(int) T { return randomLane[T](rng) })
	va, vb, vs := lanes.Load[W](a), lanes.Load[W](b), lanes.Load[W](sel)

	cmps := []struct {
		name string
		got  lanes.Mask[T, W]
		want func(x, y T) bool
	}{
		{"cmp_le", lanes.CmpLE(va, vb), func(x, y T) bool { return x <= y }},
		{"cmp_lt", lanes.CmpLT(va, vb), func(x, y T) bool { return x < y }},
		{"cmp_eq", lanes.CmpEQ(va, vb), func(x, y T) bool { return x == y }},
		{"cmp_ge", lanes.CmpGE(va, vb), func(x, y T) bool { return x >= y }},
		{"cmp_gt", lanes.CmpGT(va, vb), func(x, y T) bool { return x > y }},
		{"cmp_ne", lanes.CmpNE(va, vb), func(x, y T) bool { return x != y }},
	}
	for _, c := range cmps {
		for i := 0; i < n; i++ {
			if got, want := c.got.Lane(i), c.want(a[i], b[i]); got != want {
				rec.fail(c.name, k, i, got, want)
			}
		}
	}

	bs := lanes.BitSelect(va, vb, vs)
	for i := 0; i < n; i++ {
		want := bitsOf(a[i])&bitsOf(sel[i]) | bitsOf(b[i])&^bitsOf(sel[i])
		if got := bitsOf(bs.Lane(i)); got != want {
			rec.fail("bitselect", k, i, got, want)
		}
	}

	lt := cmps[1].got
	blend := lanes.BitSelectMask(va, vb, lt)
	for i := 0; i < n; i++ {
		want := b[i]
		if a[i] < b[i] {
			want = a[i]
		}
		if got := blend.Lane(i); bitsOf(got) != bitsOf(want) {
			rec.fail("bitselect_mask", k, i, got, want)
		}
	}

	le, eq := cmps[0].got, cmps[2].got
	mbs := lanes.MaskBitSelect(le, eq, lt)
	for i := 0; i < n; i++ {
		want := eq.Lane(i)
		if lt.Lane(i) {
			want = le.Lane(i)
		}
		if got := mbs.Lane(i); got != want {
			rec.fail("mask_bitselect", k, i, got, want)
		}
	}

	bools := le.Bools()
	if got := lanes.MaskFromBits[T, W](le.Bits()).Bools(); !slices.Equal(got, bools) {
		rec.fail("mask_bits_roundtrip", k, -1, got, bools)
	}
	if got := lanes.MaskFromVec(le.ToVec()).Bools(); !slices.Equal(got, bools) {
		rec.fail("mask_vec_roundtrip", k, -1, got, bools)
	}
	rec.checks++
}

// randomLane returns random bits for T, or one of the edge values of its
// kind one time in eight.
func randomLane[T lanes.Lanes](rng *rand.Rand) T {
	var x T
	size := int(unsafe.Sizeof(x))
	if rng.IntN(8) == 0 {
		e := edgeBits(lanes.KindOf[T]())
		return fromBits[T](e[rng.IntN(len(e))])
	}
	return fromBits[T](rng.Uint64() & (^uint64(0) >> (64 - 8*size)))
}

// edgeBits returns bit patterns for zero, all-ones, the sign bit and the
// largest signed value, plus infinities, negative zero and a quiet NaN for
// float kinds.
func edgeBits(k lanes.LaneKind) []uint64 {
	bits := uint(8 * k.Size())
	all := ^uint64(0) >> (64 - bits)
	sign := uint64(1) << (bits - 1)
	out := []uint64{0, 1, all, sign, sign - 1}
	switch k {
	case lanes.KindFloat32:
		out = append(out, 0x7F800000, 0xFF800000, 0x7FC00000, 0x80000000)
	case lanes.KindFloat64:
		out = append(out, 0x7FF0000000000000, 0xFFF0000000000000, 0x7FF8000000000000, 1<<63)
	}
	return out
}

func fromBits[T lanes.Lanes](u uint64) T {
	var x T
	p := unsafe.Pointer(&x)
	switch unsafe.Sizeof(x) {
	case 1:
		*(*uint8)(p) = uint8(u)
	case 2:
		*(*uint16)(p) = uint16(u)
	case 4:
		*(*uint32)(p) = uint32(u)
	default:
		*(*uint64)(p) = u
	}
	return x
}

func bitsOf[T lanes.Lanes](x T) uint64 {
	p := unsafe.Pointer(&x)
	switch unsafe.Sizeof(x) {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	default:
		return *(*uint64)(p)
	}
}
