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

//go:build amd64 && !purego && goexperiment.simd && amd64.v4

package lanes

import (
	"math"
	"simd/archsimd"

	"github.com/ajroetker/go-lanes/internal/caps"
)

const backendTier = caps.TierAVX512

// Fails to compile unless the caps tier file matches this one.
var _ = [1]struct{}{}[backendTier-caps.Active]

var (
	avx512Bias32 = archsimd.BroadcastInt32x16(math.MinInt32)
	avx512Bias64 = archsimd.BroadcastInt64x8(math.MinInt64)
)

// compareRegister leaves its result in predicate form (regMask.bits).
func compareRegister(op cmpOp, k LaneKind, a, b *register) regMask {
	n := registerLanes(k)
	switch k {
	case KindInt32, KindUint32:
		x, y := archsimd.LoadInt32x16Slice(a.i32()[:]), archsimd.LoadInt32x16Slice(b.i32()[:])
		if k == KindUint32 {
			x, y = x.Xor(avx512Bias32), y.Xor(avx512Bias32)
		}
		var bits uint64
		switch op {
		case cmpLE:
			bits = ^uint64(x.Greater(y).ToBits())
		case cmpLT:
			bits = uint64(x.Less(y).ToBits())
		default:
			bits = uint64(x.Equal(y).ToBits())
		}
		return regMask{bits: bits & laneMask(n)}
	case KindInt64, KindUint64:
		x, y := archsimd.LoadInt64x8Slice(a.i64()[:]), archsimd.LoadInt64x8Slice(b.i64()[:])
		if k == KindUint64 {
			x, y = x.Xor(avx512Bias64), y.Xor(avx512Bias64)
		}
		var bits uint64
		switch op {
		case cmpLE:
			bits = ^uint64(x.Greater(y).ToBits())
		case cmpLT:
			bits = uint64(x.Less(y).ToBits())
		default:
			bits = uint64(x.Equal(y).ToBits())
		}
		return regMask{bits: bits & laneMask(n)}
	case KindFloat32:
		x, y := archsimd.LoadFloat32x16Slice(a.f32()[:]), archsimd.LoadFloat32x16Slice(b.f32()[:])
		var m archsimd.Mask32x16
		switch op {
		case cmpLE:
			m = x.LessEqual(y)
		case cmpLT:
			m = x.Less(y)
		default:
			m = x.Equal(y)
		}
		return regMask{bits: uint64(m.ToBits())}
	case KindFloat64:
		x, y := archsimd.LoadFloat64x8Slice(a.f64()[:]), archsimd.LoadFloat64x8Slice(b.f64()[:])
		var m archsimd.Mask64x8
		switch op {
		case cmpLE:
			m = x.LessEqual(y)
		case cmpLT:
			m = x.Less(y)
		default:
			m = x.Equal(y)
		}
		return regMask{bits: uint64(m.ToBits())}
	}
	// 8- and 16-bit lanes run as four 128-bit quarters; the full-vector
	// result is then packed into predicate form.
	full := compareParts(op, k, a, b, caps.RegisterBytes)
	return regMask{bits: packRegister(k, &full, n)}
}

// bitselectTernlog is a single vpternlogd; see avx512_amd64.s.
//
//go:noescape
func bitselectTernlog(dst, on, off, mask *register)

func bitselectRegister(on, off, mask *register) (r register) {
	if caps.HasTernaryLogic {
		bitselectTernlog(&r, on, off, mask)
		return r
	}
	x := archsimd.LoadInt32x16Slice(on.i32()[:])
	y := archsimd.LoadInt32x16Slice(off.i32()[:])
	m := archsimd.LoadInt32x16Slice(mask.i32()[:])
	x.And(m).Or(y.AndNot(m)).StoreSlice(r.i32()[:])
	return r
}

// blendRegister selects with a predicate directly for 32- and 64-bit lanes
// when the tier has a mask blend. Otherwise the predicate is expanded to a
// full-vector selector first.
func blendRegister(k LaneKind, on, off *register, m regMask) (r register) {
	if caps.HasMaskBlend {
		switch k.Size() {
		case 4:
			x, y := archsimd.LoadInt32x16Slice(on.i32()[:]), archsimd.LoadInt32x16Slice(off.i32()[:])
			x.Merge(y, archsimd.Mask32x16FromBits(uint16(m.bits))).StoreSlice(r.i32()[:])
			return r
		case 8:
			x, y := archsimd.LoadInt64x8Slice(on.i64()[:]), archsimd.LoadInt64x8Slice(off.i64()[:])
			x.Merge(y, archsimd.Mask64x8FromBits(uint8(m.bits))).StoreSlice(r.i64()[:])
			return r
		}
	}
	full := expandRegister(k, m.bits, registerLanes(k))
	return bitselectRegister(on, off, &full)
}

func describe(op Op, k LaneKind) (Policy, string) {
	bitselect, bitselectPolicy := "vpandd/vpandnd/vpord", PolicyComposed
	if caps.HasTernaryLogic {
		bitselect, bitselectPolicy = "vpternlogd 0xe4", PolicyNative
	}
	switch op {
	case OpBitSelect:
		return bitselectPolicy, bitselect
	case OpMaskBitSelect:
		return PolicyComposed, "kand/kandn/kor"
	case OpBitSelectMask:
		if caps.HasMaskBlend {
			switch k.Size() {
			case 4:
				return PolicyNative, "vpblendmd"
			case 8:
				return PolicyNative, "vpblendmq"
			}
		}
		return PolicyComposed, "mask expand + " + bitselect
	}
	c := op.cmp()
	switch k {
	case KindFloat32, KindFloat64:
		suffix := "ps"
		if k == KindFloat64 {
			suffix = "pd"
		}
		return PolicyNative, "vcmp" + c.String() + suffix + " -> k"
	case KindInt32, KindUint32, KindInt64, KindUint64:
		suffix := "d"
		if k.Size() == 8 {
			suffix = "q"
		}
		prim := "vpcmpgt" + suffix + " -> k"
		if c == cmpEQ {
			prim = "vpcmpeq" + suffix + " -> k"
		}
		if !k.IsSigned() && c != cmpEQ {
			return PolicyComposed, "vpxord bias + " + prim
		}
		if c == cmpLE {
			return PolicyComposed, prim + " + knot"
		}
		return PolicyNative, prim
	}
	_, prim := sse2Primitive(c, k)
	return PolicyNarrower, "4x " + prim + " + pack"
}
