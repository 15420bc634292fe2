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

//go:build amd64 && !purego && goexperiment.simd && amd64.v3 && !amd64.v4

package lanes

import (
	"math"
	"simd/archsimd"

	"github.com/ajroetker/go-lanes/internal/caps"
)

const backendTier = caps.TierAVX2

// Fails to compile unless the caps tier file matches this one.
var _ = [1]struct{}{}[backendTier-caps.Active]

var (
	avx2Ones32 = archsimd.BroadcastInt32x8(-1)
	avx2Zero32 = archsimd.BroadcastInt32x8(0)
	avx2Bias32 = archsimd.BroadcastInt32x8(math.MinInt32)
	avx2Ones64 = archsimd.BroadcastInt64x4(-1)
	avx2Zero64 = archsimd.BroadcastInt64x4(0)
	avx2Bias64 = archsimd.BroadcastInt64x4(math.MinInt64)
)

func compareRegister(op cmpOp, k LaneKind, a, b *register) regMask {
	var r regMask
	switch k {
	case KindInt32, KindUint32:
		x, y := archsimd.LoadInt32x8Slice(a.i32()[:8]), archsimd.LoadInt32x8Slice(b.i32()[:8])
		if k == KindUint32 {
			x, y = x.Xor(avx2Bias32), y.Xor(avx2Bias32)
		}
		m, negated := compareInt32x8(op, x, y)
		maskToInt32x8(m, negated).StoreSlice(r.vec.i32()[:8])
	case KindInt64, KindUint64:
		x, y := archsimd.LoadInt64x4Slice(a.i64()[:4]), archsimd.LoadInt64x4Slice(b.i64()[:4])
		if k == KindUint64 {
			x, y = x.Xor(avx2Bias64), y.Xor(avx2Bias64)
		}
		m, negated := compareInt64x4(op, x, y)
		maskToInt64x4(m, negated).StoreSlice(r.vec.i64()[:4])
	case KindFloat32:
		x, y := archsimd.LoadFloat32x8Slice(a.f32()[:8]), archsimd.LoadFloat32x8Slice(b.f32()[:8])
		var m archsimd.Mask32x8
		switch op {
		case cmpLE:
			m = x.LessEqual(y)
		case cmpLT:
			m = x.Less(y)
		default:
			m = x.Equal(y)
		}
		maskToInt32x8(m, false).StoreSlice(r.vec.i32()[:8])
	case KindFloat64:
		x, y := archsimd.LoadFloat64x4Slice(a.f64()[:4]), archsimd.LoadFloat64x4Slice(b.f64()[:4])
		var m archsimd.Mask64x4
		switch op {
		case cmpLE:
			m = x.LessEqual(y)
		case cmpLT:
			m = x.Less(y)
		default:
			m = x.Equal(y)
		}
		maskToInt64x4(m, false).StoreSlice(r.vec.i64()[:4])
	default:
		// 8- and 16-bit lanes run as two 128-bit halves.
		r.vec = compareParts(op, k, a, b, caps.RegisterBytes)
	}
	return r
}

// compareInt32x8 returns a mask m and whether the result is the negation
// of m. Integer LE has no direct instruction; it is NOT(a > b).
func compareInt32x8(op cmpOp, x, y archsimd.Int32x8) (archsimd.Mask32x8, bool) {
	switch op {
	case cmpLE:
		return x.Greater(y), true
	case cmpLT:
		return x.Less(y), false
	default:
		return x.Equal(y), false
	}
}

func compareInt64x4(op cmpOp, x, y archsimd.Int64x4) (archsimd.Mask64x4, bool) {
	switch op {
	case cmpLE:
		return x.Greater(y), true
	case cmpLT:
		return x.Less(y), false
	default:
		return x.Equal(y), false
	}
}

func maskToInt32x8(m archsimd.Mask32x8, negated bool) archsimd.Int32x8 {
	if negated {
		return avx2Zero32.Merge(avx2Ones32, m)
	}
	return avx2Ones32.Merge(avx2Zero32, m)
}

func maskToInt64x4(m archsimd.Mask64x4, negated bool) archsimd.Int64x4 {
	if negated {
		return avx2Zero64.Merge(avx2Ones64, m)
	}
	return avx2Ones64.Merge(avx2Zero64, m)
}

func bitselectRegister(on, off, mask *register) (r register) {
	x := archsimd.LoadInt32x8Slice(on.i32()[:8])
	y := archsimd.LoadInt32x8Slice(off.i32()[:8])
	m := archsimd.LoadInt32x8Slice(mask.i32()[:8])
	x.And(m).Or(y.AndNot(m)).StoreSlice(r.i32()[:8])
	return r
}

// blendRegister treats the full-vector mask as a bitselect selector.
func blendRegister(k LaneKind, on, off *register, m regMask) register {
	return bitselectRegister(on, off, &m.vec)
}

func describe(op Op, k LaneKind) (Policy, string) {
	switch op {
	case OpBitSelect, OpBitSelectMask, OpMaskBitSelect:
		return PolicyComposed, "vpand/vpandn/vpor"
	}
	c := op.cmp()
	switch k {
	case KindFloat32, KindFloat64:
		suffix := "ps"
		if k == KindFloat64 {
			suffix = "pd"
		}
		return PolicyNative, "vcmp" + c.String() + suffix
	case KindInt32, KindUint32, KindInt64, KindUint64:
		suffix := "d"
		if k.Size() == 8 {
			suffix = "q"
		}
		prim := "vpcmpgt" + suffix
		if c == cmpEQ {
			prim = "vpcmpeq" + suffix
		}
		if !k.IsSigned() && c != cmpEQ {
			prim = "vpxor bias + " + prim
		}
		if c == cmpLE {
			prim += " + vpblendv"
		}
		if prim == "vpcmpgt"+suffix || prim == "vpcmpeq"+suffix {
			return PolicyNative, prim
		}
		return PolicyComposed, prim
	}
	_, prim := sse2Primitive(c, k)
	return PolicyNarrower, "2x " + prim
}
