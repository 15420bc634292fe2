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

// cmpOp is a primitive comparison. GE, GT and NE are derived from these by
// swapping operands or negating the result.
type cmpOp uint8

const (
	cmpLE cmpOp = iota
	cmpLT
	cmpEQ
)

func (op cmpOp) String() string {
	switch op {
	case cmpLE:
		return "le"
	case cmpLT:
		return "lt"
	default:
		return "eq"
	}
}

// The reference kernels below are the portable per-lane definition of every
// operation. The scalar tier runs them directly; every other tier is tested
// against them.

// refCompare compares the first n lanes of a and b and returns a full-vector
// mask image: all-ones where the comparison holds, zero elsewhere.
func refCompare(op cmpOp, k LaneKind, a, b *register, n int) (r register) {
	switch k {
	case KindInt8:
		compareLanes(op, a.i8()[:n], b.i8()[:n], r.i8()[:n])
	case KindUint8:
		compareLanes(op, a.u8()[:n], b.u8()[:n], r.u8()[:n])
	case KindInt16:
		compareLanes(op, a.i16()[:n], b.i16()[:n], r.i16()[:n])
	case KindUint16:
		compareLanes(op, a.u16()[:n], b.u16()[:n], r.u16()[:n])
	case KindInt32:
		compareLanes(op, a.i32()[:n], b.i32()[:n], r.i32()[:n])
	case KindUint32:
		compareLanes(op, a.u32()[:n], b.u32()[:n], r.u32()[:n])
	case KindInt64:
		compareLanes(op, a.i64()[:n], b.i64()[:n], r.i64()[:n])
	case KindUint64:
		compareLanes(op, a.u64()[:n], b.u64()[:n], r.u64()[:n])
	case KindFloat32:
		compareLanes(op, a.f32()[:n], b.f32()[:n], r.f32()[:n])
	case KindFloat64:
		compareLanes(op, a.f64()[:n], b.f64()[:n], r.f64()[:n])
	}
	return r
}

func compareLanes[T Lanes](op cmpOp, a, b, dst []T) {
	ones := allOnes[T]()
	for i := range dst {
		if compareScalar(op, a[i], b[i]) {
			dst[i] = ones
		}
	}
}

// compareScalar follows Go's comparison operators: any NaN operand makes
// the result false and -0 equals +0.
func compareScalar[T Lanes](op cmpOp, x, y T) bool {
	switch op {
	case cmpLE:
		return x <= y
	case cmpLT:
		return x < y
	default:
		return x == y
	}
}

// refBitselect computes (on & mask) | (off &^ mask) over one register.
func refBitselect(on, off, mask *register) (r register) {
	for i := 0; i < caps.RegisterBytes/8; i++ {
		r[i] = on[i]&mask[i] | off[i]&^mask[i]
	}
	return r
}

// refBlend picks lane i of on where the mask holds for lane i and lane i of
// off otherwise, for the first n lanes.
func refBlend(k LaneKind, on, off *register, m regMask, n int) (r register) {
	for i := 0; i < n; i++ {
		take := m.vec.lane(k, i) != 0
		if caps.PackedMasks {
			take = m.bits>>uint(i)&1 != 0
		}
		if take {
			r.setLane(k, i, on.lane(k, i))
		} else {
			r.setLane(k, i, off.lane(k, i))
		}
	}
	return r
}
