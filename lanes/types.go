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
	"reflect"
	"unsafe"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// LaneKind identifies the element type of a vector independently of any
// named type built on it.
type LaneKind uint8

const (
	KindInt8 LaneKind = iota
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
)

// LaneKinds lists every lane kind in declaration order.
var LaneKinds = []LaneKind{
	KindInt8, KindUint8, KindInt16, KindUint16, KindInt32,
	KindUint32, KindInt64, KindUint64, KindFloat32, KindFloat64,
}

// Size returns the lane size in bytes.
func (k LaneKind) Size() int {
	switch k {
	case KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	default:
		return 8
	}
}

func (k LaneKind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsSigned reports whether the kind is a signed integer or a float.
func (k LaneKind) IsSigned() bool {
	switch k {
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return false
	}
	return true
}

func (k LaneKind) String() string {
	switch k {
	case KindInt8:
		return "int8"
	case KindUint8:
		return "uint8"
	case KindInt16:
		return "int16"
	case KindUint16:
		return "uint16"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return "unknown"
	}
}

// ParseLaneKind returns the kind named s, as printed by String.
func ParseLaneKind(s string) (LaneKind, bool) {
	for _, k := range LaneKinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// KindOf returns the lane kind of T. Named types report their underlying kind.
func KindOf[T Lanes]() LaneKind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		return KindInt8
	case reflect.Uint8:
		return KindUint8
	case reflect.Int16:
		return KindInt16
	case reflect.Uint16:
		return KindUint16
	case reflect.Int32:
		return KindInt32
	case reflect.Uint32:
		return KindUint32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	default:
		return KindFloat64
	}
}

// laneBits returns the raw bits of x, zero-extended.
func laneBits[T Lanes](x T) uint64 {
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

// allOnes returns the lane value with every bit set. For floats this is a
// NaN bit pattern.
func allOnes[T Lanes]() T {
	var x T
	b := unsafe.Slice((*byte)(unsafe.Pointer(&x)), unsafe.Sizeof(x))
	for i := range b {
		b[i] = 0xFF
	}
	return x
}
