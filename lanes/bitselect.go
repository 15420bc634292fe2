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

// BitSelect returns (on & mask) | (off &^ mask), bit by bit. mask need not
// be a canonical mask; every bit selects independently.
func BitSelect[T Lanes, W Width](on, off, mask Vec[T, W]) Vec[T, W] {
	return bitselectVec(on, off, mask)
}

// BitSelectMask returns on[i] where m is true and off[i] elsewhere.
func BitSelectMask[T Lanes, W Width](on, off Vec[T, W], m Mask[T, W]) Vec[T, W] {
	return blendVec(on, off, m)
}

// MaskBitSelect returns on where mask is true and off elsewhere.
func MaskBitSelect[T Lanes, W Width](on, off, mask Mask[T, W]) Mask[T, W] {
	return maskBitselectVec(on, off, mask)
}

// BitSelectScalar is BitSelectMask with both sources broadcast from scalars.
func BitSelectScalar[T Lanes, W Width](on, off T, m Mask[T, W]) Vec[T, W] {
	return blendVec(Splat[W](on), Splat[W](off), m)
}

// IfThenElseZero returns v[i] where m is true and zero elsewhere.
func IfThenElseZero[T Lanes, W Width](m Mask[T, W], v Vec[T, W]) Vec[T, W] {
	return blendVec(v, Zero[T, W](), m)
}

// IfThenZeroElse returns zero where m is true and v[i] elsewhere.
func IfThenZeroElse[T Lanes, W Width](m Mask[T, W], v Vec[T, W]) Vec[T, W] {
	return blendVec(Zero[T, W](), v, m)
}

// And returns a & b on the lane bits.
func And[T Lanes, W Width](a, b Vec[T, W]) Vec[T, W] {
	return bitwise(a, b, func(x, y byte) byte { return x & y })
}

// Or returns a | b on the lane bits.
func Or[T Lanes, W Width](a, b Vec[T, W]) Vec[T, W] {
	return bitwise(a, b, func(x, y byte) byte { return x | y })
}

// Xor returns a ^ b on the lane bits.
func Xor[T Lanes, W Width](a, b Vec[T, W]) Vec[T, W] {
	return bitwise(a, b, func(x, y byte) byte { return x ^ y })
}

// AndNot returns a &^ b on the lane bits.
func AndNot[T Lanes, W Width](a, b Vec[T, W]) Vec[T, W] {
	return bitwise(a, b, func(x, y byte) byte { return x &^ y })
}

// Not returns ^v on the lane bits.
func Not[T Lanes, W Width](v Vec[T, W]) Vec[T, W] {
	return bitwise(v, v, func(x, _ byte) byte { return ^x })
}

func bitwise[T Lanes, W Width](a, b Vec[T, W], f func(x, y byte) byte) Vec[T, W] {
	out := make([]T, widthOf[W]())
	dst, x, y := bytesOf(out), bytesOf(a.slice()), bytesOf(b.slice())
	for i := range dst {
		dst[i] = f(x[i], y[i])
	}
	return Vec[T, W]{data: out}
}
