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

// Comparisons return a Mask with one boolean per lane. Float comparisons are
// IEEE ordered: a NaN operand makes every comparison false except CmpNE,
// which is true. -0 and +0 compare equal.

// CmpLE returns a mask of a[i] <= b[i].
func CmpLE[T Lanes, W Width](a, b Vec[T, W]) Mask[T, W] {
	return compareVec(cmpLE, a, b)
}

// CmpLT returns a mask of a[i] < b[i].
func CmpLT[T Lanes, W Width](a, b Vec[T, W]) Mask[T, W] {
	return compareVec(cmpLT, a, b)
}

// CmpEQ returns a mask of a[i] == b[i].
func CmpEQ[T Lanes, W Width](a, b Vec[T, W]) Mask[T, W] {
	return compareVec(cmpEQ, a, b)
}

// CmpGE returns a mask of a[i] >= b[i].
func CmpGE[T Lanes, W Width](a, b Vec[T, W]) Mask[T, W] {
	return compareVec(cmpLE, b, a)
}

// CmpGT returns a mask of a[i] > b[i].
func CmpGT[T Lanes, W Width](a, b Vec[T, W]) Mask[T, W] {
	return compareVec(cmpLT, b, a)
}

// CmpNE returns a mask of a[i] != b[i]. It is true where either lane is NaN.
func CmpNE[T Lanes, W Width](a, b Vec[T, W]) Mask[T, W] {
	return MaskNot(compareVec(cmpEQ, a, b))
}

// CmpLEScalar returns a mask of v[i] <= s.
func CmpLEScalar[T Lanes, W Width](v Vec[T, W], s T) Mask[T, W] {
	return CmpLE(v, Splat[W](s))
}

// ScalarCmpLE returns a mask of s <= v[i].
func ScalarCmpLE[T Lanes, W Width](s T, v Vec[T, W]) Mask[T, W] {
	return CmpLE(Splat[W](s), v)
}

// CmpLTScalar returns a mask of v[i] < s.
func CmpLTScalar[T Lanes, W Width](v Vec[T, W], s T) Mask[T, W] {
	return CmpLT(v, Splat[W](s))
}

// ScalarCmpLT returns a mask of s < v[i].
func ScalarCmpLT[T Lanes, W Width](s T, v Vec[T, W]) Mask[T, W] {
	return CmpLT(Splat[W](s), v)
}

// CmpEQScalar returns a mask of v[i] == s.
func CmpEQScalar[T Lanes, W Width](v Vec[T, W], s T) Mask[T, W] {
	return CmpEQ(v, Splat[W](s))
}

// ScalarCmpEQ returns a mask of s == v[i].
func ScalarCmpEQ[T Lanes, W Width](s T, v Vec[T, W]) Mask[T, W] {
	return CmpEQ(Splat[W](s), v)
}

// CmpGEScalar returns a mask of v[i] >= s.
func CmpGEScalar[T Lanes, W Width](v Vec[T, W], s T) Mask[T, W] {
	return CmpGE(v, Splat[W](s))
}

// ScalarCmpGE returns a mask of s >= v[i].
func ScalarCmpGE[T Lanes, W Width](s T, v Vec[T, W]) Mask[T, W] {
	return CmpGE(Splat[W](s), v)
}

// CmpGTScalar returns a mask of v[i] > s.
func CmpGTScalar[T Lanes, W Width](v Vec[T, W], s T) Mask[T, W] {
	return CmpGT(v, Splat[W](s))
}

// ScalarCmpGT returns a mask of s > v[i].
func ScalarCmpGT[T Lanes, W Width](s T, v Vec[T, W]) Mask[T, W] {
	return CmpGT(Splat[W](s), v)
}

// CmpNEScalar returns a mask of v[i] != s.
func CmpNEScalar[T Lanes, W Width](v Vec[T, W], s T) Mask[T, W] {
	return CmpNE(v, Splat[W](s))
}

// ScalarCmpNE returns a mask of s != v[i].
func ScalarCmpNE[T Lanes, W Width](s T, v Vec[T, W]) Mask[T, W] {
	return CmpNE(Splat[W](s), v)
}
