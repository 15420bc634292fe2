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

// Vec is an immutable vector of W.N() lanes of T.
//
// The zero value has every lane zero. Create vectors with Load, LoadN,
// Splat or Zero.
type Vec[T Lanes, W Width] struct {
	// data is nil for the zero value, otherwise len(data) == W.N().
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T, W]) NumLanes() int {
	return widthOf[W]()
}

// Lane returns lane i. It panics if i is out of range.
func (v Vec[T, W]) Lane(i int) T {
	return v.slice()[i]
}

// Data returns a copy of the lanes.
func (v Vec[T, W]) Data() []T {
	out := make([]T, v.NumLanes())
	copy(out, v.data)
	return out
}

// Store writes min(len(dst), NumLanes()) lanes to dst.
func (v Vec[T, W]) Store(dst []T) {
	copy(dst, v.slice())
}

// slice returns the lanes without copying. Callers must not modify it.
func (v Vec[T, W]) slice() []T {
	if v.data == nil {
		return make([]T, widthOf[W]())
	}
	return v.data
}

// Load returns a vector holding src[:W.N()]. It panics if src is shorter
// than the width.
func Load[W Width, T Lanes](src []T) Vec[T, W] {
	n := widthOf[W]()
	if len(src) < n {
		panic("lanes: Load source shorter than vector width")
	}
	data := make([]T, n)
	copy(data, src)
	return Vec[T, W]{data: data}
}

// LoadN loads min(len(src), W.N()) lanes and zeroes the rest.
func LoadN[W Width, T Lanes](src []T) Vec[T, W] {
	data := make([]T, widthOf[W]())
	copy(data, src)
	return Vec[T, W]{data: data}
}

// Splat returns a vector with every lane set to x.
func Splat[W Width, T Lanes](x T) Vec[T, W] {
	data := make([]T, widthOf[W]())
	for i := range data {
		data[i] = x
	}
	return Vec[T, W]{data: data}
}

// Zero returns a vector with every lane zero.
func Zero[T Lanes, W Width]() Vec[T, W] {
	return Vec[T, W]{data: make([]T, widthOf[W]())}
}

// Concat joins lo and hi into one vector of twice the width; lo supplies
// the low lanes.
func Concat[T Lanes, W Width](lo, hi Vec[T, W]) Vec[T, Double[W]] {
	n := widthOf[W]()
	data := make([]T, 2*n)
	copy(data, lo.slice())
	copy(data[n:], hi.slice())
	return Vec[T, Double[W]]{data: data}
}

// Split is the inverse of Concat.
func Split[T Lanes, W Width](v Vec[T, Double[W]]) (lo, hi Vec[T, W]) {
	n := widthOf[W]()
	s := v.slice()
	return Load[W](s[:n]), Load[W](s[n:])
}
