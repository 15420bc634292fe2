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

// Width is the lane count of a vector type. Width types carry no data; the
// lane count is a property of the type so that mixing widths fails to
// compile. N must return the same positive value on every call.
type Width interface {
	N() int
}

type (
	W1  struct{}
	W2  struct{}
	W4  struct{}
	W8  struct{}
	W16 struct{}
	W32 struct{}
	W64 struct{}
)

func (W1) N() int  { return 1 }
func (W2) N() int  { return 2 }
func (W4) N() int  { return 4 }
func (W8) N() int  { return 8 }
func (W16) N() int { return 16 }
func (W32) N() int { return 32 }
func (W64) N() int { return 64 }

// Double is twice the lane count of W. It is the result width of Concat.
type Double[W Width] struct{}

func (Double[W]) N() int { return 2 * widthOf[W]() }

func widthOf[W Width]() int {
	var w W
	n := w.N()
	if n <= 0 {
		panic("lanes: width must be positive")
	}
	return n
}
