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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBitSelectScenario(t *testing.T) {
	on := Load[W4]([]uint8{0xFF, 0x00, 0xAA, 0x11})
	off := Load[W4]([]uint8{0x00, 0xFF, 0x55, 0xEE})
	mask := Load[W4]([]uint8{0xFF, 0xFF, 0x0F, 0x00})

	got := BitSelect(on, off, mask).Data()
	want := []uint8{0xFF, 0x00, 0x5A, 0xEE}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BitSelect mismatch (-want +got):\n%s", diff)
	}
}

func TestBitSelectWide(t *testing.T) {
	n := 64
	on, off, mask := make([]uint16, n), make([]uint16, n), make([]uint16, n)
	want := make([]uint16, n)
	for i := range on {
		on[i] = uint16(i * 0x0101)
		off[i] = ^uint16(i * 0x3131)
		mask[i] = uint16(i*0x1357) ^ 0xF0F0
		want[i] = on[i]&mask[i] | off[i]&^mask[i]
	}
	got := BitSelect(Load[W64](on), Load[W64](off), Load[W64](mask)).Data()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BitSelect W64 uint16 mismatch (-want +got):\n%s", diff)
	}
}

func TestBitSelectFloatBits(t *testing.T) {
	on := Splat[W8](float64(-1.5))
	off := Splat[W8](float64(2.25))
	sign := Splat[W8](math.Float64frombits(1 << 63))
	// Take the sign bit from on and everything else from off.
	got := BitSelect(on, off, sign)
	for i := 0; i < got.NumLanes(); i++ {
		if got.Lane(i) != -2.25 {
			t.Errorf("BitSelect float64: lane %d: got %v, want -2.25", i, got.Lane(i))
		}
	}
}

func blendIdentity[T Lanes, W Width](t *testing.T, x, y T) {
	t.Helper()
	on, off := Splat[W](x), Splat[W](y)
	n := widthOf[W]()
	all := FirstN[T, W](n)
	none := FirstN[T, W](0)

	if got := BitSelectMask(on, off, all).Data(); !cmp.Equal(got, on.Data()) {
		t.Errorf("BitSelectMask(allTrue) %s/%d: got %v", KindOf[T](), n, got)
	}
	if got := BitSelectMask(on, off, none).Data(); !cmp.Equal(got, off.Data()) {
		t.Errorf("BitSelectMask(allFalse) %s/%d: got %v", KindOf[T](), n, got)
	}

	half := FirstN[T, W](n / 2)
	got := BitSelectMask(on, off, half)
	for i := 0; i < n; i++ {
		want := y
		if i < n/2 {
			want = x
		}
		if got.Lane(i) != want {
			t.Errorf("BitSelectMask(FirstN) %s/%d: lane %d: got %v, want %v", KindOf[T](), n, i, got.Lane(i), want)
		}
	}
}

func blendIdentityWidths[T Lanes](t *testing.T, x, y T) {
	t.Helper()
	blendIdentity[T, W1](t, x, y)
	blendIdentity[T, W4](t, x, y)
	blendIdentity[T, W16](t, x, y)
	blendIdentity[T, W64](t, x, y)
	blendIdentity[T, w3](t, x, y)
	blendIdentity[T, w13](t, x, y)
	blendIdentity[T, Double[W64]](t, x, y)
}

func TestBitSelectMaskIdentity(t *testing.T) {
	blendIdentityWidths[int8](t, -7, 9)
	blendIdentityWidths[uint8](t, 0xAB, 0x01)
	blendIdentityWidths[int16](t, -300, 301)
	blendIdentityWidths[uint16](t, 0xFFFF, 2)
	blendIdentityWidths[int32](t, math.MinInt32, 5)
	blendIdentityWidths[uint32](t, 7, 0xDEADBEEF)
	blendIdentityWidths[int64](t, math.MinInt64, math.MaxInt64)
	blendIdentityWidths[uint64](t, 1, math.MaxUint64)
	blendIdentityWidths[float32](t, 1.25, -8)
	blendIdentityWidths[float64](t, math.Inf(-1), 0.5)
}

func TestBitSelectMaskFromCompare(t *testing.T) {
	a := Load[W8]([]int32{5, -1, 7, 3, 0, 9, -9, 2})
	b := Splat[W8](int32(3))
	got := BitSelectMask(a, b, CmpLE(a, b)).Data()
	want := []int32{3, -1, 3, 3, 0, 3, -9, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("min via BitSelectMask mismatch (-want +got):\n%s", diff)
	}

	if got := BitSelectScalar(int32(1), int32(0), CmpGT(a, b)).Data(); !cmp.Equal(got, []int32{1, 0, 1, 0, 0, 1, 0, 0}) {
		t.Errorf("BitSelectScalar: got %v", got)
	}
	if got := IfThenElseZero(CmpGT(a, b), a).Data(); !cmp.Equal(got, []int32{5, 0, 7, 0, 0, 9, 0, 0}) {
		t.Errorf("IfThenElseZero: got %v", got)
	}
	if got := IfThenZeroElse(CmpGT(a, b), a).Data(); !cmp.Equal(got, []int32{0, -1, 0, 3, 0, 0, -9, 2}) {
		t.Errorf("IfThenZeroElse: got %v", got)
	}
}

func TestMaskBitSelect(t *testing.T) {
	on := MaskFromBools[int16, W8]([]bool{true, true, false, false, true, false, true, false})
	off := MaskFromBools[int16, W8]([]bool{true, false, true, false, false, true, true, false})
	sel := MaskFromBools[int16, W8]([]bool{true, true, true, true, false, false, false, false})

	got := MaskBitSelect(on, off, sel).Bools()
	want := []bool{true, true, false, false, false, true, true, false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MaskBitSelect mismatch (-want +got):\n%s", diff)
	}
}

func TestBitwise(t *testing.T) {
	a := Load[W4]([]uint8{0xF0, 0xFF, 0x00, 0x5A})
	b := Load[W4]([]uint8{0x3C, 0x0F, 0xFF, 0xA5})
	tests := []struct {
		name string
		got  Vec[uint8, W4]
		want []uint8
	}{
		{"And", And(a, b), []uint8{0x30, 0x0F, 0x00, 0x00}},
		{"Or", Or(a, b), []uint8{0xFC, 0xFF, 0xFF, 0xFF}},
		{"Xor", Xor(a, b), []uint8{0xCC, 0xF0, 0xFF, 0xFF}},
		{"AndNot", AndNot(a, b), []uint8{0xC0, 0xF0, 0x00, 0x5A}},
		{"Not", Not(a), []uint8{0x0F, 0x00, 0xFF, 0xA5}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.got.Data()); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
	}

	// bitselect(on, off, m) == (on & m) | (off &^ m)
	m := Load[W4]([]uint8{0x0F, 0xF0, 0x33, 0xCC})
	composed := Or(And(a, m), AndNot(b, m)).Data()
	if diff := cmp.Diff(composed, BitSelect(a, b, m).Data()); diff != "" {
		t.Errorf("BitSelect vs composed mismatch (-composed +bitselect):\n%s", diff)
	}
}
