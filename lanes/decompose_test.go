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
	"math/rand/v2"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

// Widths that are not a multiple of any register lane count.
type (
	w3  struct{}
	w13 struct{}
)

func (w3) N() int  { return 3 }
func (w13) N() int { return 13 }

func TestForEachRegister(t *testing.T) {
	tests := []struct {
		n, per int
		want   [][2]int
	}{
		{0, 4, nil},
		{3, 4, [][2]int{{0, 3}}},
		{4, 4, [][2]int{{0, 4}}},
		{10, 4, [][2]int{{0, 4}, {4, 8}, {8, 10}}},
		{64, 16, [][2]int{{0, 16}, {16, 32}, {32, 48}, {48, 64}}},
	}
	for _, tt := range tests {
		var got [][2]int
		forEachRegister(tt.n, tt.per, func(lo, hi int) {
			got = append(got, [2]int{lo, hi})
		})
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("forEachRegister(%d, %d) mismatch (-want +got):\n%s", tt.n, tt.per, diff)
		}
	}
}

func randomLanes[T Lanes](rng *rand.Rand, n int) []T {
	out := make([]T, n)
	b := bytesOf(out)
	for i := range b {
		b[i] = byte(rng.Uint32())
	}
	return out
}

// randomPair returns two random lane slices where about a quarter of the
// lanes are equal, so equality paths are exercised.
func randomPair[T Lanes](rng *rand.Rand, n int) (a, b []T) {
	a, b = randomLanes[T](rng, n), randomLanes[T](rng, n)
	for i := range b {
		if rng.IntN(4) == 0 {
			b[i] = a[i]
		}
	}
	return a, b
}

func concatEquivalence[T Lanes, W Width](t *testing.T, rng *rand.Rand) {
	t.Helper()
	n := widthOf[W]()
	a1, b1 := randomPair[T](rng, n)
	a2, b2 := randomPair[T](rng, n)
	v1, v2 := Load[W](a1), Load[W](a2)
	u1, u2 := Load[W](b1), Load[W](b2)
	wide, wideU := Concat(v1, v2), Concat(u1, u2)

	cmps := []struct {
		name string
		f    func(a, b Vec[T, W]) Mask[T, W]
		g    func(a, b Vec[T, Double[W]]) Mask[T, Double[W]]
	}{
		{"CmpLE", CmpLE[T, W], CmpLE[T, Double[W]]},
		{"CmpLT", CmpLT[T, W], CmpLT[T, Double[W]]},
		{"CmpEQ", CmpEQ[T, W], CmpEQ[T, Double[W]]},
		{"CmpNE", CmpNE[T, W], CmpNE[T, Double[W]]},
	}
	for _, c := range cmps {
		want := append(c.f(v1, u1).Bools(), c.f(v2, u2).Bools()...)
		if diff := cmp.Diff(want, c.g(wide, wideU).Bools()); diff != "" {
			t.Errorf("%s %s/%d: Concat mismatch (-parts +wide):\n%s", c.name, KindOf[T](), n, diff)
		}
	}

	m1, m2 := CmpLE(v1, u1), CmpLE(v2, u2)
	mw := CmpLE(wide, wideU)
	lo, hi := Split(BitSelectMask(wide, wideU, mw))
	if !cmp.Equal(lanesBits(lo.Data()), lanesBits(BitSelectMask(v1, u1, m1).Data())) ||
		!cmp.Equal(lanesBits(hi.Data()), lanesBits(BitSelectMask(v2, u2, m2).Data())) {
		t.Errorf("BitSelectMask %s/%d: Split(wide) differs from parts", KindOf[T](), n)
	}

	s1, s2 := randomLanes[T](rng, n), randomLanes[T](rng, n)
	sel := Concat(Load[W](s1), Load[W](s2))
	lo, hi = Split(BitSelect(wide, wideU, sel))
	if !cmp.Equal(lanesBits(lo.Data()), lanesBits(BitSelect(v1, u1, Load[W](s1)).Data())) ||
		!cmp.Equal(lanesBits(hi.Data()), lanesBits(BitSelect(v2, u2, Load[W](s2)).Data())) {
		t.Errorf("BitSelect %s/%d: Split(wide) differs from parts", KindOf[T](), n)
	}
}

// lanesBits compares float lanes by bits so NaN payloads compare equal.
func lanesBits[T Lanes](s []T) []byte {
	return append([]byte(nil), bytesOf(s)...)
}

func concatWidths[T Lanes](t *testing.T, rng *rand.Rand) {
	t.Helper()
	concatEquivalence[T, W1](t, rng)
	concatEquivalence[T, W2](t, rng)
	concatEquivalence[T, W4](t, rng)
	concatEquivalence[T, W8](t, rng)
	concatEquivalence[T, W16](t, rng)
	concatEquivalence[T, W32](t, rng)
	concatEquivalence[T, W64](t, rng)
	concatEquivalence[T, w3](t, rng)
	concatEquivalence[T, w13](t, rng)
}

func TestDecompositionEquivalence(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 8; i++ {
		concatWidths[int8](t, rng)
		concatWidths[uint8](t, rng)
		concatWidths[int16](t, rng)
		concatWidths[uint16](t, rng)
		concatWidths[int32](t, rng)
		concatWidths[uint32](t, rng)
		concatWidths[int64](t, rng)
		concatWidths[uint64](t, rng)
		concatWidths[float32](t, rng)
		concatWidths[float64](t, rng)
	}
}

func TestConcatSplit(t *testing.T) {
	lo := Load[W2]([]int64{1, 2})
	hi := Load[W2]([]int64{3, 4})
	v := Concat(lo, hi)
	if v.NumLanes() != 4 {
		t.Fatalf("Concat: NumLanes = %d, want 4", v.NumLanes())
	}
	if diff := cmp.Diff([]int64{1, 2, 3, 4}, v.Data()); diff != "" {
		t.Errorf("Concat mismatch (-want +got):\n%s", diff)
	}
	l, h := Split(v)
	if !cmp.Equal(l.Data(), lo.Data()) || !cmp.Equal(h.Data(), hi.Data()) {
		t.Errorf("Split: got %v %v", l.Data(), h.Data())
	}

	vv := Concat(v, v)
	if vv.NumLanes() != 8 {
		t.Errorf("Concat(Double[W2]): NumLanes = %d, want 8", vv.NumLanes())
	}
}

// The kernels must agree with the reference on every register image.

func randomRegister(rng *rand.Rand) (r register) {
	for i := 0; i < RegisterBytes()/8; i++ {
		r[i] = rng.Uint64()
	}
	return r
}

// equalLanes copies about a quarter of the lanes of a into b.
func equalLanes(rng *rand.Rand, k LaneKind, a, b *register) {
	for i := 0; i < registerLanes(k); i++ {
		if rng.IntN(4) == 0 {
			b.setLane(k, i, a.lane(k, i))
		}
	}
}

func TestCompareRegisterMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, k := range LaneKinds {
		n := registerLanes(k)
		for _, op := range []cmpOp{cmpLE, cmpLT, cmpEQ} {
			for iter := 0; iter < 200; iter++ {
				a, b := randomRegister(rng), randomRegister(rng)
				equalLanes(rng, k, &a, &b)
				want := refCompare(op, k, &a, &b, n)
				got := compareRegister(op, k, &a, &b)
				if PackedMasks() {
					if wb := packRegister(k, &want, n); got.bits != wb {
						t.Fatalf("compareRegister(%s, %s): bits %#x, want %#x", op, k, got.bits, wb)
					}
					continue
				}
				if got.vec != want {
					t.Fatalf("compareRegister(%s, %s): got %x, want %x", op, k, got.vec, want)
				}
			}
		}
	}
}

// edgeLanes returns bit patterns that sit on compare boundaries for kind k:
// sign bits, dword halves of 64-bit lanes, infinities, NaN and -0.
func edgeLanes(k LaneKind) []uint64 {
	sign := uint64(1) << (8*k.Size() - 1)
	out := []uint64{
		0, 1, ^uint64(0), sign, sign - 1,
		0x7FFFFFFF, 0x80000000, 0xFFFFFFFF, 0x100000000,
		0xFFFFFFFF00000000, 0x8000000080000000, 0x7FFFFFFF80000000,
	}
	switch k {
	case KindFloat32:
		out = append(out, 0x7F800000, 0xFF800000, 0x7FC00000, 0x3F800000, 0xBF800000)
	case KindFloat64:
		out = append(out, 0x7FF0000000000000, 0xFFF0000000000000, 0x7FF8000000000000,
			0x3FF0000000000000, 0xBFF0000000000000)
	}
	return out
}

func TestCompareRegisterEdgeValues(t *testing.T) {
	for _, k := range LaneKinds {
		n := registerLanes(k)
		edges := edgeLanes(k)
		for _, x := range edges {
			for _, y := range edges {
				var a, b register
				for i := 0; i < n; i++ {
					if i%2 == 0 {
						a.setLane(k, i, x)
						b.setLane(k, i, y)
					} else {
						a.setLane(k, i, y)
						b.setLane(k, i, x)
					}
				}
				for _, op := range []cmpOp{cmpLE, cmpLT, cmpEQ} {
					want := refCompare(op, k, &a, &b, n)
					got := compareRegister(op, k, &a, &b)
					if PackedMasks() {
						if wb := packRegister(k, &want, n); got.bits != wb {
							t.Errorf("compareRegister(%s, %s, %#x, %#x): bits %#x, want %#x", op, k, x, y, got.bits, wb)
						}
						continue
					}
					if got.vec != want {
						t.Errorf("compareRegister(%s, %s, %#x, %#x): got %x, want %x", op, k, x, y, got.vec, want)
					}
				}
			}
		}
	}
}

func TestBitselectRegisterMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for iter := 0; iter < 500; iter++ {
		on, off, mask := randomRegister(rng), randomRegister(rng), randomRegister(rng)
		if got, want := bitselectRegister(&on, &off, &mask), refBitselect(&on, &off, &mask); got != want {
			t.Fatalf("bitselectRegister: got %x, want %x", got, want)
		}
	}
}

func TestBlendRegisterMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for _, k := range LaneKinds {
		n := registerLanes(k)
		for iter := 0; iter < 200; iter++ {
			on, off := randomRegister(rng), randomRegister(rng)
			bits := rng.Uint64() & laneMask(n)
			m := regMask{vec: expandRegister(k, bits, n), bits: bits}
			got, want := blendRegister(k, &on, &off, m), refBlend(k, &on, &off, m, n)
			if got != want {
				t.Fatalf("blendRegister(%s): got %x, want %x", k, got, want)
			}
		}
	}
}

func TestRegisterLayout(t *testing.T) {
	if unsafe.Sizeof(register{}) != maxRegisterBytes {
		t.Fatalf("register size = %d", unsafe.Sizeof(register{}))
	}
	src := []int16{1, -2, 3}
	r := loadRegister(src)
	dst := make([]int16, 3)
	storeRegister(dst, &r)
	if diff := cmp.Diff(src, dst); diff != "" {
		t.Errorf("load/store register mismatch (-want +got):\n%s", diff)
	}
	for i := 3; i < 32; i++ {
		if r.i16()[i] != 0 {
			t.Fatalf("padding lane %d = %d, want 0", i, r.i16()[i])
		}
	}
}
