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

//go:build amd64 && !purego

package lanes

// 128-bit kernels in sse2_amd64.s. Each reads the low 16 bytes of its
// register operands and writes the low 16 bytes of dst.

//go:noescape
func bitselectSSE2(dst, on, off, mask *register)

// cmpgt{B,W,L,Q}SSE2 store ((a^bias) > (b^bias)) ^ flip per signed lane of
// 8, 16, 32 and 64 bits. A sign bias turns an unsigned compare into a signed one;
// an all-ones flip turns GT into LE.

//go:noescape
func cmpgtBSSE2(dst, a, b, bias, flip *register)

//go:noescape
func cmpgtWSSE2(dst, a, b, bias, flip *register)

//go:noescape
func cmpgtLSSE2(dst, a, b, bias, flip *register)

//go:noescape
func cmpgtQSSE2(dst, a, b, bias, flip *register)

//go:noescape
func cmpeqBSSE2(dst, a, b *register)

//go:noescape
func cmpeqWSSE2(dst, a, b *register)

//go:noescape
func cmpeqLSSE2(dst, a, b *register)

//go:noescape
func cmpeqQSSE2(dst, a, b *register)

//go:noescape
func cmplePS(dst, a, b *register)

//go:noescape
func cmpltPS(dst, a, b *register)

//go:noescape
func cmpeqPS(dst, a, b *register)

//go:noescape
func cmplePD(dst, a, b *register)

//go:noescape
func cmpltPD(dst, a, b *register)

//go:noescape
func cmpeqPD(dst, a, b *register)

var (
	zeroRegister register
	onesRegister = register{^uint64(0), ^uint64(0)}

	signBias8  = register{0x8080808080808080, 0x8080808080808080}
	signBias16 = register{0x8000800080008000, 0x8000800080008000}
	signBias32 = register{0x8000000080000000, 0x8000000080000000}

	// lowBias64 biases only the low dword of each 64-bit lane, which
	// cmpgtQSSE2 always compares unsigned.
	lowBias64 = register{0x0000000080000000, 0x0000000080000000}
)

// compareSSE2 compares the low 16 bytes of a and b.
func compareSSE2(op cmpOp, k LaneKind, a, b *register) (r register) {
	switch k {
	case KindFloat32:
		switch op {
		case cmpLE:
			cmplePS(&r, a, b)
		case cmpLT:
			cmpltPS(&r, a, b)
		default:
			cmpeqPS(&r, a, b)
		}
		return r
	case KindFloat64:
		switch op {
		case cmpLE:
			cmplePD(&r, a, b)
		case cmpLT:
			cmpltPD(&r, a, b)
		default:
			cmpeqPD(&r, a, b)
		}
		return r
	}

	gt, eq, bias := cmpgtLSSE2, cmpeqLSSE2, &signBias32
	switch k.Size() {
	case 1:
		gt, eq, bias = cmpgtBSSE2, cmpeqBSSE2, &signBias8
	case 2:
		gt, eq, bias = cmpgtWSSE2, cmpeqWSSE2, &signBias16
	case 8:
		gt, eq, bias = cmpgtQSSE2, cmpeqQSSE2, &lowBias64
		if !k.IsSigned() {
			bias = &signBias32
		}
	}
	if k.IsSigned() && k.Size() < 8 {
		bias = &zeroRegister
	}
	switch op {
	case cmpLE:
		gt(&r, a, b, bias, &onesRegister)
	case cmpLT:
		gt(&r, b, a, bias, &zeroRegister)
	default:
		eq(&r, a, b)
	}
	return r
}

// compareParts runs compareSSE2 on each 16-byte part of a register of size
// bytes and joins the results.
func compareParts(op cmpOp, k LaneKind, a, b *register, size int) (r register) {
	for i := 0; i < size/16; i++ {
		sa, sb := a.sub(i), b.sub(i)
		s := compareSSE2(op, k, &sa, &sb)
		r.setSub(i, &s)
	}
	return r
}

// sse2Primitive names the instruction sequence compareSSE2 uses.
func sse2Primitive(op cmpOp, k LaneKind) (Policy, string) {
	switch k {
	case KindFloat32, KindFloat64:
		suffix := "ps"
		if k == KindFloat64 {
			suffix = "pd"
		}
		return PolicyNative, "cmp" + op.String() + suffix
	case KindInt64, KindUint64:
		if op == cmpEQ {
			return PolicyComposed, "pcmpeqd + pshufd + pand"
		}
		prim := "pcmpgtd/pcmpeqd + pshufd + pand/por"
		if op == cmpLE {
			prim += " + pxor"
		}
		return PolicyComposed, prim
	}
	suffix := map[int]string{1: "b", 2: "w", 4: "d"}[k.Size()]
	switch {
	case op == cmpEQ:
		return PolicyNative, "pcmpeq" + suffix
	case op == cmpLT && k.IsSigned():
		return PolicyNative, "pcmpgt" + suffix
	case op == cmpLT:
		return PolicyComposed, "pxor bias + pcmpgt" + suffix
	case k.IsSigned():
		return PolicyComposed, "pcmpgt" + suffix + " + pxor"
	default:
		return PolicyComposed, "pxor bias + pcmpgt" + suffix + " + pxor"
	}
}
