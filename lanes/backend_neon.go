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

//go:build arm64 && !purego

package lanes

import "github.com/ajroetker/go-lanes/internal/caps"

const backendTier = caps.TierNEON

// Fails to compile unless the caps tier file matches this one.
var _ = [1]struct{}{}[backendTier-caps.Active]

type neonKernel func(dst, a, b *register)

// neonCompare holds, per lane kind, the kernels for a >= b, a > b and
// a == b and the instruction each one runs. LE and LT swap the operands.
var neonCompare = [...]struct {
	ge, gt, eq neonKernel
	insn       [3]string
}{
	KindInt8:    {cmpgeBNEON, cmpgtBNEON, cmpeqBNEON, [3]string{"cmge", "cmgt", "cmeq"}},
	KindUint8:   {cmphsBNEON, cmphiBNEON, cmpeqBNEON, [3]string{"cmhs", "cmhi", "cmeq"}},
	KindInt16:   {cmpgeHNEON, cmpgtHNEON, cmpeqHNEON, [3]string{"cmge", "cmgt", "cmeq"}},
	KindUint16:  {cmphsHNEON, cmphiHNEON, cmpeqHNEON, [3]string{"cmhs", "cmhi", "cmeq"}},
	KindInt32:   {cmpgeSNEON, cmpgtSNEON, cmpeqSNEON, [3]string{"cmge", "cmgt", "cmeq"}},
	KindUint32:  {cmphsSNEON, cmphiSNEON, cmpeqSNEON, [3]string{"cmhs", "cmhi", "cmeq"}},
	KindInt64:   {cmpgeDNEON, cmpgtDNEON, cmpeqDNEON, [3]string{"cmge", "cmgt", "cmeq"}},
	KindUint64:  {cmphsDNEON, cmphiDNEON, cmpeqDNEON, [3]string{"cmhs", "cmhi", "cmeq"}},
	KindFloat32: {fcmgeSNEON, fcmgtSNEON, fcmeqSNEON, [3]string{"fcmge", "fcmgt", "fcmeq"}},
	KindFloat64: {fcmgeDNEON, fcmgtDNEON, fcmeqDNEON, [3]string{"fcmge", "fcmgt", "fcmeq"}},
}

func compareRegister(op cmpOp, k LaneKind, a, b *register) regMask {
	var r regMask
	kern := neonCompare[k]
	switch op {
	case cmpLE:
		kern.ge(&r.vec, b, a)
	case cmpLT:
		kern.gt(&r.vec, b, a)
	default:
		kern.eq(&r.vec, a, b)
	}
	return r
}

func bitselectRegister(on, off, mask *register) (r register) {
	bitselectNEON(&r, on, off, mask)
	return r
}

// blendRegister treats the full-vector mask as a bitselect selector.
func blendRegister(k LaneKind, on, off *register, m regMask) register {
	return bitselectRegister(on, off, &m.vec)
}

func describe(op Op, k LaneKind) (Policy, string) {
	switch op {
	case OpBitSelect, OpBitSelectMask, OpMaskBitSelect:
		return PolicyComposed, "eor/and/eor"
	}
	arrangement := map[int]string{1: ".16b", 2: ".8h", 4: ".4s", 8: ".2d"}[k.Size()]
	insn := neonCompare[k].insn
	switch op.cmp() {
	case cmpLE:
		return PolicyNative, insn[0] + arrangement + " (b, a)"
	case cmpLT:
		return PolicyNative, insn[1] + arrangement + " (b, a)"
	default:
		return PolicyNative, insn[2] + arrangement
	}
}
