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

//go:build amd64 && !purego && !(goexperiment.simd && amd64.v3)

package lanes

import "github.com/ajroetker/go-lanes/internal/caps"

const backendTier = caps.TierSSE2

// Fails to compile unless the caps tier file matches this one.
var _ = [1]struct{}{}[backendTier-caps.Active]

func compareRegister(op cmpOp, k LaneKind, a, b *register) regMask {
	return regMask{vec: compareSSE2(op, k, a, b)}
}

func bitselectRegister(on, off, mask *register) (r register) {
	bitselectSSE2(&r, on, off, mask)
	return r
}

// blendRegister treats the full-vector mask as a bitselect selector.
func blendRegister(k LaneKind, on, off *register, m regMask) register {
	return bitselectRegister(on, off, &m.vec)
}

func describe(op Op, k LaneKind) (Policy, string) {
	switch op {
	case OpBitSelect, OpBitSelectMask, OpMaskBitSelect:
		return PolicyComposed, "pand/pandn/por"
	default:
		return sse2Primitive(op.cmp(), k)
	}
}
