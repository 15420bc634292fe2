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

//go:build purego || !(amd64 || arm64)

package lanes

import "github.com/ajroetker/go-lanes/internal/caps"

const backendTier = caps.TierScalar

// Fails to compile unless the caps tier file matches this one.
var _ = [1]struct{}{}[backendTier-caps.Active]

func compareRegister(op cmpOp, k LaneKind, a, b *register) regMask {
	return regMask{vec: refCompare(op, k, a, b, registerLanes(k))}
}

func bitselectRegister(on, off, mask *register) register {
	return refBitselect(on, off, mask)
}

func blendRegister(k LaneKind, on, off *register, m regMask) register {
	return refBlend(k, on, off, m, registerLanes(k))
}

func describe(op Op, k LaneKind) (Policy, string) {
	switch op {
	case OpBitSelect, OpMaskBitSelect:
		return PolicyScalar, "uint64 and/andnot/or"
	case OpBitSelectMask:
		return PolicyScalar, "per-lane select"
	default:
		return PolicyScalar, "per-lane " + op.cmp().String()
	}
}
