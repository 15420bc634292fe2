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

// Package caps holds the instruction-set tier this binary was built for.
//
// The tier is fixed by build constraints. Exactly one tier_*.go file compiles
// into any build and declares Active, RegisterBytes, PackedMasks and the
// predicates the kernels select on: HasTernaryLogic (one-instruction
// bitselect) and HasMaskBlend (blend under a predicate register). Other
// features are queried with Active.Has. Nothing in this package changes
// which kernels run at run time.
package caps

// Tier is an instruction-set capability tier.
type Tier int

const (
	// TierScalar is the portable per-lane fallback.
	TierScalar Tier = iota

	// TierSSE2 is the x86-64 baseline (128-bit registers).
	TierSSE2

	// TierAVX2 is 256-bit x86 SIMD.
	TierAVX2

	// TierAVX512 is 512-bit x86 SIMD with predicate (k) registers.
	TierAVX512

	// TierNEON is ARM Advanced SIMD (128-bit registers).
	TierNEON
)

// Tiers lists every tier known to this package.
var Tiers = []Tier{TierScalar, TierSSE2, TierAVX2, TierAVX512, TierNEON}

// String returns a lower-case name for the tier.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierSSE2:
		return "sse2"
	case TierAVX2:
		return "avx2"
	case TierAVX512:
		return "avx512"
	case TierNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Arch returns the GOARCH the tier targets, or "" for the scalar tier.
func (t Tier) Arch() string {
	switch t {
	case TierSSE2, TierAVX2, TierAVX512:
		return "amd64"
	case TierNEON:
		return "arm64"
	default:
		return ""
	}
}

// RegisterBytes returns the native register width of the tier in bytes.
func (t Tier) RegisterBytes() int {
	switch t {
	case TierAVX2:
		return 32
	case TierAVX512:
		return 64
	default:
		return 16
	}
}

// Feature is a single capability a tier may provide.
type Feature int

const (
	FeatureSSE2 Feature = iota
	FeatureAVX2
	FeatureAVX512F
	FeatureAVX512BW
	FeatureAVX512VL
	FeatureNEON
	// FeatureTernaryLogic is a three-input bitwise instruction (vpternlog).
	FeatureTernaryLogic
	// FeatureMaskBlend is a predicate-driven blend (vpblendm*).
	FeatureMaskBlend
	// FeaturePackedMasks means comparisons produce one bit per lane.
	FeaturePackedMasks
)

// Features lists every feature known to this package.
var Features = []Feature{
	FeatureSSE2, FeatureAVX2, FeatureAVX512F, FeatureAVX512BW, FeatureAVX512VL,
	FeatureNEON, FeatureTernaryLogic, FeatureMaskBlend, FeaturePackedMasks,
}

func (f Feature) String() string {
	switch f {
	case FeatureSSE2:
		return "sse2"
	case FeatureAVX2:
		return "avx2"
	case FeatureAVX512F:
		return "avx512f"
	case FeatureAVX512BW:
		return "avx512bw"
	case FeatureAVX512VL:
		return "avx512vl"
	case FeatureNEON:
		return "neon"
	case FeatureTernaryLogic:
		return "ternlog"
	case FeatureMaskBlend:
		return "maskblend"
	case FeaturePackedMasks:
		return "packedmasks"
	default:
		return "unknown"
	}
}

var tierFeatures = map[Tier][]Feature{
	TierScalar: nil,
	TierSSE2:   {FeatureSSE2},
	TierAVX2:   {FeatureSSE2, FeatureAVX2},
	TierAVX512: {
		FeatureSSE2, FeatureAVX2, FeatureAVX512F, FeatureAVX512BW, FeatureAVX512VL,
		FeatureTernaryLogic, FeatureMaskBlend, FeaturePackedMasks,
	},
	TierNEON: {FeatureNEON},
}

// Has reports whether the tier provides f.
func (t Tier) Has(f Feature) bool {
	for _, g := range tierFeatures[t] {
		if g == f {
			return true
		}
	}
	return false
}

// Implies reports whether code built for other runs correctly wherever t is
// available. Tiers on different architectures never imply each other, but
// every tier implies the scalar tier.
func (t Tier) Implies(other Tier) bool {
	if other == TierScalar {
		return true
	}
	if t.Arch() != other.Arch() {
		return false
	}
	for _, f := range tierFeatures[other] {
		if !t.Has(f) {
			return false
		}
	}
	return true
}
