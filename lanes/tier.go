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

import "github.com/ajroetker/go-lanes/internal/caps"

// Tier is an instruction-set capability tier.
type Tier = caps.Tier

// Feature is a capability a tier may provide.
type Feature = caps.Feature

const (
	TierScalar = caps.TierScalar
	TierSSE2   = caps.TierSSE2
	TierAVX2   = caps.TierAVX2
	TierAVX512 = caps.TierAVX512
	TierNEON   = caps.TierNEON
)

const (
	FeatureSSE2         = caps.FeatureSSE2
	FeatureAVX2         = caps.FeatureAVX2
	FeatureAVX512F      = caps.FeatureAVX512F
	FeatureAVX512BW     = caps.FeatureAVX512BW
	FeatureAVX512VL     = caps.FeatureAVX512VL
	FeatureNEON         = caps.FeatureNEON
	FeatureTernaryLogic = caps.FeatureTernaryLogic
	FeatureMaskBlend    = caps.FeatureMaskBlend
	FeaturePackedMasks  = caps.FeaturePackedMasks
)

// CurrentTier returns the tier this binary was built for.
func CurrentTier() Tier {
	return caps.Active
}

// RegisterBytes returns the native register width of the build tier in bytes:
// 16 for scalar, SSE2 and NEON, 32 for AVX2, 64 for AVX-512.
func RegisterBytes() int {
	return caps.RegisterBytes
}

// RegisterLanes returns how many lanes of T fit in one native register.
//
// For example, with AVX2 (32 bytes):
//   - float32: 8 lanes
//   - int8: 32 lanes
func RegisterLanes[T Lanes]() int {
	return registerLanes(KindOf[T]())
}

// PackedMasks reports whether masks are stored as one bit per lane.
func PackedMasks() bool {
	return caps.PackedMasks
}
