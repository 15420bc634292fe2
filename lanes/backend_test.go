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
	"strings"
	"testing"

	"github.com/ajroetker/go-lanes/internal/caps"
)

func TestBackendsCoverEveryOpAndKind(t *testing.T) {
	entries := Backends()
	if len(entries) != len(Ops)*len(LaneKinds) {
		t.Fatalf("Backends(): %d entries, want %d", len(entries), len(Ops)*len(LaneKinds))
	}
	seen := make(map[[2]int]bool)
	for _, e := range entries {
		key := [2]int{int(e.Op), int(e.Kind)}
		if seen[key] {
			t.Errorf("duplicate entry %s", e)
		}
		seen[key] = true
		if e.Tier != CurrentTier() {
			t.Errorf("entry %s: tier %s, want %s", e, e.Tier, CurrentTier())
		}
		if e.Primitive == "" {
			t.Errorf("entry %s: empty primitive", e)
		}
		if CurrentTier() == TierScalar && e.Policy != PolicyScalar {
			t.Errorf("scalar tier entry %s: policy %s", e, e.Policy)
		}
	}
}

func TestBackendPolicies(t *testing.T) {
	if caps.HasMaskBlend {
		for _, k := range []LaneKind{KindInt32, KindFloat32, KindUint64, KindFloat64} {
			if p := Resolve(OpBitSelectMask, k, 16).Policy; p != PolicyNative {
				t.Errorf("BitSelectMask %s on %s: policy %s, want native", k, CurrentTier(), p)
			}
		}
		if p := Resolve(OpCmpLE, KindInt8, 64).Policy; p != PolicyNarrower {
			t.Errorf("CmpLE int8 on %s: policy %s, want narrower", CurrentTier(), p)
		}
	}

	bs := Resolve(OpBitSelect, KindUint8, 64)
	if caps.HasTernaryLogic {
		if bs.Policy != PolicyNative || !strings.HasPrefix(bs.Primitive, "vpternlog") {
			t.Errorf("BitSelect on %s: %s (%s), want native vpternlogd", CurrentTier(), bs.Primitive, bs.Policy)
		}
	} else if bs.Policy == PolicyNative {
		t.Errorf("BitSelect on %s: native %s without a ternary logic instruction", CurrentTier(), bs.Primitive)
	}
}

// Only the portable tier may fall back to the per-lane loop.
func TestSIMDTiersStayVectorized(t *testing.T) {
	if CurrentTier() == TierScalar {
		return
	}
	for _, e := range Backends() {
		if e.Policy == PolicyScalar {
			t.Errorf("entry %s uses the per-lane fallback", e)
		}
	}
	if CurrentTier() == TierNEON {
		for _, op := range []Op{OpCmpLE, OpCmpLT, OpCmpEQ} {
			for _, k := range LaneKinds {
				if p := Resolve(op, k, 16).Policy; p != PolicyNative {
					t.Errorf("%s %s on neon: policy %s, want native", op, k, p)
				}
			}
		}
	}
}

func TestResolve(t *testing.T) {
	per := RegisterLanes[float32]()
	p := Resolve(OpCmpLE, KindFloat32, 2*per+3)
	if p.Registers != 3 || p.TailLanes != 3 || p.Lanes != 2*per+3 {
		t.Errorf("Resolve(%d lanes): registers %d, tail %d", 2*per+3, p.Registers, p.TailLanes)
	}
	if p.Op != OpCmpLE || p.Kind != KindFloat32 {
		t.Errorf("Resolve: entry %s", p.BackendEntry)
	}

	q := ResolveFor[int8, W64](OpBitSelect)
	if want := 64 / RegisterLanes[int8](); q.Registers != want || q.TailLanes != 0 {
		t.Errorf("ResolveFor[int8, W64]: registers %d, want %d, tail %d", q.Registers, want, q.TailLanes)
	}
	if r := ResolveFor[int64, W1](OpCmpEQ); r.Registers != 1 || r.TailLanes != 1 {
		t.Errorf("ResolveFor[int64, W1]: registers %d, tail %d", r.Registers, r.TailLanes)
	}
}

func TestParseNames(t *testing.T) {
	for _, op := range Ops {
		if got, ok := ParseOp(op.String()); !ok || got != op {
			t.Errorf("ParseOp(%q) = %v, %v", op.String(), got, ok)
		}
	}
	for _, k := range LaneKinds {
		if got, ok := ParseLaneKind(k.String()); !ok || got != k {
			t.Errorf("ParseLaneKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseOp("cmp_xx"); ok {
		t.Error("ParseOp accepted an unknown name")
	}
}

func TestTierSurface(t *testing.T) {
	if RegisterBytes() != CurrentTier().RegisterBytes() {
		t.Errorf("RegisterBytes() = %d, tier says %d", RegisterBytes(), CurrentTier().RegisterBytes())
	}
	if PackedMasks() != CurrentTier().Has(FeaturePackedMasks) {
		t.Errorf("PackedMasks() = %v disagrees with tier %s", PackedMasks(), CurrentTier())
	}
	if got := RegisterLanes[float64](); got != RegisterBytes()/8 {
		t.Errorf("RegisterLanes[float64]() = %d", got)
	}
}
