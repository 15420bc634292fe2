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

import "fmt"

// Op names a dispatched operation. Derived comparisons (GE, GT, NE) run
// through the entries of the operation they are derived from.
type Op uint8

const (
	OpCmpLE Op = iota
	OpCmpLT
	OpCmpEQ
	OpBitSelect
	OpBitSelectMask
	OpMaskBitSelect
)

// Ops lists every dispatched operation.
var Ops = []Op{OpCmpLE, OpCmpLT, OpCmpEQ, OpBitSelect, OpBitSelectMask, OpMaskBitSelect}

func (op Op) String() string {
	switch op {
	case OpCmpLE:
		return "cmp_le"
	case OpCmpLT:
		return "cmp_lt"
	case OpCmpEQ:
		return "cmp_eq"
	case OpBitSelect:
		return "bitselect"
	case OpBitSelectMask:
		return "bitselect_mask"
	case OpMaskBitSelect:
		return "mask_bitselect"
	default:
		return "unknown"
	}
}

// ParseOp returns the operation named s, as printed by String.
func ParseOp(s string) (Op, bool) {
	for _, op := range Ops {
		if op.String() == s {
			return op, true
		}
	}
	return 0, false
}

func (op Op) cmp() cmpOp {
	switch op {
	case OpCmpLT:
		return cmpLT
	case OpCmpEQ:
		return cmpEQ
	default:
		return cmpLE
	}
}

// Policy is how a backend realizes an operation on one register, in
// descending order of preference.
type Policy uint8

const (
	// PolicyNative is a single native instruction.
	PolicyNative Policy = iota
	// PolicyComposed is a short fixed sequence of native instructions.
	PolicyComposed
	// PolicyNarrower runs the operation on narrower native registers and
	// joins the parts.
	PolicyNarrower
	// PolicyScalar is the per-lane reference loop.
	PolicyScalar
)

func (p Policy) String() string {
	switch p {
	case PolicyNative:
		return "native"
	case PolicyComposed:
		return "composed"
	case PolicyNarrower:
		return "narrower"
	default:
		return "scalar"
	}
}

// BackendEntry describes how the build tier implements one operation for one
// lane kind.
type BackendEntry struct {
	Tier      Tier
	Op        Op
	Kind      LaneKind
	Policy    Policy
	Primitive string
}

func (e BackendEntry) String() string {
	return fmt.Sprintf("%s/%s/%s: %s (%s)", e.Tier, e.Op, e.Kind, e.Primitive, e.Policy)
}

// Backends returns the resolution table of the build tier: one entry per
// operation and lane kind.
func Backends() []BackendEntry {
	entries := make([]BackendEntry, 0, len(Ops)*len(LaneKinds))
	for _, op := range Ops {
		for _, k := range LaneKinds {
			entries = append(entries, lookup(op, k))
		}
	}
	return entries
}

func lookup(op Op, k LaneKind) BackendEntry {
	p, prim := describe(op, k)
	return BackendEntry{Tier: backendTier, Op: op, Kind: k, Policy: p, Primitive: prim}
}

// Plan is the resolved execution of one operation on an n-lane vector.
type Plan struct {
	BackendEntry

	// Lanes is the vector width the plan was resolved for.
	Lanes int
	// Registers is the number of native register operations.
	Registers int
	// TailLanes is the lane count of a trailing partial register, or zero.
	TailLanes int
}

// Resolve returns how op runs on a vector of n lanes of kind k.
func Resolve(op Op, k LaneKind, n int) Plan {
	per := registerLanes(k)
	return Plan{
		BackendEntry: lookup(op, k),
		Lanes:        n,
		Registers:    (n + per - 1) / per,
		TailLanes:    n % per,
	}
}

// ResolveFor is Resolve for Vec[T, W].
func ResolveFor[T Lanes, W Width](op Op) Plan {
	return Resolve(op, KindOf[T](), widthOf[W]())
}
