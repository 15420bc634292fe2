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

package caps

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// ErrUnsupportedTier is returned when the running CPU lacks a feature the
// build tier requires.
var ErrUnsupportedTier = errors.New("caps: cpu does not support build tier")

// Supported reports whether the running CPU can execute code built for t.
func Supported(t Tier) bool {
	if arch := t.Arch(); arch != "" && arch != runtime.GOARCH {
		return false
	}
	switch t {
	case TierScalar:
		return true
	case TierSSE2:
		return cpu.X86.HasSSE2
	case TierAVX2:
		return cpu.X86.HasAVX2 && cpu.X86.HasFMA
	case TierAVX512:
		return cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL &&
			cpu.X86.HasAVX512CD && cpu.X86.HasAVX512DQ
	case TierNEON:
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}

// Verify checks that the running CPU supports the tier this binary was built
// for. A failed check means the binary was built with a GOAMD64 level the
// machine cannot run.
func Verify() error {
	if !Supported(Active) {
		return fmt.Errorf("%w: built for %s on %s", ErrUnsupportedTier, Active, runtime.GOARCH)
	}
	return nil
}

// Best returns the highest tier the running CPU supports. It may be higher
// than Active when the binary was built for an older baseline.
func Best() Tier {
	best := TierScalar
	for _, t := range Tiers {
		if Supported(t) && t.Implies(best) {
			best = t
		}
	}
	return best
}
