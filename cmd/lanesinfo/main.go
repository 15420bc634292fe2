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

// Command lanesinfo reports how this build of the lanes package dispatches
// vector operations and verifies the dispatched kernels.
//
// Usage:
//
//	lanesinfo tier                       # build tier, register width, features
//	lanesinfo table --op cmp_le          # resolution table of the build tier
//	lanesinfo selfcheck --iterations 500 # differential check against Go scalars
//	lanesinfo host                       # processor identity and extensions
//
// Settings can also come from ./lanes.yaml (or --config) and LANES_*
// environment variables, e.g. LANES_SELFCHECK_ITERATIONS=1000.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
