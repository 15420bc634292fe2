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
	"sort"

	"github.com/klauspost/cpuid/v2"
)

// HostInfo describes the processor the binary is running on.
type HostInfo struct {
	Vendor        string
	Brand         string
	PhysicalCores int
	LogicalCores  int
	CacheLine     int

	// SIMD lists the SIMD-related extensions reported by cpuid.
	SIMD []string

	// Features lists every extension reported by cpuid, sorted.
	Features []string
}

var simdFeatures = []struct {
	id   cpuid.FeatureID
	name string
}{
	{cpuid.SSE2, "sse2"},
	{cpuid.SSE4, "sse4.1"},
	{cpuid.AVX, "avx"},
	{cpuid.AVX2, "avx2"},
	{cpuid.FMA3, "fma3"},
	{cpuid.AVX512F, "avx512f"},
	{cpuid.AVX512BW, "avx512bw"},
	{cpuid.AVX512VL, "avx512vl"},
	{cpuid.AVX512DQ, "avx512dq"},
	{cpuid.ASIMD, "asimd"},
	{cpuid.SVE, "sve"},
}

// Host reports the running processor's identity and extensions.
func Host() HostInfo {
	info := HostInfo{
		Vendor:        cpuid.CPU.VendorString,
		Brand:         cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		CacheLine:     cpuid.CPU.CacheLine,
		Features:      cpuid.CPU.FeatureSet(),
	}
	for _, f := range simdFeatures {
		if cpuid.CPU.Supports(f.id) {
			info.SIMD = append(info.SIMD, f.name)
		}
	}
	sort.Strings(info.Features)
	return info
}
