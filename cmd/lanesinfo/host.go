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

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/internal/caps"
)

func newHostCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "host",
		Short: "Show the processor and its SIMD extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			info := caps.Host()
			fmt.Fprintf(out, "vendor:    %s\n", info.Vendor)
			fmt.Fprintf(out, "brand:     %s\n", info.Brand)
			fmt.Fprintf(out, "cores:     %d physical, %d logical\n", info.PhysicalCores, info.LogicalCores)
			fmt.Fprintf(out, "simd:      %s\n", strings.Join(info.SIMD, " "))
			fmt.Fprintf(out, "best tier: %s (built for %s)\n", caps.Best(), caps.Active)
			if all {
				fmt.Fprintf(out, "features:  %s\n", strings.Join(info.Features, " "))
			}
			a.log.Debugf("%d cpuid features", len(info.Features))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every cpuid feature")
	return cmd
}
