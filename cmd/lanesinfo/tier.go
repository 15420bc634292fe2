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

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/internal/caps"
	"github.com/ajroetker/go-lanes/lanes"
)

func newTierCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tier",
		Short: "Show the build tier and its features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			tier := lanes.CurrentTier()
			encoding := "full-vector"
			if lanes.PackedMasks() {
				encoding = "packed bits"
			}
			fmt.Fprintf(out, "tier:      %s\n", tier)
			fmt.Fprintf(out, "register:  %d bytes\n", lanes.RegisterBytes())
			fmt.Fprintf(out, "masks:     %s\n", encoding)

			tw := table.NewWriter()
			tw.SetOutputMirror(out)
			tw.SetStyle(table.StyleLight)
			header := table.Row{"feature"}
			for _, t := range caps.Tiers {
				header = append(header, t.String())
			}
			tw.AppendHeader(header)
			for _, f := range caps.Features {
				row := table.Row{f.String()}
				for _, t := range caps.Tiers {
					row = append(row, mark(t.Has(f)))
				}
				tw.AppendRow(row)
			}
			tw.Render()

			if best := caps.Best(); best != tier && best.Implies(tier) {
				a.log.Infof("this cpu supports %s; rebuild with %s to use it", best, buildHint(best))
			}
			return nil
		},
	}
}

func mark(ok bool) string {
	if ok {
		return "x"
	}
	return ""
}

// buildHint returns the build settings that select t.
func buildHint(t caps.Tier) string {
	switch t {
	case caps.TierAVX2:
		return "GOEXPERIMENT=simd GOAMD64=v3"
	case caps.TierAVX512:
		return "GOEXPERIMENT=simd GOAMD64=v4"
	case caps.TierScalar:
		return "-tags purego"
	default:
		return "the default settings"
	}
}
