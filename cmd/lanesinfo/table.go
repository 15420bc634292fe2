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
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/lanes"
)

func newTableCmd(a *app) *cobra.Command {
	var opName, kindName string
	var n int
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the resolution table of the build tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := lanes.Backends()
			if opName != "" {
				op, ok := lanes.ParseOp(opName)
				if !ok {
					return fmt.Errorf("unknown op %q", opName)
				}
				entries = lo.Filter(entries, func(e lanes.BackendEntry, _ int) bool { return e.Op == op })
			}
			if kindName != "" {
				k, ok := lanes.ParseLaneKind(kindName)
				if !ok {
					return fmt.Errorf("unknown lane kind %q", kindName)
				}
				entries = lo.Filter(entries, func(e lanes.BackendEntry, _ int) bool { return e.Kind == k })
			}
			if n < 0 {
				return fmt.Errorf("--lanes must not be negative, got %d", n)
			}
			a.log.Debugf("rendering %d entries for tier %s", len(entries), lanes.CurrentTier())

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleLight)
			header := table.Row{"op", "kind", "policy", "primitive"}
			if n > 0 {
				header = append(header, "registers", "tail")
			}
			tw.AppendHeader(header)
			for _, e := range entries {
				row := table.Row{e.Op, e.Kind, e.Policy, e.Primitive}
				if n > 0 {
					p := lanes.Resolve(e.Op, e.Kind, n)
					row = append(row, p.Registers, p.TailLanes)
				}
				tw.AppendRow(row)
			}
			tw.SetCaption("tier %s, %d-byte registers", lanes.CurrentTier(), lanes.RegisterBytes())
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&opName, "op", "", "only show this operation (e.g. cmp_le, bitselect)")
	cmd.Flags().StringVar(&kindName, "kind", "", "only show this lane kind (e.g. int8, float32)")
	cmd.Flags().IntVar(&n, "lanes", 0, "also resolve register counts for a vector of this many lanes")
	return cmd
}
