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
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/internal/selfcheck"
)

func newSelfCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfcheck",
		Short: "Check dispatched kernels against Go's scalar operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			opts := selfcheck.Options{
				Iterations: a.cfg.SelfCheck.Iterations,
				Seed:       a.cfg.SelfCheck.Seed,
				Widths:     a.cfg.SelfCheck.Widths,
			}
			a.log.WithField("widths", opts.Widths).Debugf("running %d iterations, seed %d", opts.Iterations, opts.Seed)

			start := time.Now()
			report, err := selfcheck.Run(ctx, opts)
			if err != nil && len(report.Mismatches) == 0 {
				return fmt.Errorf("selfcheck: %w", err)
			}
			for _, m := range report.Mismatches {
				a.log.Error(m)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tier %s: %d checks over widths %v, %d mismatches (%s)\n",
				report.Tier, report.Checks, report.Widths, len(report.Mismatches), time.Since(start).Round(time.Millisecond))
			if len(report.Mismatches) > 0 {
				return fmt.Errorf("selfcheck found %d mismatches", len(report.Mismatches))
			}
			return nil
		},
	}
	cmd.Flags().Int("iterations", 0, "random input sets per width and lane kind")
	cmd.Flags().Uint64("seed", 0, "random seed")
	cmd.Flags().IntSlice("widths", nil, "lane counts to check")
	return cmd
}
