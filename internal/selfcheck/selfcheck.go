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

// Package selfcheck runs the dispatched vector operations on random inputs
// and compares every lane against Go's own scalar operators.
package selfcheck

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-lanes/lanes"
)

// SupportedWidths lists the lane counts Run can check.
var SupportedWidths = []int{1, 2, 3, 4, 8, 13, 16, 32, 64, 128}

// maxMismatches caps how many mismatches one width records.
const maxMismatches = 16

// Options configures a run.
type Options struct {
	// Iterations is the number of random input sets per width and lane kind.
	Iterations int
	Seed       uint64
	// Widths defaults to SupportedWidths when empty.
	Widths []int
}

// Mismatch is one lane where a dispatched operation disagreed with the
// scalar result.
type Mismatch struct {
	Op    string
	Kind  lanes.LaneKind
	Width int
	Lane  int
	Got   string
	Want  string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("selfcheck: %s %s/%d lane %d: got %s, want %s", m.Op, m.Kind, m.Width, m.Lane, m.Got, m.Want)
}

// Report summarizes a run.
type Report struct {
	Tier       lanes.Tier
	Widths     []int
	Checks     int
	Mismatches []*Mismatch
}

// Run checks every lane kind at every requested width. Widths run in
// parallel. The returned error joins every recorded Mismatch, or is the
// context error if ctx ends first.
func Run(ctx context.Context, opts Options) (Report, error) {
	widths := lo.Uniq(opts.Widths)
	if len(widths) == 0 {
		widths = slices.Clone(SupportedWidths)
	}
	slices.Sort(widths)
	for _, w := range widths {
		if !lo.Contains(SupportedWidths, w) {
			return Report{}, fmt.Errorf("selfcheck: unsupported width %d", w)
		}
	}
	if opts.Iterations <= 0 {
		return Report{}, fmt.Errorf("selfcheck: iterations must be positive, got %d", opts.Iterations)
	}

	recs := make([]*recorder, len(widths))
	g, ctx := errgroup.WithContext(ctx)
	for i, w := range widths {
		recs[i] = &recorder{width: w}
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(opts.Seed, uint64(w)))
			return checkers[w](ctx, recs[i], rng, opts.Iterations)
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{
		Tier:       lanes.CurrentTier(),
		Widths:     widths,
		Checks:     lo.SumBy(recs, func(r *recorder) int { return r.checks }),
		Mismatches: lo.FlatMap(recs, func(r *recorder, _ int) []*Mismatch { return r.mismatches }),
	}
	errs := lo.Map(report.Mismatches, func(m *Mismatch, _ int) error { return m })
	return report, errors.Join(errs...)
}

// recorder collects the results of one width. It is owned by one goroutine.
type recorder struct {
	width      int
	checks     int
	mismatches []*Mismatch
}

func (r *recorder) fail(op string, k lanes.LaneKind, lane int, got, want any) {
	if len(r.mismatches) >= maxMismatches {
		return
	}
	r.mismatches = append(r.mismatches, &Mismatch{
		Op:    op,
		Kind:  k,
		Width: r.width,
		Lane:  lane,
		Got:   fmt.Sprint(got),
		Want:  fmt.Sprint(want),
	})
}

type checker func(ctx context.Context, rec *recorder, rng *rand.Rand, iterations int) error

type (
	w3  struct{}
	w13 struct{}
)

func (w3) N() int  { return 3 }
func (w13) N() int { return 13 }

var checkers = map[int]checker{
	1:   checkWidth[lanes.W1],
	2:   checkWidth[lanes.W2],
	3:   checkWidth[w3],
	4:   checkWidth[lanes.W4],
	8:   checkWidth[lanes.W8],
	13:  checkWidth[w13],
	16:  checkWidth[lanes.W16],
	32:  checkWidth[lanes.W32],
	64:  checkWidth[lanes.W64],
	128: checkWidth[lanes.Double[lanes.W64]],
}

func checkWidth[W lanes.Width](ctx context.Context, rec *recorder, rng *rand.Rand, iterations int) error {
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		checkKind[int8, W](rec, rng)
		checkKind[uint8, W](rec, rng)
		checkKind[int16, W](rec, rng)
		checkKind[uint16, W](rec, rng)
		checkKind[int32, W](rec, rng)
		checkKind[uint32, W](rec, rng)
		checkKind[int64, W](rec, rng)
		checkKind[uint64, W](rec, rng)
		checkKind[float32, W](rec, rng)
		checkKind[float64, W](rec, rng)
	}
	return nil
}
