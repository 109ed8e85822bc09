// Copyright 2025 walteh LLC
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

package operation

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/rnm/pkg/status"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes rename batches
type Runner struct {
	opts Options
}

// 🏃 Run renames every path and returns one outcome per path in input order.
// In parallel mode paths are grouped by parent directory first.
func (r *Runner) Run(ctx context.Context, paths []string) *Report {
	if r.opts.Parallel {
		return r.RunGroups(ctx, GroupByDir(paths))
	}
	return r.RunGroups(ctx, []Group{{Paths: paths}})
}

// 🔄 RunGroups processes each group sequentially and independent groups
// concurrently when the runner is parallel. Collision detection is scoped
// to a group, so callers must not put one destination directory in two groups.
func (r *Runner) RunGroups(ctx context.Context, groups []Group) *Report {
	batchID := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().Str("batch", batchID).Logger()
	ctx = logger.WithContext(ctx)

	offsets := make([]int, len(groups))
	total := 0
	for i, g := range groups {
		offsets[i] = total
		total += len(g.Paths)
	}

	workers := 1
	if r.opts.Parallel {
		workers = max(min(len(groups), r.opts.Workers), 1)
	}

	logger.Debug().
		Int("paths", total).
		Int("groups", len(groups)).
		Int("workers", workers).
		Bool("dry_run", r.opts.DryRun).
		Msg("starting rename batch")

	results := make([][]Outcome, len(groups))
	if workers == 1 {
		for i, g := range groups {
			results[i] = r.runGroup(ctx, g, offsets[i])
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(workers)
		for i, g := range groups {
			eg.Go(func() error {
				results[i] = r.runGroup(ctx, g, offsets[i])
				return nil
			})
		}
		_ = eg.Wait()
	}

	outcomes := make([]Outcome, 0, total)
	for _, res := range results {
		outcomes = append(outcomes, res...)
	}
	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomes[i].Index < outcomes[j].Index
	})

	report := &Report{
		BatchID:       batchID,
		DryRun:        r.opts.DryRun,
		FailOnNoMatch: r.opts.FailOnNoMatch,
		Groups:        len(groups),
		Workers:       workers,
		Outcomes:      outcomes,
	}

	logger.Debug().
		Int("renamed", report.Count(status.StatusRenamed)).
		Int("planned", report.Count(status.StatusPlanned)).
		Int("skipped", report.Count(status.StatusSkipped)).
		Int("failed", report.Count(status.StatusFailed)).
		Msg("rename batch finished")

	return report
}

// 🔁 runGroup walks one group in order with its own claim set
func (r *Runner) runGroup(ctx context.Context, g Group, offset int) []Outcome {
	logger := zerolog.Ctx(ctx).With().Str("group", g.Dir).Logger()
	ctx = logger.WithContext(ctx)

	c := newClaims()
	out := make([]Outcome, len(g.Paths))

	for j, p := range g.Paths {
		o := r.rename(ctx, c, p)
		o.Index = offset + j
		if g.index != nil {
			o.Index = g.index[j]
		}
		out[j] = o

		ev := logger.Debug()
		if o.Status == status.StatusFailed {
			ev = logger.Warn()
		}
		ev.Str("from", o.Source).
			Str("to", o.Destination).
			Stringer("status", o.Status).
			Stringer("reason", o.Reason).
			Err(o.Err).
			Msg(o.Format(r.opts.Formatter))
	}

	logger.Trace().Msg(r.opts.Formatter.FormatProgress(len(g.Paths), len(g.Paths)))
	return out
}
