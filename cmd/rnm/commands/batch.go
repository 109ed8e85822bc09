package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/walteh/rnm/cmd/rnm/opts"
	"github.com/walteh/rnm/pkg/discover"
	"github.com/walteh/rnm/pkg/log"
	"github.com/walteh/rnm/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// ExpressionError marks a rename expression that failed to compile
type ExpressionError struct {
	Expression string
	Err        error
}

func (e *ExpressionError) Error() string {
	return "compiling expression: " + e.Err.Error()
}

func (e *ExpressionError) Unwrap() error {
	return e.Err
}

func addBatchFlags(cmd *cobra.Command, b *opts.BatchOpts) {
	cmd.Flags().StringArrayVarP(&b.Globs, "glob", "g", nil, "doublestar pattern selecting files (repeatable)")
	cmd.Flags().StringArrayVarP(&b.Ignore, "ignore", "i", nil, "doublestar pattern excluding files (repeatable)")
	cmd.Flags().BoolVarP(&b.Parallel, "parallel", "p", false, "rename independent directories concurrently")
	cmd.Flags().IntVarP(&b.Workers, "workers", "w", 0, "maximum concurrent directories (default GOMAXPROCS)")
	cmd.Flags().BoolVarP(&b.DryRun, "dry-run", "n", false, "show what would be renamed without renaming")
	cmd.Flags().BoolVar(&b.FailOnNoMatch, "fail-on-no-match", false, "treat files that do not match as failures")
}

type batch struct {
	label      string
	expression string
	strategy   operation.Strategy
	files      discover.Options
	opts       opts.BatchOpts
}

// runBatch expands the batch files, renames them and prints every outcome
func runBatch(ctx context.Context, console *log.Logger, b batch) error {
	files, err := discover.Expand(ctx, b.files)
	if err != nil {
		return errors.Errorf("finding files: %w", err)
	}

	if len(files) == 0 {
		console.Warningf("%s: no files to rename", b.label)
		return nil
	}

	runner, err := operation.NewRunner(operation.Options{
		Strategy:      b.strategy,
		DryRun:        b.opts.DryRun,
		Parallel:      b.opts.Parallel,
		Workers:       b.opts.Workers,
		FailOnNoMatch: b.opts.FailOnNoMatch,
	})
	if err != nil {
		return errors.Errorf("creating runner: %w", err)
	}

	console.StartBatch(ctx, log.Batch{
		Label:      b.label,
		Expression: b.expression,
		DryRun:     b.opts.DryRun,
		Paths:      len(files),
	})

	report := runner.Run(ctx, files)
	for _, o := range report.Outcomes {
		console.LogOutcome(ctx, o)
	}

	if err := console.EndBatch(ctx, report); err != nil {
		return err
	}

	return report.Err()
}
