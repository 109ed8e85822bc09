package commands

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rnm/cmd/rnm/opts"
	"github.com/walteh/rnm/pkg/config"
	"github.com/walteh/rnm/pkg/discover"
	"github.com/walteh/rnm/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates the command that runs rules from the config file
func NewApplyCmd(root *opts.RootOpts) *cobra.Command {
	var b opts.BatchOpts

	cmd := &cobra.Command{
		Use:   "apply [rule...]",
		Short: "Run rename rules from the config file",
		Long: `Apply loads the config file (--config, or .rnm.yaml, .rnm.yml, .rnm.hcl or
.rnm.json in the current directory) and runs the named rules, or every rule
when none is named. Relative globs and paths resolve against the directory
of the config file. Flags given on the command line override the file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			path := root.ConfigFile
			if path == "" {
				found, err := config.FindFile(".")
				if err != nil {
					return errors.Errorf("finding config file: %w", err)
				}
				if found == "" {
					return errors.Errorf("no config file found; pass --config or create %s", config.DefaultFileNames[0])
				}
				path = found
			}

			cfg, err := config.Load(ctx, path)
			if err != nil {
				return err
			}

			rules, err := cfg.Select(args...)
			if err != nil {
				return err
			}

			batchOpts := mergeBatchOpts(cmd, cfg, b)

			failed := 0
			for _, rule := range rules {
				err := runBatch(ctx, root.Console, batch{
					label:      rule.Name,
					expression: rule.Expression,
					strategy:   rule.Replacer(),
					files: discover.Options{
						Root:   cfg.Dir(),
						Paths:  resolvePaths(cfg.Dir(), rule.Paths),
						Globs:  append(append([]string{}, rule.Globs...), b.Globs...),
						Ignore: append(append([]string{}, rule.Ignore...), b.Ignore...),
					},
					opts: batchOpts,
				})
				if err != nil {
					if !errors.Is(err, operation.ErrBatchFailed) {
						return errors.Errorf("rule %q: %w", rule.Name, err)
					}
					failed++
				}
				root.Console.LogNewline()
			}

			if failed > 0 {
				return errors.Errorf("%d of %d rules: %w", failed, len(rules), operation.ErrBatchFailed)
			}
			return nil
		},
	}

	addBatchFlags(cmd, &b)
	return cmd
}

// mergeBatchOpts prefers flags set on the command line over config values
func mergeBatchOpts(cmd *cobra.Command, cfg *config.Config, b opts.BatchOpts) opts.BatchOpts {
	out := b
	if !cmd.Flags().Changed("parallel") {
		out.Parallel = cfg.Parallel
	}
	if !cmd.Flags().Changed("workers") {
		out.Workers = cfg.Workers
	}
	if !cmd.Flags().Changed("dry-run") {
		out.DryRun = cfg.DryRun
	}
	if !cmd.Flags().Changed("fail-on-no-match") {
		out.FailOnNoMatch = cfg.FailOnNoMatch
	}
	return out
}

func resolvePaths(dir string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		out = append(out, p)
	}
	return out
}
