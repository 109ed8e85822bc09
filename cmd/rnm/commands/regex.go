package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/rnm/cmd/rnm/opts"
	"github.com/walteh/rnm/pkg/discover"
	"github.com/walteh/rnm/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// NewRegexCmd creates the command that renames with a regular expression
func NewRegexCmd(root *opts.RootOpts) *cobra.Command {
	var b opts.BatchOpts

	cmd := &cobra.Command{
		Use:   "regex <pattern> <replacement> [path...]",
		Short: "Rename files with a regular expression",
		Long: `Regex replaces every match of pattern in each base name. The replacement
may use $1 or ${name} to refer to groups.

  rnm regex '^IMG_(\d+)\.JPG$' 'photo-${1}.jpg' --glob '*.JPG'`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			replacer, err := text.NewRegexReplacer(args[0], args[1])
			if err != nil {
				return errors.Errorf("creating regex replacer: %w", err)
			}

			return runBatch(cmd.Context(), root.Console, batch{
				label:      "regex",
				expression: replacer.String(),
				strategy:   replacer,
				files:      discover.Options{Paths: args[2:], Globs: b.Globs, Ignore: b.Ignore},
				opts:       b,
			})
		},
	}

	addBatchFlags(cmd, &b)
	return cmd
}
