package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/rnm/cmd/rnm/opts"
	"github.com/walteh/rnm/pkg/discover"
	"github.com/walteh/rnm/pkg/mrp"
)

// NewSimpleCmd creates the command that renames with an MRP expression
func NewSimpleCmd(root *opts.RootOpts) *cobra.Command {
	var b opts.BatchOpts

	cmd := &cobra.Command{
		Use:   "simple <expression> [path...]",
		Short: "Rename files with a match-replace expression",
		Long: `Simple renames files whose base name matches the pattern half of the
expression, using the template half to build the new name.

  rnm simple "file(n:int)->(n)renamed.txt" file1 file2
  rnm simple "g-(g:int)-a-(a:int)->(a)-(g)" --glob "music/**/*.mp3"

Captures are written (name) or (name:type) with type int or str; the template
refers to them as (name). Existing files are never overwritten.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := args[0]

			replacer, err := mrp.New(expr)
			if err != nil {
				return &ExpressionError{Expression: expr, Err: err}
			}

			return runBatch(cmd.Context(), root.Console, batch{
				label:      "simple",
				expression: replacer.String(),
				strategy:   replacer,
				files:      discover.Options{Paths: args[1:], Globs: b.Globs, Ignore: b.Ignore},
				opts:       b,
			})
		},
	}

	addBatchFlags(cmd, &b)
	return cmd
}
