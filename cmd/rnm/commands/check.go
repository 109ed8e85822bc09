package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/walteh/rnm/cmd/rnm/opts"
	"github.com/walteh/rnm/pkg/mrp"
)

// NewCheckCmd creates the command that compiles an expression without renaming
func NewCheckCmd(root *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <expression> [sample...]",
		Short: "Compile an expression and try it on sample names",
		Long: `Check compiles the expression, prints its segments and, for each sample
name, the name it would be renamed to. No file is touched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := args[0]

			replacer, err := mrp.New(expr)
			if err != nil {
				return &ExpressionError{Expression: expr, Err: err}
			}

			root.Console.Print(DescribeExpression(replacer))

			if len(args) > 1 {
				root.Console.Print("samples")
				for _, sample := range args[1:] {
					root.Console.Print(describeSample(replacer, sample))
				}
			}

			root.Console.Success("expression is valid")
			return nil
		},
	}

	return cmd
}

// DescribeExpression lists the pattern and template segments with capture types
func DescribeExpression(r *mrp.Replacer) string {
	checked := r.Expression()

	var sb strings.Builder
	sb.WriteString("pattern\n")
	for _, seg := range checked.Expression().Pattern {
		switch s := seg.(type) {
		case mrp.Literal:
			fmt.Fprintf(&sb, "  %-10s %q\n", "literal", s.Text)
		case mrp.Capture:
			fmt.Fprintf(&sb, "  %-10s %s:%s\n", "capture", s.Name, s.Type)
		}
	}

	sb.WriteString("template\n")
	for _, seg := range checked.Expression().Template {
		switch s := seg.(type) {
		case mrp.Literal:
			fmt.Fprintf(&sb, "  %-10s %q\n", "literal", s.Text)
		case mrp.Reference:
			typ, _ := checked.Type(s.Name)
			fmt.Fprintf(&sb, "  %-10s %s:%s\n", "reference", s.Name, typ)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func describeSample(r *mrp.Replacer, sample string) string {
	bindings, ok := r.Matcher().Match(sample)
	if !ok {
		return fmt.Sprintf("  %s %s", sample, color.New(color.Faint).Sprint("(no match)"))
	}

	out, err := r.Formatter().Format(bindings)
	if err != nil {
		return fmt.Sprintf("  %s %s", sample, color.RedString("(%v)", err))
	}

	var values []string
	for _, c := range r.Matcher().Pattern().Captures() {
		values = append(values, fmt.Sprintf("%s=%s", c.Name, bindings[c.Name]))
	}

	return fmt.Sprintf("  %s -> %s %s", sample, color.GreenString(out),
		color.New(color.Faint).Sprintf("[%s]", strings.Join(values, " ")))
}
