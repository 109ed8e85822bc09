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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/walteh/rnm/cmd/rnm/commands"
	"github.com/walteh/rnm/cmd/rnm/opts"
	"github.com/walteh/rnm/pkg/config"
	"github.com/walteh/rnm/pkg/mrp"
	"gitlab.com/tozd/go/errors"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := &opts.RootOpts{Stdout: stdout, Stderr: stderr}

	cmd := newRootCmd(root)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, describeError(err))
		return 1
	}
	return 0
}

// describeError renders compile errors with a caret under the offending position
func describeError(err error) string {
	var exprErr *commands.ExpressionError
	if errors.As(err, &exprErr) {
		return mrp.Diagnostic(exprErr.Expression, exprErr.Err)
	}

	var ruleErr *config.RuleError
	if errors.As(err, &ruleErr) {
		return fmt.Sprintf("%s %s\n%s", color.RedString("❌"), fmt.Sprintf("rule %q", ruleErr.Rule), mrp.Diagnostic(ruleErr.Expression, ruleErr.Err))
	}

	return fmt.Sprintf("%s %v", color.RedString("❌"), err)
}
