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
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rnm/cmd/rnm/commands"
	"github.com/walteh/rnm/cmd/rnm/opts"
	"github.com/walteh/rnm/pkg/log"
)

// newRootCmd builds the command tree around shared root options
func newRootCmd(root *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rnm",
		Short: "Bulk rename files with match-replace expressions",
		Long: `rnm renames many files at once. A match-replace expression such as
"file(n:int)->(n)renamed.txt" is checked before any file is touched, then
applied to every file name. Renames never overwrite an existing file, and a
failure on one file does not stop the others.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupStyling(root.Stdout)
			logger := setupLogging(root.Stderr, root.Debug)
			root.Console = log.New(root.Stdout, logger)
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
	}

	addRootFlags(cmd, root)

	cmd.AddCommand(
		commands.NewSimpleCmd(root),
		commands.NewRegexCmd(root),
		commands.NewCheckCmd(root),
		commands.NewApplyCmd(root),
		newVersionCmd(root),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, root *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&root.ConfigFile, "config", "c", "", "config file path (default .rnm.yaml, .rnm.yml, .rnm.hcl or .rnm.json)")
	cmd.PersistentFlags().BoolVarP(&root.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w)}).With().Timestamp().Logger()
}

// setupStyling turns colors off when stdout is not a terminal
func setupStyling(w io.Writer) {
	if isTerminal(w) {
		return
	}
	color.NoColor = true
	pterm.DisableStyling()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
