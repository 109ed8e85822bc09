package opts

import (
	"io"

	"github.com/walteh/rnm/pkg/log"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool
	Stdout     io.Writer
	Stderr     io.Writer
	// Console is set once flags are parsed
	Console *log.Logger
}

// BatchOpts are the flags shared by every command that renames files
type BatchOpts struct {
	Globs         []string
	Ignore        []string
	Parallel      bool
	Workers       int
	DryRun        bool
	FailOnNoMatch bool
}
