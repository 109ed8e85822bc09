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
	"runtime"

	"github.com/walteh/rnm/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ErrBatchFailed is returned by Report.Err when at least one path failed.
var ErrBatchFailed = errors.New("rename batch failed")

// 🎯 Strategy turns a base file name into its new name.
// Apply must be safe for concurrent use.
type Strategy interface {
	// Apply returns the new name and true, or false when name does not match
	Apply(name string) (string, bool)
}

// StrategyFunc adapts a function to Strategy
type StrategyFunc func(name string) (string, bool)

func (f StrategyFunc) Apply(name string) (string, bool) {
	return f(name)
}

// 🔧 Options contains configuration for the runner
type Options struct {
	// Strategy computes new names, required
	Strategy Strategy
	// FileManager performs filesystem calls, defaults to the os backed manager
	FileManager status.FileManager
	// Formatter renders outcome log messages, defaults to the emoji formatter
	Formatter status.FileFormatter
	// DryRun plans renames without calling Rename
	DryRun bool
	// Parallel processes directory groups concurrently
	Parallel bool
	// Workers bounds the number of concurrent groups, defaults to GOMAXPROCS
	Workers int
	// FailOnNoMatch makes unmatched paths count as batch failures
	FailOnNoMatch bool
}

// 🏭 NewRunner creates a new runner with the given options
func NewRunner(opts Options) (*Runner, error) {
	if opts.Strategy == nil {
		return nil, errors.Errorf("strategy is required")
	}
	if opts.Workers < 0 {
		return nil, errors.Errorf("workers must not be negative, got %d", opts.Workers)
	}
	if opts.FileManager == nil {
		opts.FileManager = status.NewOSFileManager()
	}
	if opts.Formatter == nil {
		opts.Formatter = status.NewDefaultFileFormatter()
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{opts: opts}, nil
}
