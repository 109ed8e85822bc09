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

// Package discover turns explicit paths and glob patterns into a rename batch.
package discover

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Options describes which files make up a batch
type Options struct {
	// Root resolves relative globs and ignore patterns, defaults to "."
	Root string
	// Paths are taken as given, before any glob match
	Paths []string
	// Globs are doublestar patterns ("**" crosses directories)
	Globs []string
	// Ignore drops paths whose slash form relative to Root matches
	Ignore []string
}

// 📂 Expand returns the batch in a stable order: explicit paths first, then
// glob matches pattern by pattern in walk order. Duplicates keep their
// first position. Globs only match regular files and symlinks, never directories.
func Expand(ctx context.Context, opts Options) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	root := opts.Root
	if root == "" {
		root = "."
	}

	for _, p := range append(append([]string{}, opts.Globs...), opts.Ignore...) {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return nil, errors.Errorf("invalid pattern %q", p)
		}
	}

	seen := make(map[string]bool)
	var out []string

	add := func(p string) {
		key := filepath.Clean(p)
		if seen[key] {
			return
		}
		seen[key] = true
		if ignored(root, p, opts.Ignore) {
			logger.Debug().Str("path", p).Msg("path ignored by pattern")
			return
		}
		out = append(out, p)
	}

	for _, p := range opts.Paths {
		add(p)
	}

	for _, pattern := range opts.Globs {
		matches, err := glob(root, pattern)
		if err != nil {
			return nil, errors.Errorf("expanding %q: %w", pattern, err)
		}
		logger.Debug().Str("pattern", pattern).Int("matches", len(matches)).Msg("expanded glob")
		for _, m := range matches {
			add(m)
		}
	}

	return out, nil
}

func glob(root, pattern string) ([]string, error) {
	if filepath.IsAbs(pattern) {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return matches, nil
	}

	matches, err := doublestar.Glob(os.DirFS(root), filepath.ToSlash(pattern), doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, filepath.Join(root, filepath.FromSlash(m)))
	}
	return out, nil
}

func ignored(root, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	rel := path
	if r, err := filepath.Rel(root, path); err == nil {
		rel = r
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range patterns {
		// patterns were validated up front
		if ok, _ := doublestar.Match(filepath.ToSlash(pattern), rel); ok {
			return true
		}
	}
	return false
}
