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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rnm/pkg/testutils"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestSimpleCommand(t *testing.T) {
	tests := []struct {
		name      string
		files     []string
		args      func(dir string, paths []string) []string
		wantCode  int
		wantFiles []string
		stdout    []string
		stderr    []string
	}{
		{
			name:  "renames_explicit_paths",
			files: []string{"file1", "file2", "filex"},
			args: func(dir string, paths []string) []string {
				return append([]string{"simple", "file(n:int)->(n)renamed.txt"}, paths...)
			},
			wantFiles: []string{"1renamed.txt", "2renamed.txt", "filex"},
			stdout:    []string{"[renaming simple]", "renamed", "no match"},
		},
		{
			name:  "renames_glob_matches",
			files: []string{"g-0001-a-0002-al-0003", "cover.jpg"},
			args: func(dir string, paths []string) []string {
				return []string{"simple", "g-(g:int)-a-(a:int)-al-(al:int)->artist-(a)-album-(al)-genre-(g)", "--glob", filepath.Join(dir, "*")}
			},
			wantFiles: []string{"artist-0002-album-0003-genre-0001", "cover.jpg"},
		},
		{
			name:  "dry_run_leaves_files",
			files: []string{"file1"},
			args: func(dir string, paths []string) []string {
				return append([]string{"simple", "--dry-run", "file(n:int)->(n)renamed.txt"}, paths...)
			},
			wantFiles: []string{"file1"},
			stdout:    []string{"dry run", "planned"},
		},
		{
			name:  "collision_fails_batch",
			files: []string{"x-1", "x-2"},
			args: func(dir string, paths []string) []string {
				return append([]string{"simple", "x-(n:int)->same"}, paths...)
			},
			wantCode:  1,
			wantFiles: []string{"same", "x-2"},
			stdout:    []string{"destination conflict"},
			stderr:    []string{"rename batch failed"},
		},
		{
			name:  "existing_destination_is_kept",
			files: []string{"file1", "1renamed.txt"},
			args: func(dir string, paths []string) []string {
				return []string{"simple", "file(n:int)->(n)renamed.txt", paths[0]}
			},
			wantCode:  1,
			wantFiles: []string{"1renamed.txt", "file1"},
		},
		{
			name:  "fail_on_no_match",
			files: []string{"filex"},
			args: func(dir string, paths []string) []string {
				return append([]string{"simple", "--fail-on-no-match", "file(n:int)->(n)renamed.txt"}, paths...)
			},
			wantCode:  1,
			wantFiles: []string{"filex"},
		},
		{
			name:  "compile_error_shows_position",
			files: []string{"t1"},
			args: func(dir string, paths []string) []string {
				return append([]string{"simple", "t(n:di)8->x"}, paths...)
			},
			wantCode:  1,
			wantFiles: []string{"t1"},
			stderr:    []string{"t(n:di)8->x", "↳ @col:4 expected type name (int, str)"},
		},
		{
			name:  "undeclared_reference",
			files: []string{"file1"},
			args: func(dir string, paths []string) []string {
				return append([]string{"simple", "file(n:int)->(m)out.txt"}, paths...)
			},
			wantCode:  1,
			wantFiles: []string{"file1"},
			stderr:    []string{`undeclared identifier "m"; declared: n`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			paths := testutils.WriteFiles(t, dir, tt.files...)

			res := execute(t, tt.args(dir, paths)...)

			assert.Equal(t, tt.wantCode, res.code, "stdout: %s\nstderr: %s", res.stdout, res.stderr)
			assert.Equal(t, tt.wantFiles, testutils.ListDir(t, dir))
			for _, want := range tt.stdout {
				assert.Contains(t, res.stdout, want)
			}
			for _, want := range tt.stderr {
				assert.Contains(t, res.stderr, want)
			}
		})
	}
}

func TestSimpleCommandParallel(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteFiles(t, dir, "a/file1", "a/file2", "b/file1", "c/file3")

	res := execute(t, "simple", "--parallel", "--workers", "2",
		"file(n:int)->(n)renamed.txt", "--glob", filepath.Join(dir, "**", "file*"))

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{"1renamed.txt", "2renamed.txt"}, testutils.ListDir(t, filepath.Join(dir, "a")))
	assert.Equal(t, []string{"1renamed.txt"}, testutils.ListDir(t, filepath.Join(dir, "b")))
	assert.Equal(t, []string{"3renamed.txt"}, testutils.ListDir(t, filepath.Join(dir, "c")))
}

func TestRegexCommand(t *testing.T) {
	dir := t.TempDir()
	paths := testutils.WriteFiles(t, dir, "IMG_0042.JPG", "notes.txt")

	res := execute(t, append([]string{"regex", `^IMG_(\d+)\.JPG$`, "photo-${1}.jpg"}, paths...)...)

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{"notes.txt", "photo-0042.jpg"}, testutils.ListDir(t, dir))

	res = execute(t, "regex", "(", "x", paths[1])
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "compiling pattern")
}

func TestCheckCommand(t *testing.T) {
	res := execute(t, "check", "file(n:int)-(rest)->(rest)_(n).txt", "file12-intro", "other")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, `literal    "file"`)
	assert.Contains(t, res.stdout, "capture    n:int")
	assert.Contains(t, res.stdout, "capture    rest:str")
	assert.Contains(t, res.stdout, "reference  rest:str")
	assert.Contains(t, res.stdout, "file12-intro -> intro_12.txt [n=12 rest=intro]")
	assert.Contains(t, res.stdout, "other (no match)")
	assert.Contains(t, res.stdout, "expression is valid")

	res = execute(t, "check", "wer324->")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "template after pattern separator")
}

func TestSimpleCommandRejectsAdjacentInts(t *testing.T) {
	dir := t.TempDir()
	paths := testutils.WriteFiles(t, dir, "1234")

	// rejected at compile time, before any path is touched
	res := execute(t, "simple", "(a:int)(b:int)->(b)(a)", paths[0])
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `capture "a" is directly followed by capture "b"`)
	assert.Contains(t, res.stderr, "↳ @col:7")
	assert.NotContains(t, res.stdout, "[renaming")
	assert.Equal(t, []string{"1234"}, testutils.ListDir(t, dir))
}

func TestApplyCommand(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteFiles(t, dir, "file1", "file2", "music/g-1-a-2-al-3", "music/archive/g-4-a-5-al-6")

	configPath := filepath.Join(dir, ".rnm.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
rules:
  - name: renumber
    expression: "file(n:int)->(n)renamed.txt"
    paths: [file1, file2]
  - name: music
    expression: "g-(g:int)-a-(a:int)-al-(al:int)->artist-(a)-album-(al)-genre-(g)"
    globs: ["music/**/g-*"]
    ignore: ["music/archive/**"]
`), 0o644))

	t.Run("single_rule", func(t *testing.T) {
		res := execute(t, "apply", "--config", configPath, "--dry-run", "music")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "[renaming music]")
		assert.NotContains(t, res.stdout, "[renaming renumber]")
		assert.Equal(t, []string{"archive", "g-1-a-2-al-3"}, testutils.ListDir(t, filepath.Join(dir, "music")))
	})

	t.Run("all_rules", func(t *testing.T) {
		res := execute(t, "apply", "-c", configPath)
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, []string{".rnm.yaml", "1renamed.txt", "2renamed.txt", "music"}, testutils.ListDir(t, dir))
		assert.Equal(t, []string{"archive", "artist-2-album-3-genre-1"}, testutils.ListDir(t, filepath.Join(dir, "music")))
		assert.Equal(t, []string{"g-4-a-5-al-6"}, testutils.ListDir(t, filepath.Join(dir, "music", "archive")))
	})

	t.Run("unknown_rule", func(t *testing.T) {
		res := execute(t, "apply", "--config", configPath, "nope")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, `unknown rule "nope"`)
	})
}

func TestApplyCommandBadExpression(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".rnm.hcl")
	require.NoError(t, os.WriteFile(configPath, []byte(`
rule "broken" {
  expression = "file(n:int)->(m)out.txt"
  paths      = ["file1"]
}
`), 0o644))

	res := execute(t, "apply", "--config", configPath)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `rule "broken"`)
	assert.Contains(t, res.stderr, "↳ @col:13")
}

func TestVersionCommand(t *testing.T) {
	res := execute(t, "version")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "rnm version info")
}

func TestUnknownCommand(t *testing.T) {
	res := execute(t, "rename-everything")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown command")
}
