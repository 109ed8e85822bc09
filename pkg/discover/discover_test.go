package discover

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rnm/pkg/testutils"
)

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutils.WriteFiles(t, root,
		"file1",
		"file2",
		"notes.txt",
		"music/g-1-a-2-al-3.mp3",
		"music/cover.jpg",
		"music/live/g-4-a-5-al-6.mp3",
		"vendor/file9",
	)
	return root
}

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestExpand(t *testing.T) {
	root := setupTree(t)

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "single_level_glob",
			opts: Options{Globs: []string{"file*"}},
			want: []string{"file1", "file2"},
		},
		{
			name: "recursive_glob",
			opts: Options{Globs: []string{"**/*.mp3"}},
			want: []string{"music/g-1-a-2-al-3.mp3", "music/live/g-4-a-5-al-6.mp3"},
		},
		{
			name: "directories_are_not_matched",
			opts: Options{Globs: []string{"mus*"}},
			want: []string{},
		},
		{
			name: "ignore_patterns",
			opts: Options{Globs: []string{"**/file*"}, Ignore: []string{"vendor/**"}},
			want: []string{"file1", "file2"},
		},
		{
			name: "explicit_paths_first_and_deduplicated",
			opts: Options{Paths: []string{"file2"}, Globs: []string{"file*"}},
			want: []string{"file2", "file1"},
		},
		{
			name: "patterns_in_order",
			opts: Options{Globs: []string{"*.txt", "file*"}},
			want: []string{"notes.txt", "file1", "file2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Root = root
			for i, p := range opts.Paths {
				opts.Paths[i] = filepath.Join(root, p)
			}

			got, err := Expand(testutils.Context(t), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rel(t, root, got))
		})
	}
}

func TestExpandAbsolutePattern(t *testing.T) {
	root := setupTree(t)

	got, err := Expand(testutils.Context(t), Options{Globs: []string{filepath.Join(root, "music", "*.jpg")}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "music", "cover.jpg")}, got)
}

func TestExpandInvalidPattern(t *testing.T) {
	_, err := Expand(testutils.Context(t), Options{Globs: []string{"[a-"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")

	_, err = Expand(testutils.Context(t), Options{Ignore: []string{"{a,"}})
	require.Error(t, err)
}

func TestExpandEmpty(t *testing.T) {
	got, err := Expand(testutils.Context(t), Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}
