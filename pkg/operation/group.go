package operation

import "path/filepath"

// 📁 Group is a set of paths processed sequentially by one worker
type Group struct {
	// Dir is the parent directory shared by every path, as spelled by its
	// first path. Empty for mixed groups.
	Dir   string
	Paths []string

	index []int
}

// GroupByDir partitions paths by parent directory.
// Groups appear in order of their first path and keep input order inside.
// Directories are compared after resolving them, so "d/a" and "/abs/d/b"
// land in the same group.
func GroupByDir(paths []string) []Group {
	var groups []Group
	byDir := make(map[string]int)
	resolved := make(map[string]string)

	for i, p := range paths {
		dir := filepath.Dir(filepath.Clean(p))
		key, ok := resolved[dir]
		if !ok {
			key = resolveDir(dir)
			resolved[dir] = key
		}

		gi, ok := byDir[key]
		if !ok {
			gi = len(groups)
			byDir[key] = gi
			groups = append(groups, Group{Dir: dir})
		}
		groups[gi].Paths = append(groups[gi].Paths, p)
		groups[gi].index = append(groups[gi].index, i)
	}

	return groups
}

// resolveDir returns the absolute, symlink-free form of dir. A directory that
// cannot be resolved on disk falls back to its absolute spelling.
func resolveDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Clean(dir)
	}
	if target, err := filepath.EvalSymlinks(abs); err == nil {
		return target
	}
	return abs
}
