package operation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/walteh/rnm/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// claims tracks destinations taken and sources freed earlier in a group.
// Paths are keyed by their resolved directory so two spellings of one file
// share a claim.
type claims struct {
	claimed map[string]bool
	vacated map[string]bool
	dirs    map[string]string
}

func newClaims() *claims {
	return &claims{
		claimed: make(map[string]bool),
		vacated: make(map[string]bool),
		dirs:    make(map[string]string),
	}
}

func (c *claims) key(path string) string {
	dir := filepath.Dir(path)
	resolved, ok := c.dirs[dir]
	if !ok {
		resolved = resolveDir(dir)
		c.dirs[dir] = resolved
	}
	return filepath.Join(resolved, filepath.Base(path))
}

func (c *claims) move(src, dest string) {
	srcKey, destKey := c.key(src), c.key(dest)
	delete(c.vacated, destKey)
	c.claimed[destKey] = true
	delete(c.claimed, srcKey)
	c.vacated[srcKey] = true
}

// 🔀 rename decides and performs the rename of a single path
func (r *Runner) rename(ctx context.Context, c *claims, src string) Outcome {
	o := Outcome{Source: src}
	clean := filepath.Clean(src)

	newName, ok := r.opts.Strategy.Apply(filepath.Base(clean))
	if !ok {
		o.Status = status.StatusSkipped
		o.Reason = status.ReasonNoMatch
		return o
	}

	if !validName(newName) {
		o.Status = status.StatusFailed
		o.Reason = status.ReasonInvalidName
		o.Err = errors.Errorf("invalid file name %q", newName)
		return o
	}

	dest := filepath.Join(filepath.Dir(clean), newName)
	o.Destination = dest

	if dest == clean {
		o.Status = status.StatusSkipped
		o.Reason = status.ReasonUnchanged
		return o
	}

	taken, err := r.destinationTaken(ctx, c, clean, dest)
	if err != nil {
		o.Status = status.StatusFailed
		o.Reason = status.ReasonIO
		o.Err = err
		return o
	}
	if taken {
		o.Status = status.StatusFailed
		o.Reason = status.ReasonDestinationConflict
		o.Err = errors.Errorf("destination %s is already taken", dest)
		return o
	}

	if r.opts.DryRun {
		c.move(clean, dest)
		o.Status = status.StatusPlanned
		return o
	}

	if err := r.opts.FileManager.Rename(ctx, clean, dest); err != nil {
		o.Status = status.StatusFailed
		o.Reason = status.ReasonIO
		o.Err = errors.Errorf("renaming %s: %w", src, err)
		return o
	}

	c.move(clean, dest)
	o.Status = status.StatusRenamed
	return o
}

// destinationTaken reports whether dest is claimed in this group or exists
// on disk without having been vacated. A destination that is the source
// itself under another spelling (case-insensitive filesystems) is free.
func (r *Runner) destinationTaken(ctx context.Context, c *claims, src, dest string) (bool, error) {
	key := c.key(dest)
	if c.claimed[key] {
		return true, nil
	}
	if c.vacated[key] {
		return false, nil
	}

	destInfo, err := r.opts.FileManager.Lstat(ctx, dest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Errorf("checking destination %s: %w", dest, err)
	}

	srcInfo, err := r.opts.FileManager.Lstat(ctx, src)
	if err == nil && os.SameFile(srcInfo, destInfo) {
		return false, nil
	}

	return true, nil
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsRune(name, '/') && !strings.ContainsRune(name, filepath.Separator)
}
