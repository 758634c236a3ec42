// Package partition splits a list of changed files into ordered groups whose
// summed on-disk size stays under a transport ceiling.
package partition

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sevigo/accelerator-pr/internal/core"
)

var (
	// ErrFileTooLarge is returned when a single file exceeds the ceiling.
	// Files are never split across groups.
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
	ErrBadCeiling   = errors.New("ceiling must be positive")
)

// Partitioner sizes files through an afero filesystem so callers and tests
// can choose the backing store.
type Partitioner struct {
	fs afero.Fs
}

// New returns a Partitioner reading sizes from fsys. A nil fsys means the OS
// filesystem.
func New(fsys afero.Fs) *Partitioner {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Partitioner{fs: fsys}
}

// Groups lazily yields the greedy left-to-right fill of files under root.
// A group is emitted as soon as the next file would push it over ceiling.
// Missing files count as zero bytes. The sequence can be ranged over again
// to start from scratch; each pass re-reads sizes.
func (p *Partitioner) Groups(root string, files []string, ceiling int64) iter.Seq2[core.ChangeGroup, error] {
	return func(yield func(core.ChangeGroup, error) bool) {
		if ceiling <= 0 {
			yield(core.ChangeGroup{}, fmt.Errorf("%w: %d", ErrBadCeiling, ceiling))
			return
		}

		var group core.ChangeGroup
		for _, file := range files {
			path := file
			if !filepath.IsAbs(path) {
				path = filepath.Join(root, file)
			}
			size, err := p.size(path)
			if err != nil {
				yield(core.ChangeGroup{}, err)
				return
			}
			if size > ceiling {
				yield(core.ChangeGroup{}, fmt.Errorf("%w: %s is %d bytes, the limit is %d bytes",
					ErrFileTooLarge, path, size, ceiling))
				return
			}

			if group.TotalBytes+size > ceiling {
				if !yield(group, nil) {
					return
				}
				group = core.ChangeGroup{}
			}
			group.Files = append(group.Files, path)
			group.TotalBytes += size
		}
		if len(group.Files) > 0 {
			yield(group, nil)
		}
	}
}

// Partition collects Groups, failing before returning anything if any file
// violates the ceiling.
func (p *Partitioner) Partition(root string, files []string, ceiling int64) ([]core.ChangeGroup, error) {
	var groups []core.ChangeGroup
	for g, err := range p.Groups(root, files, ceiling) {
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (p *Partitioner) size(path string) (int64, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return 0, nil
	}
	return info.Size(), nil
}
