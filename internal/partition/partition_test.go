package partition

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/work"

func memFS(t *testing.T, sizes map[string]int) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, size := range sizes {
		require.NoError(t, afero.WriteFile(fsys, filepath.Join(root, name), make([]byte, size), 0o644))
	}
	return fsys
}

func abs(names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = filepath.Join(root, n)
	}
	return out
}

func filesOf(t *testing.T, p *Partitioner, files []string, ceiling int64) [][]string {
	t.Helper()
	groups, err := p.Partition(root, files, ceiling)
	require.NoError(t, err)
	var out [][]string
	for _, g := range groups {
		out = append(out, g.Files)
	}
	return out
}

func TestPartition_Examples(t *testing.T) {
	p := New(memFS(t, map[string]int{"a": 10, "b": 15, "c": 5}))

	tests := []struct {
		name    string
		files   []string
		ceiling int64
		want    [][]string
	}{
		{
			name:    "greedy split",
			files:   []string{"a", "b", "c"},
			ceiling: 20,
			want:    [][]string{abs("a"), abs("b", "c")},
		},
		{
			name:    "everything fits",
			files:   []string{"a", "b", "c"},
			ceiling: 30,
			want:    [][]string{abs("a", "b", "c")},
		},
		{
			name:    "exact fit stays in one group",
			files:   []string{"b", "c"},
			ceiling: 20,
			want:    [][]string{abs("b", "c")},
		},
		{
			name:    "one file per group",
			files:   []string{"a", "b", "c"},
			ceiling: 15,
			want:    [][]string{abs("a"), abs("b"), abs("c")},
		},
		{
			name:    "empty input",
			files:   nil,
			ceiling: 1,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filesOf(t, p, tt.files, tt.ceiling))
		})
	}
}

func TestPartition_MissingFileIsZeroBytes(t *testing.T) {
	p := New(afero.NewMemMapFs())
	groups, err := p.Partition(root, []string{"ghost.txt"}, 1)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, abs("ghost.txt"), groups[0].Files)
	assert.Zero(t, groups[0].TotalBytes)
}

func TestPartition_FileTooLarge(t *testing.T) {
	p := New(memFS(t, map[string]int{"small": 1, "huge": 100}))

	_, err := p.Partition(root, []string{"small", "huge"}, 99)
	require.ErrorIs(t, err, ErrFileTooLarge)
	assert.Contains(t, err.Error(), filepath.Join(root, "huge"))
	assert.Contains(t, err.Error(), "100 bytes")
}

func TestPartition_BadCeiling(t *testing.T) {
	p := New(afero.NewMemMapFs())
	_, err := p.Partition(root, []string{"a"}, 0)
	assert.ErrorIs(t, err, ErrBadCeiling)
}

func TestGroups_LazyAndRestartable(t *testing.T) {
	p := New(memFS(t, map[string]int{"a": 10, "b": 15, "c": 5}))
	seq := p.Groups(root, []string{"a", "b", "c"}, 20)

	// Stop after the first group.
	var first [][]string
	for g, err := range seq {
		require.NoError(t, err)
		first = append(first, g.Files)
		break
	}
	assert.Equal(t, [][]string{abs("a")}, first)

	// A second pass starts over.
	var count int
	for _, err := range seq {
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 2, count)
}

func TestGroups_EmitsEarlierGroupsBeforeFailure(t *testing.T) {
	p := New(memFS(t, map[string]int{"a": 10, "b": 10, "big": 50}))

	var got [][]string
	var gotErr error
	for g, err := range p.Groups(root, []string{"a", "b", "big"}, 15) {
		if err != nil {
			gotErr = err
			break
		}
		got = append(got, g.Files)
	}
	assert.Equal(t, [][]string{abs("a")}, got)
	assert.ErrorIs(t, gotErr, ErrFileTooLarge)
}

func TestPartition_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for run := 0; run < 50; run++ {
		sizes := map[string]int{}
		var files []string
		n := rng.IntN(30)
		for i := 0; i < n; i++ {
			name := fmt.Sprintf("f%02d", i)
			files = append(files, name)
			// Leave roughly one in eight files off disk.
			if rng.IntN(8) != 0 {
				sizes[name] = rng.IntN(64)
			}
		}
		ceiling := int64(64 + rng.IntN(128))
		p := New(memFS(t, sizes))

		groups, err := p.Partition(root, files, ceiling)
		require.NoError(t, err)

		var concat []string
		for i, g := range groups {
			require.NotEmpty(t, g.Files)
			var sum int64
			for _, f := range g.Files {
				sum += int64(sizes[filepath.Base(f)])
			}
			assert.Equal(t, sum, g.TotalBytes)
			assert.LessOrEqual(t, g.TotalBytes, ceiling)

			if i < len(groups)-1 {
				next := groups[i+1].Files[0]
				assert.Greater(t, g.TotalBytes+int64(sizes[filepath.Base(next)]), ceiling,
					"group %d closed although the next file fit", i)
			}
			concat = append(concat, g.Files...)
		}
		if len(files) == 0 {
			assert.Empty(t, concat)
		} else {
			assert.Equal(t, abs(files...), concat)
		}
	}
}
