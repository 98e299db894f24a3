package updater

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dest4590/collapse-updater/internal/config"
	"github.com/dest4590/collapse-updater/internal/repository/workdir"
)

// fakeEntry is a minimal os.DirEntry for scripted directory listings.
type fakeEntry struct {
	name string
	dir  bool
}

func (e fakeEntry) Name() string { return e.name }

func (e fakeEntry) IsDir() bool { return e.dir }

func (e fakeEntry) Type() os.FileMode {
	if e.dir {
		return os.ModeDir
	}

	return 0
}

func (e fakeEntry) Info() (os.FileInfo, error) { return nil, os.ErrInvalid }

// fakeDirectory scripts workdir behaviour for failure injection.
type fakeDirectory struct {
	entries    []os.DirEntry
	entriesErr error
	removeErr  map[string]error
	removed    []string
	createFile io.WriteCloser
	createErr  error
}

func (d *fakeDirectory) Join(name string) string { return filepath.Join("/fake", name) }

func (d *fakeDirectory) Stat(string) (os.FileInfo, error) { return nil, os.ErrNotExist }

func (d *fakeDirectory) Entries() ([]os.DirEntry, error) { return d.entries, d.entriesErr }

func (d *fakeDirectory) Remove(name string) error {
	if err := d.removeErr[name]; err != nil {
		return err
	}

	d.removed = append(d.removed, name)

	return nil
}

func (d *fakeDirectory) Create(string) (io.WriteCloser, error) {
	return d.createFile, d.createErr
}

// TestRunnerPurgeStale verifies the sweep against a real directory: matching
// stale builds are removed, the exclusion name and unrelated files survive.
func TestRunnerPurgeStale(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	dir, err := workdir.New(root)
	require.NoError(t, err)

	for _, name := range []string{
		"CollapseLoader-v1.exe",
		"CollapseLoader-old.exe",
		"CollapseLoader-v2.exe",
		"OtherApp-v1.exe",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o755))
	}

	// A directory matching the pattern must not be touched.
	require.NoError(t, os.Mkdir(filepath.Join(root, "CollapseLoader-data.exe"), 0o755))

	r := &runner{cfg: config.Default(), dir: dir, sink: discardSink{}}
	r.purgeStale(context.Background(), "CollapseLoader-v2.exe")

	var left []string

	entries, err := os.ReadDir(root)
	require.NoError(t, err)

	for _, entry := range entries {
		left = append(left, entry.Name())
	}

	require.ElementsMatch(t, []string{
		"CollapseLoader-v2.exe",
		"CollapseLoader-data.exe",
		"OtherApp-v1.exe",
		"notes.txt",
	}, left)
}

// TestRunnerPurgeStaleContinuesOnError ensures a failing deletion is skipped
// without aborting the sweep and a listing failure aborts it quietly.
func TestRunnerPurgeStaleContinuesOnError(t *testing.T) {
	t.Parallel()

	dir := &fakeDirectory{
		entries: []os.DirEntry{
			fakeEntry{name: "CollapseLoader-v1.exe"},
			fakeEntry{name: "CollapseLoader-v1.5.exe"},
			fakeEntry{name: "CollapseLoader-data.exe", dir: true},
		},
		removeErr: map[string]error{
			"CollapseLoader-v1.exe": errors.New("file is locked"),
		},
	}

	r := &runner{cfg: config.Default(), dir: dir, sink: discardSink{}}
	r.purgeStale(context.Background(), "CollapseLoader-v2.exe")

	require.Equal(t, []string{"CollapseLoader-v1.5.exe"}, dir.removed)

	// Listing failure: nothing happens, nothing panics.
	broken := &fakeDirectory{entriesErr: errors.New("permission denied")}

	r = &runner{cfg: config.Default(), dir: broken, sink: discardSink{}}
	r.purgeStale(context.Background(), "CollapseLoader-v2.exe")

	require.Empty(t, broken.removed)
}
