package workdir

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Directory is the working directory capability of the update pipeline.
// The dedup check, the stale build sweep, the downloader and the handoff
// reach the filesystem through it, which keeps the directory explicit and
// the pipeline testable against temporary roots.
type Directory interface {
	// Join resolves a file name to an absolute path inside the directory.
	Join(name string) string
	// Stat describes the named file.
	Stat(name string) (os.FileInfo, error)
	// Entries lists the directory contents without recursing.
	Entries() ([]os.DirEntry, error)
	// Remove deletes the named file.
	Remove(name string) error
	// Create opens the named file for writing, truncating an existing one.
	Create(name string) (io.WriteCloser, error)
}

// OSDirectory implements Directory on the local filesystem.
type OSDirectory struct {
	// root is the absolute directory path.
	root string
}

// New creates a directory capability rooted at the provided path.
// An empty root means the current working directory. The root is resolved
// to an absolute path once, so children spawned later get absolute paths
// regardless of their own working directory.
func New(root string) (*OSDirectory, error) {
	if root == "" {
		root = "."
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	return &OSDirectory{root: abs}, nil
}

// Join resolves a file name to an absolute path inside the directory.
func (d *OSDirectory) Join(name string) string {
	return filepath.Join(d.root, name)
}

// Stat describes the named file.
func (d *OSDirectory) Stat(name string) (os.FileInfo, error) {
	return os.Stat(d.Join(name))
}

// Entries lists the directory contents without recursing.
func (d *OSDirectory) Entries() ([]os.DirEntry, error) {
	return os.ReadDir(d.root)
}

// Remove deletes the named file.
func (d *OSDirectory) Remove(name string) error {
	return os.Remove(d.Join(name))
}

// Create opens the named file for writing, truncating an existing one.
func (d *OSDirectory) Create(name string) (io.WriteCloser, error) {
	return os.Create(d.Join(name))
}
