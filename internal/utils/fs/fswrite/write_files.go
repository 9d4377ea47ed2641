// Package fswrite performs the filesystem mutations for rename and promotion
// passes, with dry-run gating in one place.
package fswrite

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"mediorg/internal/domain/consts"
	"mediorg/internal/utils/logging"
)

// FSFileWriter executes rename, mkdir and move operations against a filesystem.
//
// With dryRun set, every mutating call logs the would-be operation and returns
// nil without touching the filesystem.
type FSFileWriter struct {
	fs     afero.Fs
	dryRun bool
}

// New returns an FSFileWriter for the given filesystem handle.
func New(fsys afero.Fs, dryRun bool) *FSFileWriter {
	return &FSFileWriter{fs: fsys, dryRun: dryRun}
}

// Exists reports whether any filesystem entry exists at path.
func (w *FSFileWriter) Exists(path string) (bool, error) {
	return afero.Exists(w.fs, path)
}

// Rename renames src to dst. The caller is responsible for conflict checks.
func (w *FSFileWriter) Rename(src, dst string) error {
	if w.dryRun {
		logging.D(1, "[DRY RUN] Would rename %q -> %q", src, dst)
		return nil
	}
	if err := w.fs.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to rename %q to %q: %w", src, dst, err)
	}
	return nil
}

// MakeDir creates a directory at path.
func (w *FSFileWriter) MakeDir(path string) error {
	if w.dryRun {
		logging.D(1, "[DRY RUN] Would create folder %q", path)
		return nil
	}
	if err := w.fs.MkdirAll(path, consts.PermsGenericDir); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", path, err)
	}
	return nil
}

// MoveIntoDir moves src into the directory dir, keeping its base name.
func (w *FSFileWriter) MoveIntoDir(src, dir string) error {
	dst := filepath.Join(dir, filepath.Base(src))
	if w.dryRun {
		logging.D(1, "[DRY RUN] Would move %q into %q", src, dir)
		return nil
	}
	if err := w.fs.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to move %q into %q: %w", src, dir, err)
	}
	return nil
}
