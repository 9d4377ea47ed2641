// Package processing walks target directories and applies filename
// operations and folder promotion to their contents.
package processing

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"mediorg/internal/domain/enums"
	"mediorg/internal/domain/vars"
	"mediorg/internal/models"
	"mediorg/internal/transformations"
	"mediorg/internal/utils/fs/fswrite"
	"mediorg/internal/utils/logging"
	"mediorg/internal/validation"
)

// treeRenamer holds the state of one recursive rename pass.
//
// claimed and vacated track target names taken and source names freed during
// the pass, so a dry run classifies conflicts exactly as a live run would.
type treeRenamer struct {
	writer  *fswrite.FSFileWriter
	cfg     *models.RenameConfig
	claimed map[string]bool
	vacated map[string]bool
	results []models.RenameResult
}

// RenameTree recursively renames every file under root according to cfg and
// returns one result per visited file.
//
// The returned error is only non-nil for an up-front validation failure
// (root missing or not a directory); per-file errors are reported in the
// result slice and never abort the traversal. Directories are never renamed.
func RenameTree(fsys afero.Fs, root string, cfg *models.RenameConfig) ([]models.RenameResult, error) {
	if _, err := validation.ValidateDirectory(fsys, root); err != nil {
		return nil, err
	}

	tr := &treeRenamer{
		writer:  fswrite.New(fsys, cfg.DryRun),
		cfg:     cfg,
		claimed: make(map[string]bool),
		vacated: make(map[string]bool),
	}

	logging.D(1, "Starting rename scan in directory %q", root)

	walkErr := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if info != nil && info.IsDir() {
				// Unreadable directory: record it and keep walking, the
				// result sequence carries files only
				logging.E("Failed to read directory %q: %v", path, err)
				vars.AddToErrorArray(err)
				return nil
			}
			// Unreadable file: report and keep walking
			tr.fail(filepath.Dir(path), filepath.Base(path), "", err)
			return nil
		}
		if info.IsDir() {
			return nil
		}
		tr.visit(path, info.Name())
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk directory %q: %w", root, walkErr)
	}
	return tr.results, nil
}

// visit processes a single file.
func (tr *treeRenamer) visit(path, name string) {
	dir := filepath.Dir(path)

	newName := transformations.TransformName(name, tr.cfg)
	if newName == name {
		tr.results = append(tr.results, models.RenameResult{
			Dir: dir, OldName: name, NewName: name,
			Outcome: enums.RenameSkippedNoChange,
		})
		return
	}

	target := filepath.Join(dir, newName)
	occupied, err := tr.targetOccupied(target)
	if err != nil {
		tr.fail(dir, name, newName, err)
		return
	}
	if occupied {
		logging.D(1, "Skipped (conflict): renaming %q to %q would overwrite an existing file", name, newName)
		tr.results = append(tr.results, models.RenameResult{
			Dir: dir, OldName: name, NewName: newName,
			Outcome: enums.RenameSkippedConflict,
		})
		return
	}

	if err := tr.writer.Rename(path, target); err != nil {
		tr.fail(dir, name, newName, err)
		return
	}

	tr.claimed[target] = true
	tr.vacated[path] = true
	logging.D(2, "Renamed %q -> %q", name, newName)
	tr.results = append(tr.results, models.RenameResult{
		Dir: dir, OldName: name, NewName: newName,
		Outcome: enums.RenameRenamed,
	})
}

// targetOccupied reports whether a rename target is taken, accounting for
// renames performed (or simulated) earlier in this pass.
func (tr *treeRenamer) targetOccupied(target string) (bool, error) {
	if tr.claimed[target] {
		return true, nil
	}
	if tr.vacated[target] {
		return false, nil
	}
	return tr.writer.Exists(target)
}

// fail records a per-file failure and keeps the pass going.
func (tr *treeRenamer) fail(dir, name, newName string, err error) {
	logging.E("Failed to rename file %q: %v", name, err)
	vars.AddToErrorArray(err)
	tr.results = append(tr.results, models.RenameResult{
		Dir: dir, OldName: name, NewName: newName,
		Outcome: enums.RenameFailed, Err: err,
	})
}
