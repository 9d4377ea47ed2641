package processing

import (
	"errors"
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

// PromoteFiles moves each plain file in dir into a folder named after the
// file's stem, creating the folder when it does not yet exist.
//
// Only the immediate entries of dir are considered; subdirectories are
// reported as skipped and left untouched. The listing is read once up front.
// Per-entry errors never abort the pass; the returned error is only non-nil
// when dir itself cannot be read.
func PromoteFiles(fsys afero.Fs, dir string, dryRun bool) ([]models.PromotionResult, error) {
	if _, err := validation.ValidateDirectory(fsys, dir); err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	logging.D(1, "Scanning target folder for file-to-folder organization: %q", dir)

	writer := fswrite.New(fsys, dryRun)
	createdInPass := make(map[string]bool) // Dry-run parity with live folder creation
	results := make([]models.PromotionResult, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() {
			logging.D(2, "Skipping directory %q", name)
			results = append(results, models.PromotionResult{
				Name: name, Outcome: enums.PromoteSkippedNotAFile,
			})
			continue
		}

		stem, _ := transformations.SplitExt(name)
		folder := filepath.Join(dir, stem)

		exists := createdInPass[folder]
		isDir := exists
		if !exists {
			info, statErr := fsys.Stat(folder)
			switch {
			case statErr == nil:
				exists = true
				isDir = info.IsDir()
			case errors.Is(statErr, os.ErrNotExist):
			default:
				results = append(results, promoteFailure(name, stem, statErr))
				continue
			}
		}

		// A same-stem entry that is not a directory can never receive the
		// move; classify it identically in live and dry runs.
		if exists && !isDir {
			results = append(results, promoteFailure(name, stem,
				fmt.Errorf("entry %q exists and is not a directory", stem)))
			continue
		}

		outcome := enums.PromotePromoted
		if exists {
			logging.D(2, "Folder %q already exists", stem)
			outcome = enums.PromoteExistingFolder
		} else {
			if err := writer.MakeDir(folder); err != nil {
				results = append(results, promoteFailure(name, stem, err))
				continue
			}
			createdInPass[folder] = true
		}

		if err := writer.MoveIntoDir(filepath.Join(dir, name), folder); err != nil {
			results = append(results, promoteFailure(name, stem, err))
			continue
		}

		logging.D(2, "Moved %q into %q", name, folder)
		results = append(results, models.PromotionResult{
			Name: name, Folder: stem, Outcome: outcome,
		})
	}
	return results, nil
}

// promoteFailure records a per-entry failure and keeps the pass going.
func promoteFailure(name, folder string, err error) models.PromotionResult {
	logging.E("Failed to promote file %q: %v", name, err)
	vars.AddToErrorArray(err)
	return models.PromotionResult{
		Name: name, Folder: folder, Outcome: enums.PromoteFailed, Err: err,
	}
}
