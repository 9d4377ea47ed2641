package processing

import (
	"github.com/spf13/afero"

	"mediorg/internal/models"
)

// Run executes one full pass over targetDir: the recursive rename pass first,
// then, when mkFolders is set, the non-recursive folder promotion pass.
//
// The returned error is an up-front validation failure with no partial work
// performed; every per-item outcome is carried in the report instead.
func Run(fsys afero.Fs, targetDir string, cfg *models.RenameConfig, mkFolders bool) (*models.Report, error) {
	report := &models.Report{}

	renames, err := RenameTree(fsys, targetDir, cfg)
	if err != nil {
		return nil, err
	}
	report.Renames = renames

	if mkFolders {
		promotions, err := PromoteFiles(fsys, targetDir, cfg.DryRun)
		if err != nil {
			return nil, err
		}
		report.Promotions = promotions
	}
	return report, nil
}
