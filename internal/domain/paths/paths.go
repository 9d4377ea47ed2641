// Package paths initializes mediorg's filepaths, directories, etc.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mediorg/internal/domain/consts"
)

const (
	mDir    = ".mediorg"
	logFile = "mediorg.log"
)

// File and directory path strings.
var (
	HomeMediorgDir string
	LogFilePath    string
)

// InitProgFilesDirs initializes necessary program directories and filepaths.
func InitProgFilesDirs() error {
	dir, err := os.UserHomeDir()
	if err != nil {
		return errors.New("failed to get home directory")
	}
	HomeMediorgDir = filepath.Join(dir, mDir)
	if _, err := os.Stat(HomeMediorgDir); os.IsNotExist(err) {
		if err := os.MkdirAll(HomeMediorgDir, consts.PermsHomeMediorgDir); err != nil {
			return fmt.Errorf("failed to make directories: %w", err)
		}
	}

	LogFilePath = filepath.Join(HomeMediorgDir, logFile)
	return nil
}
