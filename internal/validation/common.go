// Package validation handles validation of user flag input and target paths.
package validation

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/mem"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"mediorg/internal/domain/consts"
	"mediorg/internal/domain/enums"
	"mediorg/internal/domain/keys"
	"mediorg/internal/utils/logging"
)

// ValidateDirectory validates that the directory exists and is a directory.
func ValidateDirectory(fsys afero.Fs, dir string) (os.FileInfo, error) {
	logging.D(3, "Statting directory %q...", dir)

	info, err := fsys.Stat(dir)
	if err == nil { // Err IS nil
		if !info.IsDir() {
			return nil, fmt.Errorf("path %q is a file, not a directory", dir)
		}
		return info, nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat directory %q: %w", dir, err)
	}
	return nil, fmt.Errorf("directory %q does not exist", dir)
}

// ValidateAndSetRenameStyle sets the rename style to apply.
func ValidateAndSetRenameStyle(argStyle string) enums.ReplaceToStyle {
	var style enums.ReplaceToStyle

	argStyle = strings.ToLower(strings.TrimSpace(argStyle))

	switch argStyle {
	case consts.RenameSpaces, "space":
		style = enums.RenamingSpaces
		logging.I("Rename style selected: %v", argStyle)

	case consts.RenameUnderscores, "underscore":
		style = enums.RenamingUnderscores
		logging.I("Rename style selected: %v", argStyle)

	case consts.RenameTitleCase, "title", "titlecase":
		style = enums.RenamingTitleCase
		logging.I("Rename style selected: %v", argStyle)

	default:
		if argStyle != "" && argStyle != consts.RenameSkip {
			logging.W("Unknown rename style %q, skipping style modifications.", argStyle)
		}
		style = enums.RenamingSkip
	}
	viper.Set(keys.RenameStyleEnum, style)
	return style
}

// ValidateAndSetMinFreeMem verifies the free memory flag and checks the
// system currently has that much available.
func ValidateAndSetMinFreeMem(minFreeMem string) error {
	if minFreeMem == "" || minFreeMem == "0" {
		return nil
	}

	minFreeMem = strings.ToUpper(strings.TrimSuffix(minFreeMem, "B"))
	multiplyFactor := uint64(1) // Default (bytes)

	switch {
	case strings.HasSuffix(minFreeMem, "G"):
		minFreeMem = strings.TrimSuffix(minFreeMem, "G")
		multiplyFactor = consts.GB
	case strings.HasSuffix(minFreeMem, "M"):
		minFreeMem = strings.TrimSuffix(minFreeMem, "M")
		multiplyFactor = consts.MB
	case strings.HasSuffix(minFreeMem, "K"):
		minFreeMem = strings.TrimSuffix(minFreeMem, "K")
		multiplyFactor = consts.KB
	}

	minFreeMemInt, err := strconv.ParseUint(minFreeMem, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid minimum free memory argument %q: %w", minFreeMem, err)
	}
	parsedMinFree := minFreeMemInt * multiplyFactor

	vMem, err := mem.VirtualMemory()
	if err != nil || vMem == nil {
		logging.W("Could not read system memory, skipping free memory check: %v", err)
		return nil
	}

	if vMem.Available < parsedMinFree {
		return fmt.Errorf("available memory (%d bytes) is below the requested minimum (%d bytes)",
			vMem.Available, parsedMinFree)
	}

	logging.I("Min RAM to start process: %v", parsedMinFree)
	viper.Set(keys.MinFreeMem, parsedMinFree)
	return nil
}
