package cfg

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"mediorg/internal/domain/keys"
	"mediorg/internal/models"
	"mediorg/internal/validation"
)

// Built run settings, available after Execute succeeds.
var (
	runCfg    *models.RenameConfig
	targetDir string
	mkFolders bool
)

// init sets the initial Viper settings.
func init() {
	// Env vars.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("_", "-")) // Convert "dry_run" to "dry-run"

	// Config file.
	rootCmd.PersistentFlags().String(keys.ConfigPath, "", "Specify a path to your preset configuration file")
	if err := viper.BindPFlag(keys.ConfigPath, rootCmd.PersistentFlags().Lookup(keys.ConfigPath)); err != nil {
		fmt.Fprintf(os.Stderr, "config file path setting failure: %v\n", err)
		os.Exit(1)
	}

	// Filename transformations.
	initOrExit(initRenameOps(),
		"config rename operation initialization failure")

	// File organization.
	initOrExit(initOrganization(),
		"config organization initialization failure")

	// System resource related.
	initOrExit(initResourceRelated(),
		"config resource element initialization failure")

	// Special functions.
	initOrExit(initProgramFunctions(),
		"config program function initialization failure")
}

// execute more thoroughly handles settings created in the Viper init.
func execute(args []string) error {
	if len(args) != 1 {
		return errors.New("provide the target directory to scan")
	}
	targetDir = args[0]
	viper.Set(keys.TargetDirectory, targetDir)

	// Resource usage limits.
	if err := validation.ValidateAndSetMinFreeMem(viper.GetString(keys.MinFreeMemInput)); err != nil {
		return err
	}

	// Rename style.
	style := validation.ValidateAndSetRenameStyle(viper.GetString(keys.RenameStyleInput))

	runCfg = &models.RenameConfig{
		Prefix:          viper.GetString(keys.StripPrefix),
		Postfix:         viper.GetString(keys.StripPostfix),
		RemoveSubstring: viper.GetString(keys.RemoveSubstring),
		Clean:           viper.GetBool(keys.Clean),
		DryRun:          viper.GetBool(keys.DryRun),
		Style:           style,
		StripDateTags:   viper.GetBool(keys.StripDateTags),
	}
	mkFolders = viper.GetBool(keys.MkFolders)

	// Make sure at least one action is selected.
	if err := validation.ValidateRunOperations(runCfg, mkFolders); err != nil {
		return err
	}
	return nil
}

// RunSettings returns the validated settings for the current run.
func RunSettings() (cfg *models.RenameConfig, dir string, promote bool) {
	return runCfg, targetDir, mkFolders
}
