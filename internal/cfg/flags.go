package cfg

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"mediorg/internal/domain/keys"
)

// initRenameOps initializes user flag settings for filename transformations.
func initRenameOps() error {
	// Prefix strip.
	rootCmd.PersistentFlags().StringP(keys.StripPrefix, "p", "", "The prefix to strip from the start of filenames")
	if err := viper.BindPFlag(keys.StripPrefix, rootCmd.PersistentFlags().Lookup(keys.StripPrefix)); err != nil {
		return err
	}

	// Postfix strip.
	rootCmd.PersistentFlags().StringP(keys.StripPostfix, "s", "", "The postfix to strip from the end of filenames (before extension)")
	if err := viper.BindPFlag(keys.StripPostfix, rootCmd.PersistentFlags().Lookup(keys.StripPostfix)); err != nil {
		return err
	}

	// Substring removal.
	rootCmd.PersistentFlags().StringP(keys.RemoveSubstring, "r", "", "A string to remove from anywhere within filenames")
	if err := viper.BindPFlag(keys.RemoveSubstring, rootCmd.PersistentFlags().Lookup(keys.RemoveSubstring)); err != nil {
		return err
	}

	// General cleanup.
	rootCmd.PersistentFlags().BoolP(keys.Clean, "c", false, "Perform a general cleanup (replaces '_', '.', '-' with spaces and removes common release tags)")
	if err := viper.BindPFlag(keys.Clean, rootCmd.PersistentFlags().Lookup(keys.Clean)); err != nil {
		return err
	}

	// Rename convention.
	rootCmd.PersistentFlags().String(keys.RenameStyleInput, "skip", "Rename style (spaces, underscores, title-case, or skip)")
	if err := viper.BindPFlag(keys.RenameStyleInput, rootCmd.PersistentFlags().Lookup(keys.RenameStyleInput)); err != nil {
		return err
	}

	// Bracketed date tag stripping.
	rootCmd.PersistentFlags().Bool(keys.StripDateTags, false, "Strip bracketed date tags (e.g. '[2024-01-31]') from filenames")
	if err := viper.BindPFlag(keys.StripDateTags, rootCmd.PersistentFlags().Lookup(keys.StripDateTags)); err != nil {
		return err
	}
	return nil
}

// initOrganization initializes user flag settings for file organization.
func initOrganization() error {
	// File-to-folder promotion.
	rootCmd.PersistentFlags().BoolP(keys.MkFolders, "m", false, "For each file, create a folder (named after the file, minus extension) and move the file into it after renaming")
	if err := viper.BindPFlag(keys.MkFolders, rootCmd.PersistentFlags().Lookup(keys.MkFolders)); err != nil {
		return err
	}

	// Simulation mode.
	rootCmd.PersistentFlags().BoolP(keys.DryRun, "d", false, "Show what would happen, but don't actually rename or move any files")
	if err := viper.BindPFlag(keys.DryRun, rootCmd.PersistentFlags().Lookup(keys.DryRun)); err != nil {
		return err
	}
	return nil
}

// initResourceRelated initializes user flag settings for parameters related to system hardware.
func initResourceRelated() error {
	// Min memory.
	rootCmd.PersistentFlags().String(keys.MinFreeMemInput, "0", "Minimum free RAM to start the run")
	if err := viper.BindPFlag(keys.MinFreeMemInput, rootCmd.PersistentFlags().Lookup(keys.MinFreeMemInput)); err != nil {
		return err
	}
	return nil
}

// initProgramFunctions initializes user flag settings for miscellaneous program features such as debug level.
func initProgramFunctions() error {
	// Debugging level.
	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Level of debugging (0 - 3)")
	if err := viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return err
	}
	return nil
}

// initOrExit attempts to run the function and exits the program on failure.
func initOrExit(err error, failMsg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", failMsg, err)
		os.Exit(1)
	}
}
