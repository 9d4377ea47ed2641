package main

import (
	"fmt"
	"mediorg/internal/domain/enums"
	"mediorg/internal/domain/paths"
	"mediorg/internal/domain/vars"
	"mediorg/internal/models"
	"mediorg/internal/utils/logging"
	"os"
	"path/filepath"
)

// initializeApplication sets up the application for the current run.
func initializeApplication() {
	// Setup files/dirs
	if err := paths.InitProgFilesDirs(); err != nil {
		fmt.Printf("Mediorg exiting with error: %v\n", err)
		os.Exit(1)
	}

	// Start logging
	logDir := filepath.Dir(paths.LogFilePath)
	if err := logging.SetupLogging(logDir); err != nil {
		fmt.Printf("\n\nWarning: Log file was not created\nReason: %s\n\n", err)
	}
}

// printReport displays the outcome of the run.
func printReport(report *models.Report) {
	renamed, skipped, failed := 0, 0, 0
	for i := range report.Renames {
		r := &report.Renames[i]
		switch r.Outcome {
		case enums.RenameRenamed:
			renamed++
			logging.I("Renamed %q to %q in %q", r.OldName, r.NewName, r.Dir)
		case enums.RenameSkippedConflict:
			skipped++
			logging.W("Skipped %q, %q already exists in %q", r.OldName, r.NewName, r.Dir)
		case enums.RenameSkippedNoChange:
			skipped++
			logging.D(2, "No change for %q in %q", r.OldName, r.Dir)
		case enums.RenameFailed:
			failed++
			logging.E("Failed to rename %q in %q: %v", r.OldName, r.Dir, r.Err)
		}
	}

	promoted := 0
	for i := range report.Promotions {
		p := &report.Promotions[i]
		switch p.Outcome {
		case enums.PromotePromoted:
			promoted++
			logging.I("Moved %q into new folder %q", p.Name, p.Folder)
		case enums.PromoteExistingFolder:
			promoted++
			logging.I("Moved %q into existing folder %q", p.Name, p.Folder)
		case enums.PromoteSkippedNotAFile:
			logging.D(2, "Skipped %q, not a regular file", p.Name)
		case enums.PromoteFailed:
			failed++
			logging.E("Failed to move %q into a folder: %v", p.Name, p.Err)
		}
	}

	if failed == 0 {
		logging.S("Run complete: %d renamed, %d skipped, %d moved into folders", renamed, skipped, promoted)
	} else {
		logging.W("Run finished with errors: %d renamed, %d skipped, %d moved into folders, %d failed", renamed, skipped, promoted, failed)
	}

	if errs := vars.GetErrorArray(); len(errs) > 0 {
		logging.W("Errors encountered during run:")
		for _, e := range errs {
			logging.P("  - %v", e)
		}
	}
}
