// Package main is the main entrypoint of the program.
package main

import (
	"fmt"
	"mediorg/internal/cfg"
	"mediorg/internal/processing"
	"mediorg/internal/utils/logging"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Main program string constants.
const (
	timeFormat     = "2006-01-02 15:04:05.00 MST"
	startLogFormat = "Mediorg started at: %s"
	endLogFormat   = "Mediorg finished at: %s"
	elapsedFormat  = "Time elapsed: %.2f seconds\n"
)

// main is the program entrypoint.
func main() {
	startTime := time.Now()
	logging.I(startLogFormat, startTime.Format(timeFormat))

	// Panic recovery with proper cleanup
	defer func() {
		if r := recover(); r != nil {
			logging.E("Panic recovered: %v", r)
			logging.E("Stack trace:\n\n%s", debug.Stack())
			os.Exit(1)
		}
	}()

	// Parse configuration
	if err := cfg.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintf(os.Stderr, "\n")
		os.Exit(1)
	}

	// Early exit if not executing
	if !viper.GetBool("execute") {
		fmt.Fprintf(os.Stderr, "\n")
		return
	}

	// Initialize application
	initializeApplication()

	runCfg, targetDir, mkFolders := cfg.RunSettings()
	if runCfg.DryRun {
		logging.I("Dry run: no files or folders will be touched")
	}

	// Process renames and folder promotions
	report, err := processing.Run(afero.NewOsFs(), targetDir, runCfg, mkFolders)
	if err != nil {
		logging.E("Error during run: %v", err)
		os.Exit(1)
	}

	printReport(report)

	// End program run
	endTime := time.Now()
	fmt.Fprintf(os.Stderr, "\n")
	logging.I(endLogFormat, endTime.Format(timeFormat))
	logging.I(elapsedFormat, endTime.Sub(startTime).Seconds())

	if report.Failed() {
		os.Exit(1)
	}
}
