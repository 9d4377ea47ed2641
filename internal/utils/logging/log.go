// Package logging handles console and log file output.
package logging

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"mediorg/internal/domain/regex"
)

var (
	loggable bool
	logger   *log.Logger
)

// SetupLogging creates and/or opens the log file.
func SetupLogging(targetDir string) error {
	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(targetDir, "mediorg.log"),
		MaxSize:    1, // Max size in MB before rotation
		MaxBackups: 3,
		Compress:   true,
	}

	logger = log.New(logFile, "", log.LstdFlags)
	loggable = true

	logger.Printf(":\n=========== %v ===========\n\n", time.Now().Format(time.RFC1123Z))
	return nil
}

// Write writes a message to the log file with ANSI escapes stripped.
func Write(tag, msg string) {
	// Do not add mutex, only called by callers which themselves hold the mutex
	if !loggable {
		return
	}
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	logger.Print(tag + regex.AnsiEscapeCompile().ReplaceAllString(msg, ""))
}
