package main

import (
	"log"
	"os"
	"strings"

	"srcbundle/cmd"
	"srcbundle/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	err := cmd.Execute()
	logger := logging.Logger
	if err != nil {
		logger.Error("srcbundle execution failed", zap.Error(err))
		if !logger.Core().Enabled(zap.ErrorLevel) {
			// Setup never ran, e.g. a flag parse error.
			log.Printf("srcbundle: %v", err)
		}
	}
	syncLogger(logger)
	if err != nil {
		os.Exit(1)
	}
}

// syncLogger flushes the logger when stderr can be synced. Terminals on
// some platforms report "invalid argument" for fsync; that is ignored.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
