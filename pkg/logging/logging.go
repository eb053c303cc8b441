package logging

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// New builds the process-wide logger and installs it as zap's global.
// The production config writes JSON to stderr; verbose switches to the
// development config at debug level.
func New(verbose bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}

// Sync flushes buffered entries. Syncing stderr attached to a terminal
// reports "invalid argument" on some platforms; that error is ignored.
func Sync(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		lowerErr := strings.ToLower(err.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", err)
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
