package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// Logger is the global logger instance. It discards everything until Setup runs.
var Logger = zap.NewNop()

// Setup builds the global logger. Debug mode logs everything in console
// format; otherwise only warnings and errors reach stderr so the document on
// stdout is the only regular output.
func Setup(debug bool, appName, appVersion string) error {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewNop()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}

// Sync flushes the global logger. Syncing a pipe or character device fails
// with "invalid argument", so only terminals and regular files are synced.
func Sync() error {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return nil
	}
	if err := Logger.Sync(); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			return nil
		}
		return err
	}
	return nil
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
