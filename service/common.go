package service

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Database path - variable to allow testing with different paths
var dbPath = "data/badger"

// Default site identity; overridable per command with flags.
const (
	defaultSiteTitle = "griddle"
	defaultBaseURL   = "http://localhost:8080"
)

var osExit = os.Exit

// newLogger builds the process logger. Verbose mode drops the level to debug.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// stringFlag scans args for "--name value" and returns the value plus args
// with the pair removed.
func stringFlag(args []string, name, fallback string) (string, []string) {
	for i := 0; i < len(args); i++ {
		if args[i] == name && i+1 < len(args) {
			value := args[i+1]
			return value, append(append([]string{}, args[:i]...), args[i+2:]...)
		}
	}
	return fallback, args
}

// boolFlag scans args for "--name" and returns whether it was present plus
// args with the flag removed.
func boolFlag(args []string, name string) (bool, []string) {
	for i := 0; i < len(args); i++ {
		if args[i] == name {
			return true, append(append([]string{}, args[:i]...), args[i+1:]...)
		}
	}
	return false, args
}
