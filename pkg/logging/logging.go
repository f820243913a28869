// Package logging builds the zap logger shared by the commands.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger built by Setup.
var Logger = zap.NewNop()

// Options selects how the logger is built.
type Options struct {
	Debug      bool   // Development config at debug level
	AppName    string // Added to every entry as appName
	AppVersion string // Added to every entry as appVersion
	File       string // Write entries here instead of stderr
	Quiet      bool   // Only warnings and above, so Info entries stay off the progress output
}

// Setup replaces Logger according to opts and returns it.
// On failure Logger falls back to zap.NewExample and the build error is returned.
func Setup(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	if opts.Debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		if opts.Quiet {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
	}

	if opts.File != "" {
		cfg.OutputPaths = []string{opts.File}
		cfg.ErrorOutputPaths = []string{opts.File}
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    opts.AppName,
		"appVersion": opts.AppVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return Logger, err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return Logger, nil
}
