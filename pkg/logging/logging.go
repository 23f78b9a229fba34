// Package logging builds the zap logger shared by the srcbundle commands.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It is a no-op until Setup succeeds.
var Logger = zap.NewNop()

// Setup builds the logger for this run. Debug selects zap's development
// config; otherwise the production config logs JSON at info level. Both
// write to stderr so stdout stays free for the command's own report.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return Logger, err
	}

	Logger = logger
	zap.ReplaceGlobals(logger)
	return logger, nil
}
