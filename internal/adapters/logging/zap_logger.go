package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const LogLevelEnv = "ISOLET_LOG_LEVEL"

// ProvideLogger builds the console logger used by every component of a run.
func ProvideLogger() (*zap.Logger, func(), error) {
	config, err := loggerConfig(os.LookupEnv)
	if err != nil {
		return nil, nil, err
	}
	logger, err := config.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func loggerConfig(lookupEnv func(string) (string, bool)) (zap.Config, error) {
	level := zapcore.InfoLevel
	if value, ok := lookupEnv(LogLevelEnv); ok && value != "" {
		parsed, err := zapcore.ParseLevel(value)
		if err != nil {
			return zap.Config{}, fmt.Errorf("invalid %s: %v", LogLevelEnv, err)
		}
		level = parsed
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if _, noColor := lookupEnv("NO_COLOR"); !noColor {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Encoding:          "console",
		EncoderConfig:     encoderConfig,
		DisableStacktrace: true,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}, nil
}
