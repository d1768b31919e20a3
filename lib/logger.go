package lib

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger structure
type Logger struct {
	Zap        *zap.SugaredLogger
	DesugarZap *zap.Logger
}

// NewLogger sets up logger
// Output goes to stdout, and additionally to a rotated file when Log.Directory is set.
func NewLogger(config Config) Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(config.Log.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	var encoderConfig zapcore.EncoderConfig
	if config.Log.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if config.Log.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}

	if dir := config.Log.Directory; dir != "" {
		writer := &lumberjack.Logger{
			Filename:   filepath.Join(dir, config.Name+".log"),
			MaxSize:    100, // megabytes
			MaxBackups: 7,
			MaxAge:     30, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(writer), level))
	}

	options := []zap.Option{zap.AddCaller()}
	if config.Log.Development {
		options = append(options, zap.Development())
	}

	logger := zap.New(zapcore.NewTee(cores...), options...)
	return Logger{
		Zap:        logger.Sugar(),
		DesugarZap: logger,
	}
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() Logger {
	logger := zap.NewNop()
	return Logger{
		Zap:        logger.Sugar(),
		DesugarZap: logger,
	}
}
