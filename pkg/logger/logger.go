package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NOOPLogger discards everything. It is the default for servers built in tests.
var NOOPLogger = zap.NewNop().Sugar()

type Options struct {
	// Debug switches to a console encoder at debug level.
	Debug bool
	// File, when set, also writes logs to a size-rotated file.
	File string
}

func New(opts Options) *zap.SugaredLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	if opts.Debug {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if opts.Debug {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	level := zap.InfoLevel
	if opts.Debug {
		level = zap.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}
	if opts.File != "" {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 7,
			MaxAge:     28, // days
			Compress:   true,
		}), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
}
