package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

type options struct {
	file       string
	maxSizeMB  int
	maxAgeDays int
}

// Option configures Initialize.
type Option func(*options)

// WithFile additionally writes JSON logs to a rotating file at path.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithRotation sets the rotation limits of the file sink.
func WithRotation(maxSizeMB, maxAgeDays int) Option {
	return func(o *options) {
		o.maxSizeMB = maxSizeMB
		o.maxAgeDays = maxAgeDays
	}
}

// Initialize sets up the global logger with the given log level.
func Initialize(level string, opts ...Option) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	o := options{maxSizeMB: 100, maxAgeDays: 28}
	for _, opt := range opts {
		opt(&o)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	atom := zap.NewAtomicLevelAt(lvl)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), atom),
	}
	if o.file != "" {
		cores = append(cores, zapcore.NewCore(encoder,
			zapcore.AddSync(&lumberjack.Logger{
				Filename: o.file,
				MaxSize:  o.maxSizeMB,
				MaxAge:   o.maxAgeDays,
				Compress: true,
			}),
			atom,
		))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
	return nil
}
