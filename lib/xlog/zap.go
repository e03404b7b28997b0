package xlog

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ XLogger = (*xLogger)(nil)

type xLogger struct {
	logger atomic.Pointer[zap.Logger]
}

func (l *xLogger) Named(name string) XLogger {
	named := &xLogger{}
	named.logger.Store(l.logger.Load().Named(name))
	return named
}

func (l *xLogger) Enabled(lvl zapcore.Level) bool {
	return l.logger.Load().Core().Enabled(lvl)
}

func (l *xLogger) IncreaseLogLevel(level zapcore.Level) {
	logger := l.logger.Load().WithOptions(zap.IncreaseLevel(level))
	l.logger.Store(logger)
}

func (l *xLogger) Sync() error {
	return l.logger.Load().Sync()
}

func (l *xLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Load().Debug(msg, fields...)
}

func (l *xLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Load().Info(msg, fields...)
}

func (l *xLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Load().Warn(msg, fields...)
}

func (l *xLogger) Error(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	newFields = append(newFields, fields...)
	l.logger.Load().Error(msg, newFields...)
}

type loggerCfg struct {
	writer      zapcore.WriteSyncer
	encoderType *LogEncoderType
	lvlEncoder  zapcore.LevelEncoder
	tsEncoder   zapcore.TimeEncoder
	level       *zapcore.Level
	cores       []zapcore.Core
}

func (cfg *loggerCfg) apply() {
	if cfg.writer == nil {
		cfg.writer = zapcore.Lock(os.Stdout)
	}

	if cfg.encoderType == nil {
		enc := JSON
		cfg.encoderType = &enc
	}

	if cfg.level == nil {
		lvl := getLogLevelOrDefault(os.Getenv("XLOG_LVL"))
		cfg.level = &lvl
	}

	if cfg.lvlEncoder == nil {
		cfg.lvlEncoder = zapcore.CapitalLevelEncoder
	}

	if cfg.tsEncoder == nil {
		cfg.tsEncoder = zapcore.ISO8601TimeEncoder
	}
}

type XLoggerOption func(*loggerCfg) error

func NewXLogger(opts ...XLoggerOption) XLogger {
	cfg := &loggerCfg{}
	for _, o := range opts {
		if err := o(cfg); err != nil {
			panic(err)
		}
	}
	cfg.apply()

	// Extra cores are teed after the console core and
	// share its level.
	cores := make([]zapcore.Core, 0, len(cfg.cores)+1)
	cores = append(cores, newConsoleCore(
		*cfg.level,
		*cfg.encoderType,
		cfg.writer,
		cfg.lvlEncoder,
		cfg.tsEncoder,
	))
	cores = append(cores, cfg.cores...)

	// Disable zap logger error stack.
	l := zap.New(
		zapcore.NewTee(cores...),
		zap.AddCallerSkip(1), // Use caller filename as service
		zap.AddCaller(),
		zap.IncreaseLevel(*cfg.level),
	)
	xl := &xLogger{}
	xl.logger.Store(l)
	return xl
}

// NewNopXLogger discards everything and is never enabled.
func NewNopXLogger() XLogger {
	xl := &xLogger{}
	xl.logger.Store(zap.NewNop())
	return xl
}

func WithXLoggerWriter(w io.Writer) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if w == nil {
			return errors.New("[xlog] nil writer")
		}
		cfg.writer = zapcore.Lock(zapcore.AddSync(w))
		return nil
	}
}

func WithXLoggerEncoder(logEnc LogEncoderType) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if logEnc >= _encMax {
			return errors.New("[xlog] unknown encoder")
		}
		cfg.encoderType = &logEnc
		return nil
	}
}

func WithXLoggerLevel(lvl LogLevel) XLoggerOption {
	return func(cfg *loggerCfg) error {
		_lvl := lvl.zapLevel()
		cfg.level = &_lvl
		return nil
	}
}

func WithXLoggerLevelEncoder(lvlEnc zapcore.LevelEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if lvlEnc == nil {
			lvlEnc = zapcore.CapitalColorLevelEncoder
		}
		cfg.lvlEncoder = lvlEnc
		return nil
	}
}

func WithXLoggerTimeEncoder(tsEnc zapcore.TimeEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if tsEnc == nil {
			tsEnc = zapcore.ISO8601TimeEncoder
		}
		cfg.tsEncoder = tsEnc
		return nil
	}
}

// WithXLoggerCore tees an extra core, e.g. zaptest/observer in tests.
func WithXLoggerCore(core zapcore.Core) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if core == nil {
			return errors.New("[xlog] nil core")
		}
		cfg.cores = append(cfg.cores, core)
		return nil
	}
}

func getLogLevelOrDefault(level string) zapcore.Level {
	if len(strings.TrimSpace(level)) == 0 {
		return zapcore.DebugLevel
	}

	switch strings.ToUpper(strings.TrimSpace(level)) {
	case LogLevelInfo.String():
		return zapcore.InfoLevel
	case LogLevelWarn.String():
		return zapcore.WarnLevel
	case LogLevelError.String():
		return zapcore.ErrorLevel
	case LogLevelDebug.String():
		fallthrough
	default:
	}
	return zapcore.DebugLevel
}
