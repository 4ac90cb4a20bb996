// Package logging provides the process logger and request-scoped logging helpers.
//
// Output is JSON shaped for Google Cloud Logging: severity, timestamp and message
// use the field names the Cloud Logging agent recognizes.
package logging

import (
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/janisto/greeting/internal/platform/timeutil"
)

// LevelEnv names the environment variable that selects the minimum log level.
const LevelEnv = "LOG_LEVEL"

var (
	loggerOnce sync.Once
	baseLogger *zap.Logger
)

// Logger returns the process-wide logger, building it on first use.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		baseLogger = New(zapcore.Lock(os.Stdout), levelFromEnv())
	})
	return baseLogger
}

// Sync flushes buffered log entries. Call during shutdown.
func Sync() error {
	return Logger().Sync()
}

// New builds a Cloud Logging shaped JSON logger writing to ws.
func New(ws zapcore.WriteSyncer, level zapcore.LevelEnabler) *zap.Logger {
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), ws, level)
	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(ws))
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = encodeTimeMicros
	cfg.LevelKey = "severity"
	cfg.EncodeLevel = encodeSeverity
	cfg.MessageKey = "message"
	cfg.CallerKey = "caller"
	cfg.EncodeDuration = zapcore.MillisDurationEncoder
	return cfg
}

func levelFromEnv() zapcore.Level {
	raw := strings.TrimSpace(os.Getenv(LevelEnv))
	if raw == "" {
		return zapcore.InfoLevel
	}
	level, err := zapcore.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func encodeTimeMicros(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(timeutil.FormatMicros(t))
}

// encodeSeverity maps zap levels to Cloud Logging severity names.
func encodeSeverity(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var severity string
	switch level {
	case zapcore.DebugLevel:
		severity = "DEBUG"
	case zapcore.InfoLevel:
		severity = "INFO"
	case zapcore.WarnLevel:
		severity = "WARNING"
	case zapcore.ErrorLevel:
		severity = "ERROR"
	case zapcore.DPanicLevel:
		severity = "CRITICAL"
	case zapcore.PanicLevel:
		severity = "ALERT"
	case zapcore.FatalLevel:
		severity = "EMERGENCY"
	default:
		severity = "DEFAULT"
	}
	enc.AppendString(severity)
}
