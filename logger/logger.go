package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the global log instance used by the connector packages.
var Logger *logrus.Logger

// LogConfig carries the logging settings taken from the client configuration.
type LogConfig struct {
	InfoLogPath  string
	ErrorLogPath string
	LogLevel     string
}

// CustomFormatter renders entries as "[time] [LVL] (caller) message".
type CustomFormatter struct {
	TimestampFormat string
}

// Format implements the logrus.Formatter interface.
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	format := f.TimestampFormat
	if format == "" {
		format = "15:04:05 MST 2006/01/02"
	}
	timestamp := entry.Time.Format(format)

	level := strings.ToUpper(entry.Level.String())
	if len(level) > 4 {
		level = level[:4]
	}

	logMsg := fmt.Sprintf("[%s] [%s] (%s) %s\n",
		timestamp,
		level,
		getCaller(),
		entry.Message)

	return []byte(logMsg), nil
}

// getCaller walks the stack past the logging frames to the real call site.
func getCaller() string {
	for i := 2; i < 20; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		if strings.Contains(file, "sirupsen") ||
			strings.Contains(file, "/logrus/") ||
			strings.Contains(file, "logger/logger.go") {
			continue
		}

		funcName := runtime.FuncForPC(pc).Name()
		fileName := filepath.Base(file)
		return fmt.Sprintf("%s:%s:%d", fileName, funcName, line)
	}

	return "unknown:unknown:0"
}

func parseLogLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func init() {
	Logger = logrus.New()
	Logger.SetFormatter(&CustomFormatter{})
	Logger.SetOutput(os.Stdout)
	Logger.SetLevel(logrus.InfoLevel)
}

// Init reconfigures the global logger from config. Log files that cannot be
// opened are skipped and logging stays on stdout.
func Init(cfg LogConfig) {
	Logger.SetLevel(parseLogLevel(cfg.LogLevel))

	writers := []io.Writer{os.Stdout}
	for _, path := range []string{cfg.InfoLogPath, cfg.ErrorLogPath} {
		if path == "" {
			continue
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			Logger.Warnf("cannot open log file %s: %v", path, err)
			continue
		}
		writers = append(writers, f)
	}
	if len(writers) > 1 {
		Logger.SetOutput(io.MultiWriter(writers...))
	}
}

func Debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	Logger.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	Logger.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	Logger.Errorf(format, args...)
}
