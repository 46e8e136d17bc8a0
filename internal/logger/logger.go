// Package logger provides leveled logging for the studio backend on a
// single console backend.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

var logger *logging.Logger

func init() {
	InitLogger(logging.INFO)
}

// InitLogger configures the console backend at the given level.
func InitLogger(level logging.Level) {
	newLogger := logging.MustGetLogger("sofili")

	format := logging.MustStringFormatter(
		`%{time:2006/01/02 15:04:05} %{level} - %{message}`,
	)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)

	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "sofili")

	newLogger.SetBackend(leveled)
	logger = newLogger
}

// ParseLevel maps a config string to a logging level, defaulting to INFO.
func ParseLevel(s string) logging.Level {
	level, err := logging.LogLevel(s)
	if err != nil {
		return logging.INFO
	}
	return level
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
