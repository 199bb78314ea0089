package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = newLogger(io.Discard, logrus.InfoLevel)

// lineFormatter writes "[LEVEL timestamp] [module] message" lines.
type lineFormatter struct{}

func (f *lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05")

	var levelText string
	switch entry.Level {
	case logrus.InfoLevel:
		levelText = " INFO"
	case logrus.WarnLevel:
		levelText = " WARN"
	case logrus.ErrorLevel:
		levelText = "ERROR"
	case logrus.DebugLevel:
		levelText = "DEBUG"
	default:
		levelText = strings.ToUpper(entry.Level.String())
	}

	module := "main"
	if moduleField, exists := entry.Data["module"]; exists {
		if moduleStr, ok := moduleField.(string); ok {
			module = moduleStr
		}
	}

	return []byte(fmt.Sprintf("[%s %s] [%8s] %s\n", levelText, timestamp, module, entry.Message)), nil
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&lineFormatter{})
	return l
}

// initLogger points the package logger at the configured log file. The
// terminal is owned by the UI, so without a log file nothing is written.
func initLogger(cfg *Config, debug bool) io.Closer {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if debug {
		level = logrus.DebugLevel
	}

	if cfg.LogFile == "" {
		logger = newLogger(io.Discard, level)
		return io.NopCloser(nil)
	}

	out := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
	}
	logger = newLogger(out, level)
	if err != nil {
		logWarnModule("main", "unknown loglevel %q, using info", cfg.LogLevel)
	}
	return out
}

func logInfoModule(module, msg string, args ...interface{}) {
	entry := logger.WithField("module", module)
	if len(args) > 0 {
		entry.Infof(msg, args...)
	} else {
		entry.Info(msg)
	}
}

func logWarnModule(module, msg string, args ...interface{}) {
	entry := logger.WithField("module", module)
	if len(args) > 0 {
		entry.Warnf(msg, args...)
	} else {
		entry.Warn(msg)
	}
}

func logErrorModule(module, msg string, args ...interface{}) {
	entry := logger.WithField("module", module)
	if len(args) > 0 {
		entry.Errorf(msg, args...)
	} else {
		entry.Error(msg)
	}
}

func logDebugModule(module, msg string, args ...interface{}) {
	entry := logger.WithField("module", module)
	if len(args) > 0 {
		entry.Debugf(msg, args...)
	} else {
		entry.Debug(msg)
	}
}
