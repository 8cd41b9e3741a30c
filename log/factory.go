package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New creates a new logger with the specified
// configuration writing to out
func New(config *Config, out io.Writer) Logger {
	props := LogrusLoggerProperties{
		Level:  logrus.InfoLevel,
		Output: out,
	}

	switch config.Level {
	case "debug":
		props.Level = logrus.DebugLevel
	case "info":
		props.Level = logrus.InfoLevel
	case "warn":
		props.Level = logrus.WarnLevel
	case "error":
		props.Level = logrus.ErrorLevel
	}

	switch config.Format {
	case "json":
		props.Formatter = &logrus.JSONFormatter{}
	default:
		props.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	return NewLogrus(props)
}
