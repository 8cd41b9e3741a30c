package log

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type LogrusLoggerProperties struct {
	Formatter logrus.Formatter
	Level     logrus.Level
	Output    io.Writer
}

// LogrusLogger implements Logger on top of a logrus entry. The root
// logger is an entry without class fields
type LogrusLogger struct {
	root  *logrus.Logger
	entry *logrus.Entry
}

func NewLogrus(properties LogrusLoggerProperties) Logger {
	log := logrus.New()

	if properties.Formatter == nil {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(properties.Formatter)
	}

	log.SetLevel(properties.Level)

	if properties.Output == nil {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(properties.Output)
	}

	return &LogrusLogger{root: log, entry: logrus.NewEntry(log)}
}

func (l *LogrusLogger) ForClass(pkg string, class string) Logger {
	return &LogrusLogger{
		root: l.root,
		entry: l.root.WithFields(logrus.Fields{
			"pkg":   pkg,
			"class": class,
		}),
	}
}

func (l *LogrusLogger) Debug(ctx context.Context, msg string, loggables ...Loggable) {
	l.entry.WithFields(logrusMakeFields(ctx, loggables...)).Debug(msg)
}

func (l *LogrusLogger) Info(ctx context.Context, msg string, loggables ...Loggable) {
	l.entry.WithFields(logrusMakeFields(ctx, loggables...)).Info(msg)
}

func (l *LogrusLogger) Warn(ctx context.Context, msg string, loggables ...Loggable) {
	l.entry.WithFields(logrusMakeFields(ctx, loggables...)).Warn(msg)
}

func (l *LogrusLogger) Error(ctx context.Context, msg string, loggables ...Loggable) {
	l.entry.WithFields(logrusMakeFields(ctx, loggables...)).Error(msg)
}

func logrusMakeFields(ctx context.Context, loggables ...Loggable) logrus.Fields {
	fields := LogrusFields{logrus.Fields{}}

	for _, loggable := range loggables {
		if loggable != nil {
			loggable.Log(&fields)
		}
	}

	if runID := GetRunID(ctx); len(runID) > 0 {
		fields.Add("runId", runID)
	}

	return fields.fields
}

type LogrusFields struct {
	fields logrus.Fields
}

func (f *LogrusFields) Add(key string, value interface{}) {
	f.fields[key] = value
}
