package logging

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLogger adapts a *logrus.Entry to the Logger interface.
type LogrusLogger struct {
	e *logrus.Entry
}

// NewLogrusLogger builds a Logger writing JSON lines to stdout.
func NewLogrusLogger(level logrus.Level) *LogrusLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level)
	l.SetOutput(os.Stdout)
	return &LogrusLogger{e: logrus.NewEntry(l)}
}

func fields(args []any) logrus.Fields {
	f := make(logrus.Fields, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		f[key] = args[i+1]
	}
	return f
}

func (l *LogrusLogger) Info(ctx context.Context, msg string, args ...any) {
	l.e.WithContext(ctx).WithFields(fields(args)).Info(msg)
}

func (l *LogrusLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.e.WithContext(ctx).WithFields(fields(args)).Warn(msg)
}

func (l *LogrusLogger) Error(ctx context.Context, msg string, args ...any) {
	l.e.WithContext(ctx).WithFields(fields(args)).Error(msg)
}

func (l *LogrusLogger) With(args ...any) Logger {
	return &LogrusLogger{e: l.e.WithFields(fields(args))}
}
