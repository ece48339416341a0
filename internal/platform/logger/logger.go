package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Fields is a set of structured key/value pairs attached to a log line.
type Fields map[string]interface{}

// Log wraps logrus.Logger so call sites only depend on this package.
type Log struct {
	*logrus.Logger
}

// Entry wraps logrus.Entry.
type Entry struct {
	*logrus.Entry
}

var globalLogger = New()

// New returns a JSON logger writing to stderr. The level comes from
// LOG_LEVEL and defaults to info.
func New() *Log {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetReportCaller(true)

	l.SetLevel(logrus.InfoLevel)
	if lvl, err := logrus.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil {
		l.SetLevel(lvl)
	}

	l.SetFormatter(jsonFormatter())
	return &Log{Logger: l}
}

// Get returns the process-wide logger.
func Get() *Log {
	return globalLogger
}

func callerPrettyfier(f *runtime.Frame) (string, string) {
	return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
}

// Call sites log the input path under "file", so the caller location gets
// its own key.
var fieldMap = logrus.FieldMap{
	logrus.FieldKeyTime:  "timestamp",
	logrus.FieldKeyLevel: "level",
	logrus.FieldKeyMsg:   "message",
	logrus.FieldKeyFile:  "caller",
}

func jsonFormatter() logrus.Formatter {
	return &logrus.JSONFormatter{
		TimestampFormat:  time.RFC3339Nano,
		FieldMap:         fieldMap,
		CallerPrettyfier: callerPrettyfier,
	}
}

// Configure sets level, format ("json" or "text") and output. Output is
// "stdout", "stderr" or a file path; file output rotates through
// lumberjack when maxAgeDays > 0.
func (l *Log) Configure(level, format, output string, maxAgeDays int) error {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("configure logger: invalid level %q", level)
	}
	l.SetLevel(lvl)

	switch format {
	case "json", "":
		l.SetFormatter(jsonFormatter())
	case "text":
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  time.RFC3339,
			FieldMap:         fieldMap,
			CallerPrettyfier: callerPrettyfier,
		})
	default:
		return fmt.Errorf("configure logger: invalid format %q", format)
	}

	switch output {
	case "stderr", "":
		l.SetOutput(os.Stderr)
	case "stdout":
		l.SetOutput(os.Stdout)
	default:
		if maxAgeDays > 0 {
			l.SetOutput(&lumberjack.Logger{
				Filename: output,
				MaxAge:   maxAgeDays,
				MaxSize:  100,
				Compress: true,
			})
			return nil
		}
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("configure logger: open %q: %w", output, err)
		}
		l.SetOutput(f)
	}

	return nil
}

func (l *Log) WithComponent(component string) *Entry {
	return &Entry{Entry: l.Logger.WithField("component", component)}
}

func (l *Log) WithFields(fields Fields) *Entry {
	return &Entry{Entry: l.Logger.WithFields(logrus.Fields(fields))}
}

func (l *Log) WithError(err error) *Entry {
	return &Entry{Entry: l.Logger.WithError(err)}
}

// Discard silences the logger; used by tests.
func (l *Log) Discard() *Log {
	l.SetOutput(io.Discard)
	return l
}

func (e *Entry) WithComponent(component string) *Entry {
	return &Entry{Entry: e.Entry.WithField("component", component)}
}

func (e *Entry) WithFields(fields Fields) *Entry {
	return &Entry{Entry: e.Entry.WithFields(logrus.Fields(fields))}
}

func (e *Entry) WithError(err error) *Entry {
	return &Entry{Entry: e.Entry.WithError(err)}
}
