// Package logger holds the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance. It writes to stderr so stdout only
// carries command output.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
}

// Init configures the global logger for an environment and level.
func Init(environment, level string) {
	configure(Log, os.Stderr, environment, level)
}

// New returns a separately configured logger, mostly for tests.
func New(out io.Writer, environment, level string) *logrus.Logger {
	l := logrus.New()
	configure(l, out, environment, level)
	return l
}

func configure(l *logrus.Logger, out io.Writer, environment, level string) {
	l.SetOutput(out)

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		l.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", level, err)
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	switch strings.ToLower(environment) {
	case "production", "staging":
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
}
