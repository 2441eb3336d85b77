// Package logging is a small leveled logger shared by the plotting tools.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var levelNames = map[string]logrus.Level{
	"debug":   logrus.DebugLevel,
	"info":    logrus.InfoLevel,
	"warn":    logrus.WarnLevel,
	"warning": logrus.WarnLevel,
	"error":   logrus.ErrorLevel,
}

var baseLogger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006/01/02 15:04:05.000000"})
	return l
}

// SetLogLevel parses and sets the global log level. Unknown names are ignored and
// reported as false.
func SetLogLevel(s string) bool {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false
	}
	baseLogger.SetLevel(l)
	return true
}

// ValidLevel reports whether s names a known level.
func ValidLevel(s string) bool {
	_, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// SetOutput redirects log output (stderr by default).
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

// DebugEnabled reports whether debug messages are emitted.
func DebugEnabled() bool { return baseLogger.IsLevelEnabled(logrus.DebugLevel) }

func logf(l logrus.Level, format string, args ...interface{}) {
	// Without args the input is already a message; logging it through Logf would
	// turn literal % characters into %!x(MISSING).
	if len(args) == 0 {
		baseLogger.Log(l, format)
		return
	}
	baseLogger.Logf(l, format, args...)
}

func Debugf(format string, a ...interface{}) { logf(logrus.DebugLevel, format, a...) }
func Infof(format string, a ...interface{})  { logf(logrus.InfoLevel, format, a...) }
func Warnf(format string, a ...interface{})  { logf(logrus.WarnLevel, format, a...) }
func Errorf(format string, a ...interface{}) { logf(logrus.ErrorLevel, format, a...) }

// TimeTrack logs the duration of a phase at debug level.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
