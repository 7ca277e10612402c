package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// SetDebug toggles debug-level logging.
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Field is one structured key/value pair for LogWithFields.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// LogWithFields returns an entry carrying the given structured fields.
func LogWithFields(fields ...Field) *logrus.Entry {
	lf := logrus.Fields{}
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return logger.WithFields(lf)
}

func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a formatted message at debug level
func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Error logs a formatted error message
func Error(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Warn logs a formatted warning message
func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}
