// Package logger provides prefixed, colored component loggers backed by logrus.
package logger

import (
	"errors"
	"fmt"
	"io"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/sirupsen/logrus"
)

var ErrNilWriter = errors.New("log writer is required")

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
type Logger struct {
	log *logrus.Logger
}

// New creates a logger whose lines start with prefix painted in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{
		prefix: prefix,
		color:  color,
	})

	return &Logger{log: l}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log.Info(msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.log.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.log.Error(msg)
}

type prefixFormatter struct {
	prefix string
	color  string
}

// Format implements logrus.Formatter.
func (f *prefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	level, levelColor := "INFO", config.LogInfoColor
	switch entry.Level {
	case logrus.WarnLevel:
		level, levelColor = "WARNING", config.LogWarningColor
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		level, levelColor = "ERROR", config.LogErrorColor
	}

	line := fmt.Sprintf("%s %s[%s]%s %s[%s]%s %s\n",
		entry.Time.Format("2006/01/02 15:04:05"),
		f.color, f.prefix, config.ColorReset,
		levelColor, level, config.LogColorReset,
		entry.Message,
	)
	return []byte(line), nil
}
