package logger

import (
	"log"
	"os"
	"strings"
)

// Level defines log levels
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// LevelFromEnv reads LOG_LEVEL (debug, info, error). Unknown or unset values
// default to info.
func LevelFromEnv() Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger defines the logging methods used by the services
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implements Logger on top of the log package. Entries are
// tagged with the owning component so interleaved service logs stay readable.
type DefaultLogger struct {
	level     Level
	component string
}

func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{level: level}
}

// NewComponentLogger creates a DefaultLogger whose entries carry a component tag
func NewComponentLogger(component string, level Level) *DefaultLogger {
	return &DefaultLogger{level: level, component: component}
}

func (l *DefaultLogger) printf(tag, format string, v ...interface{}) {
	if l.component != "" {
		log.Printf(tag+" ("+l.component+") "+format, v...)
		return
	}
	log.Printf(tag+" "+format, v...)
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.printf("[INFO]", format, v...)
	}
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.printf("[ERROR]", format, v...)
	}
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.printf("[DEBUG]", format, v...)
	}
}
