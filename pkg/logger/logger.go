// Package logger provides the leveled logger used across monnifyease.
package logger

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Logger holds one stdlib logger per level and the active threshold.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	level       LogLevel
	mutex       sync.Mutex
}

// LogLevel defines the logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Global logger instance
var GlobalLogger *Logger
var once sync.Once

// ParseLevel maps a level name to a LogLevel, defaulting to INFO.
func ParseLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// New builds a standalone logger writing to output (stdout when nil).
func New(output io.Writer, level string) *Logger {
	if output == nil {
		output = os.Stdout
	}
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		infoLogger:  log.New(output, color.GreenString("INFO: "), flags),
		warnLogger:  log.New(output, color.YellowString("WARN: "), flags),
		errorLogger: log.New(output, color.RedString("ERROR: "), flags),
		debugLogger: log.New(output, color.BlueString("DEBUG: "), flags),
		level:       ParseLevel(level),
	}
}

// InitLogger initializes the global logger with the specified output and log level.
// Only the first call has any effect.
func InitLogger(output io.Writer, level string) {
	once.Do(func() {
		GlobalLogger = New(output, level)
	})
}

// Default returns the global logger, initializing it from LOG_LEVEL if needed.
func Default() *Logger {
	InitLogger(nil, os.Getenv("LOG_LEVEL"))
	return GlobalLogger
}

// Level reports the active threshold. A nil logger reports ERROR.
func (l *Logger) Level() LogLevel {
	if l == nil {
		return ERROR
	}
	return l.level
}

// Println logs a message at the INFO level
func (l *Logger) Println(v ...interface{}) {
	l.output(INFO, func(lg *log.Logger) { lg.Println(v...) })
}

// Printf logs a formatted message at the INFO level
func (l *Logger) Printf(format string, v ...interface{}) {
	l.output(INFO, func(lg *log.Logger) { lg.Printf(format, v...) })
}

// Warnf logs a formatted message at the WARN level
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.output(WARN, func(lg *log.Logger) { lg.Printf(format, v...) })
}

// Error logs a message at the ERROR level
func (l *Logger) Error(v ...interface{}) {
	l.output(ERROR, func(lg *log.Logger) { lg.Println(v...) })
}

// Errorf logs a formatted message at the ERROR level
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.output(ERROR, func(lg *log.Logger) { lg.Printf(format, v...) })
}

// Debug logs a message at the DEBUG level
func (l *Logger) Debug(v ...interface{}) {
	l.output(DEBUG, func(lg *log.Logger) { lg.Println(v...) })
}

// Debugf logs a formatted message at the DEBUG level
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(DEBUG, func(lg *log.Logger) { lg.Printf(format, v...) })
}

func (l *Logger) output(level LogLevel, write func(*log.Logger)) {
	if l == nil || l.level > level {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	write(l.loggerFor(level))
}

func (l *Logger) loggerFor(level LogLevel) *log.Logger {
	switch level {
	case DEBUG:
		return l.debugLogger
	case WARN:
		return l.warnLogger
	case ERROR:
		return l.errorLogger
	default:
		return l.infoLogger
	}
}
