package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Severity rank for the string levels accepted in config. Unknown config
// levels fall back to info; unknown message levels always log.
var levelRank = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger    *log.Logger
	threshold int
}

// New creates a new Logger instance
func New(level string) Logger {
	return newLogger(os.Stdout, level)
}

// NewWithFile creates a Logger that writes to stdout and a rotating log file
func NewWithFile(level, path string) Logger {
	rotated := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100, // megabytes
		MaxBackups: 10,
		MaxAge:     30, // days
		Compress:   true,
	}
	return newLogger(io.MultiWriter(os.Stdout, rotated), level)
}

func newLogger(w io.Writer, level string) *implLogger {
	threshold, ok := levelRank[strings.ToLower(level)]
	if !ok {
		threshold = levelRank["info"]
	}
	return &implLogger{
		logger:    log.New(w, "", log.LstdFlags),
		threshold: threshold,
	}
}

func (l *implLogger) shouldLog(level string) bool {
	rank, ok := levelRank[level]
	if !ok {
		return true
	}
	return rank >= l.threshold
}

func (l *implLogger) printf(level, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}
	l.logger.Printf("["+strings.ToUpper(level)+"] "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.printf("debug", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.printf("info", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.printf("warn", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.printf("error", msg, args)
}
