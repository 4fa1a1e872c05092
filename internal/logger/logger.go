package logger

import (
	"fmt"
	"log"
)

type Logger struct {
	l     *log.Logger
	debug bool
}

func New(l *log.Logger) *Logger {
	return &Logger{l: l}
}

// NewDebug returns a logger that also emits LogDebug messages.
func NewDebug(l *log.Logger) *Logger {
	return &Logger{l: l, debug: true}
}

func (l *Logger) LogErrorf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Error]: %s\n", msg)
}

func (l *Logger) LogInfo(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Info]: %s\n", msg)
}

func (l *Logger) LogDebug(format string, v ...any) {
	if !l.debug {
		return
	}

	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Debug]: %s\n", msg)
}
