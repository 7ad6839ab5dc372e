package progbar

import (
	"fmt"
)

type Logger interface {
	Debug(msg string)
	Debugf(format string, v ...any)
	Info(msg string)
	Infof(format string, v ...any)
}

// printLogger writes through println, which TinyGo hooks up to the board's serial console. Debug messages are
// dropped unless debug is set, since printing every frame over serial slows the loop down.
type printLogger struct {
	debug bool
	out   func(string)
}

// NewPrintLogger returns the default logger. Pass true to also print Debug messages.
func NewPrintLogger(debug bool) Logger {
	return &printLogger{
		debug: debug,
		out:   func(s string) { println(s) },
	}
}

func (l *printLogger) Debug(msg string) {
	if l.debug {
		l.out(msg)
	}
}

func (l *printLogger) Debugf(format string, v ...any) {
	if l.debug {
		l.out(fmt.Sprintf(format, v...))
	}
}

func (l *printLogger) Info(msg string) {
	l.out(msg)
}

func (l *printLogger) Infof(format string, v ...any) {
	l.out(fmt.Sprintf(format, v...))
}

// NopLogger discards everything, for hosts where something else owns the terminal.
type NopLogger struct{}

func (NopLogger) Debug(string)          {}
func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Info(string)           {}
func (NopLogger) Infof(string, ...any)  {}
