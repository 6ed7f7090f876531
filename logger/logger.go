// Package logger provides the line-oriented logger the seeder and report
// renderer write through. Lines are emitted in call order; nothing is
// buffered.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Logger interface {
	Info(msg string)
	Error(err error, msg string)
}

type lineLogger struct {
	out io.Writer
	red *color.Color
}

// New returns a Logger writing to out. Error lines are colored when out
// supports it.
func New(out io.Writer) Logger {
	return &lineLogger{out: out, red: color.New(color.FgRed)}
}

// Default logs to stdout.
func Default() Logger {
	return New(os.Stdout)
}

func (l *lineLogger) Info(msg string) {
	fmt.Fprintln(l.out, msg)
}

func (l *lineLogger) Error(err error, msg string) {
	l.red.Fprintf(l.out, "%s: %v\n", msg, err)
}
