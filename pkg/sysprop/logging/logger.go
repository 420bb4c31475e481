package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// Logger is the levelled, printf-style logger used across the module.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	ChangeLevel(level Level)
}

type logger struct {
	mu     sync.Mutex
	level  Level
	out    io.Writer
	errOut io.Writer
	pretty bool
	exit   func(code int)
}

type logEntry struct {
	Level   Level     `json:"level"`
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

// NewLogger returns a Logger writing to stdout, with ERROR and FATAL going to stderr.
// Output is coloured text on a terminal and one JSON object per line otherwise.
func NewLogger(level Level) Logger {
	return newLogger(level, os.Stdout, os.Stderr)
}

func newLogger(level Level, out, errOut io.Writer) *logger {
	return &logger{
		level:  level,
		out:    out,
		errOut: errOut,
		pretty: isTerminal(out),
		exit:   os.Exit,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func (l *logger) write(level Level, format string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	w := l.out
	if level >= ERROR {
		w = l.errOut
	}

	e := logEntry{Level: level, Time: time.Now(), Message: fmt.Sprintf(format, args...)}

	if l.pretty {
		fmt.Fprintf(w, "\u001B[38;5;%dm%-5s\u001B[0m [%s] %s\n", level.color(), level, e.Time.Format(time.TimeOnly), e.Message)

		return
	}

	_ = json.NewEncoder(w).Encode(e)
}

func (l *logger) Debugf(format string, args ...any) { l.write(DEBUG, format, args) }

func (l *logger) Infof(format string, args ...any) { l.write(INFO, format, args) }

func (l *logger) Warnf(format string, args ...any) { l.write(WARN, format, args) }

func (l *logger) Errorf(format string, args ...any) { l.write(ERROR, format, args) }

func (l *logger) Fatalf(format string, args ...any) {
	l.write(FATAL, format, args)

	//nolint:revive // exit status is 1 as it denotes failure as signified by Fatal log
	l.exit(1)
}

func (l *logger) ChangeLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}
