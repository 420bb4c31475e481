package logging

import (
	"fmt"
	"os"
)

// MockLogger prints "LEVEL message" lines without timestamps so tests can match output exactly.
// ERROR and FATAL go to stderr, everything else to stdout. Fatalf does not exit.
type MockLogger struct {
	level Level
}

func NewMockLogger(level Level) Logger {
	return &MockLogger{level: level}
}

func (m *MockLogger) print(level Level, format string, args []any) {
	if level < m.level {
		return
	}

	// os.Stdout is resolved per call so that testutil output capture sees it.
	w := os.Stdout
	if level >= ERROR {
		w = os.Stderr
	}

	fmt.Fprintf(w, "%s %s\n", level, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Debugf(format string, args ...any) { m.print(DEBUG, format, args) }

func (m *MockLogger) Infof(format string, args ...any) { m.print(INFO, format, args) }

func (m *MockLogger) Warnf(format string, args ...any) { m.print(WARN, format, args) }

func (m *MockLogger) Errorf(format string, args ...any) { m.print(ERROR, format, args) }

func (m *MockLogger) Fatalf(format string, args ...any) { m.print(FATAL, format, args) }

func (m *MockLogger) ChangeLevel(level Level) { m.level = level }
