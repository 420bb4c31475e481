package logging

import (
	"fmt"
	"runtime/debug"
)

type errorLogger interface {
	Errorf(format string, args ...any)
}

// LogPanic logs a recovered panic value with the stack of the panicking goroutine.
// It does nothing when re is nil.
func LogPanic(re any, logger errorLogger) {
	if re == nil || logger == nil {
		return
	}

	var e string

	switch t := re.(type) {
	case string:
		e = t
	case error:
		e = t.Error()
	default:
		e = fmt.Sprintf("%v", t)
	}

	logger.Errorf("recovered from panic: %s\n%s", e, debug.Stack())
}
