package logging

import (
	"encoding/json"
	"strings"
)

// Level is the severity of a log entry. Entries below a logger's level are dropped.
type Level int

const (
	DEBUG Level = iota + 1
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

func (l Level) String() string {
	return levelNames[l]
}

// color is the 256-colour terminal code used for the level tag.
//
//nolint:gomnd // Color codes are sent as numbers
func (l Level) color() uint {
	switch l {
	case ERROR, FATAL:
		return 31
	case WARN:
		return 33
	case DEBUG, INFO:
		return 36
	default:
		return 37
	}
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// GetLevelFromString converts a level name such as "debug" into a Level. Unknown names map to INFO.
func GetLevelFromString(level string) Level {
	name := strings.ToUpper(strings.TrimSpace(level))

	for l, n := range levelNames {
		if n == name {
			return l
		}
	}

	return INFO
}
