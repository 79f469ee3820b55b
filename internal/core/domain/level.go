package domain

import (
	"strings"

	"github.com/olusolaa/filelog/internal/errors"
)

// Level selects the file an entry is appended to.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

const fileExtension = ".log"

// Levels returns the whitelist in severity order.
func Levels() []Level {
	return []Level{LevelInfo, LevelWarning, LevelError}
}

func (l Level) Valid() bool {
	switch l {
	case LevelInfo, LevelWarning, LevelError:
		return true
	}
	return false
}

func (l Level) Upper() string {
	return strings.ToUpper(string(l))
}

func (l Level) FileName() string {
	return string(l) + fileExtension
}

func (l Level) String() string {
	return string(l)
}

// ParseLevel is case-sensitive; only the lowercase tags are recognized.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.TrimSpace(s))
	if !l.Valid() {
		return "", errors.NewUserFacing(errors.CodeInvalidLevel,
			"invalid log level: "+s, "Use one of: info, warning, error.")
	}
	return l, nil
}

func levelFromUpper(s string) (Level, bool) {
	l := Level(strings.ToLower(s))
	if l.Upper() != s || !l.Valid() {
		return "", false
	}
	return l, true
}
