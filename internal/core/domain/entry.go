package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/olusolaa/filelog/internal/errors"
)

// TimestampLayout renders as YYYY-MM-DD HH:MM:SS.
const TimestampLayout = "2006-01-02 15:04:05"

type Entry struct {
	Level   Level
	Message string
	Time    time.Time
}

func NewEntry(level Level, message string, at time.Time) Entry {
	return Entry{Level: level, Message: message, Time: at}
}

// Line returns the on-disk form: "[YYYY-MM-DD HH:MM:SS] LEVEL: message\n".
func (e Entry) Line() string {
	return fmt.Sprintf("[%s] %s: %s\n", e.Time.Format(TimestampLayout), e.Level.Upper(), e.Message)
}

// ParseLine is the inverse of Entry.Line. The trailing newline is optional and
// the timestamp is interpreted in loc.
func ParseLine(line string, loc *time.Location) (Entry, error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	// "[" + timestamp + "] "
	prefixLen := len(TimestampLayout) + 3
	if len(line) < prefixLen || line[0] != '[' || line[prefixLen-2:prefixLen] != "] " {
		return Entry{}, errors.Newf(errors.CodeEntryParseError, "malformed log line: %q", line)
	}

	ts, err := time.ParseInLocation(TimestampLayout, line[1:prefixLen-2], loc)
	if err != nil {
		return Entry{}, errors.Wrap(err, errors.CodeEntryParseError, "malformed timestamp in log line")
	}

	rest := line[prefixLen:]
	tag, message, ok := strings.Cut(rest, ": ")
	if !ok {
		// Tolerate an empty message whose trailing space was stripped.
		tag, ok = strings.CutSuffix(rest, ":")
		if !ok {
			return Entry{}, errors.Newf(errors.CodeEntryParseError, "missing level separator in log line: %q", line)
		}
	}

	level, ok := levelFromUpper(tag)
	if !ok {
		return Entry{}, errors.Newf(errors.CodeEntryParseError, "unknown level %q in log line", tag)
	}
	return Entry{Level: level, Message: message, Time: ts}, nil
}
