package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // phase events kept in the ring, printed only on crashes
	LevelPhase               // run, lex, parse and sema boundaries
	LevelDetail              // plus one span per file
	LevelDebug               // plus one point per declaration
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLevel converts a flag value to a Level.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// Allows reports whether events of phase p pass at this level. The error
// level records what the phase level would.
func (l Level) Allows(p Phase) bool {
	info, ok := p.info()
	if !ok || l == LevelOff {
		return false
	}
	return info.level <= max(l, LevelPhase)
}
