// Package services holds the small collaborator interfaces fontroute
// components depend on, and a Container to wire implementations at startup.
//
// The fallback graph itself depends on none of them. They serve the layers
// around it: the CLI, the HTTP service and the debug breaks.
package services

import (
	"github.com/charmbracelet/log"
)

// LoggerService is the name a [Logger] is registered under.
const LoggerService = "Logger"

// Level is a message severity. Values are distinct bits so a set of levels
// can be held in a single mask.
type Level uint8

const (
	LevelCritical Level = 1
	LevelError    Level = 2
	LevelInfo     Level = 4
	LevelWarning  Level = 8
	LevelDebug    Level = 16
)

func (l Level) String() string {
	switch l {
	case LevelCritical:
		return "critical"
	case LevelError:
		return "error"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Logger prints leveled messages. Implementations must be safe for
// concurrent use.
type Logger interface {
	// Visible reports whether a message of level would be printed.
	Visible(level Level) bool
	// Print prints msg at level. Messages that are not visible are dropped.
	Print(level Level, msg string)
}

// CharmLogger adapts a charmbracelet logger to [Logger].
// Critical messages are printed at error level with a severity key.
type CharmLogger struct {
	L *log.Logger
}

// NewCharmLogger wraps l. A nil l uses log.Default().
func NewCharmLogger(l *log.Logger) *CharmLogger {
	if l == nil {
		l = log.Default()
	}
	return &CharmLogger{L: l}
}

// Visible implements [Logger].
func (c *CharmLogger) Visible(level Level) bool {
	return charmLevel(level) >= c.L.GetLevel()
}

// Print implements [Logger].
func (c *CharmLogger) Print(level Level, msg string) {
	if level == LevelCritical {
		c.L.Error(msg, "severity", level.String())
		return
	}
	c.L.Log(charmLevel(level), msg)
}

func charmLevel(level Level) log.Level {
	switch level {
	case LevelCritical, LevelError:
		return log.ErrorLevel
	case LevelWarning:
		return log.WarnLevel
	case LevelInfo:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}

// NopLogger discards every message.
type NopLogger struct{}

func (NopLogger) Visible(Level) bool  { return false }
func (NopLogger) Print(Level, string) {}
