// Package debug reports broken internal invariants.
//
// A soft break logs where it fired and lets the program continue. A hard
// break logs at critical level and terminates the process through [Exit].
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/matzehuels/fontroute/pkg/services"
)

// ExitCode is the status a hard break exits with, matching SIGABRT.
const ExitCode = 134

// Exit terminates the process after a hard break. Tests replace it.
var Exit = func(code int) { os.Exit(code) }

var counter atomic.Int64

// SoftBreak logs msg with the caller's file and line at warning level.
func SoftBreak(l services.Logger, msg string) {
	report(l, services.LevelWarning, "SOFTBREAK", msg)
}

// HardBreak logs msg with the caller's file and line at critical level, then
// calls [Exit] with [ExitCode].
func HardBreak(l services.Logger, msg string) {
	report(l, services.LevelCritical, "HARDBREAK", msg)
	Exit(ExitCode)
}

func report(l services.Logger, level services.Level, kind, msg string) {
	if l == nil {
		l = services.NopLogger{}
	}
	n := counter.Add(1)
	if !l.Visible(level) {
		return
	}
	file, line := "unknown", 0
	if _, f, ln, ok := runtime.Caller(2); ok {
		file, line = filepath.Base(f), ln
	}
	text := fmt.Sprintf("%s: %s at %d [%d]", kind, file, line, n)
	if msg != "" {
		text += ": " + msg
	}
	l.Print(level, text)
}
