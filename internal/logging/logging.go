// Package logging constructs the console logger for diagnostics.
package logging

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a text logger on stderr at the given level. Unknown level
// names fall back to warn so a typo in the config never silences errors.
func New(level string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           parseLevel(level),
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "todocras",
	})
}

func parseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
