// Package logger centralizes charmbracelet/log construction so every
// package in this module gets the same prefix/level/formatter conventions
// instead of configuring log.Logger by hand.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Default builds a *log.Logger writing to stdout with the given prefix, no
// timestamp/caller noise, and the process-wide level as it stands when
// Default is called. The level is copied, not followed: a package-level
// logger built at init keeps the default level even after cmd/boggle's -v
// flag changes the process-wide one.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig builds a *log.Logger with explicit level/caller/timestamp/
// formatter settings, for a caller that needs more than the defaults. No
// package in this module calls it at present.
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       formatter,
	})
}
