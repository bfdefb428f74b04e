package secretsweep

import (
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// pick* resolve one setting with CLI > local config > global config
// precedence. changed reports whether the CLI flag was set explicitly.

func pickString(flagVal string, changed bool, local, global *string) string {
	if changed {
		return flagVal
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return flagVal
}

func pickInt64(flagVal int64, changed bool, local, global *int64) int64 {
	if changed {
		return flagVal
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return flagVal
}

func pickInt(flagVal int, changed bool, local, global *int) int {
	if changed {
		return flagVal
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return flagVal
}

func pickBool(flagVal bool, changed bool, local, global *bool) bool {
	if changed {
		return flagVal
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return flagVal
}

// newLogger builds the operator diagnostics logger. Diagnostics always go to
// stderr so they never mix into the report stream.
func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// colorEnabled reports whether stdout wants ANSI color.
func colorEnabled(noColor bool) bool {
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
