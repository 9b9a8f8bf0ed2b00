package qjson

import (
	"os"
	"strings"
	"sync/atomic"
)

// AutoFixLocale controls whether CheckLocale is invoked automatically
// before each ParseUtf8/ToUTF8 call. Default true. It is a process-wide
// toggle: concurrent writers racing on it is harmless, since every
// reader only ever treats it as a cheap, idempotent "should I check"
// hint, not a correctness-critical lock.
var autoFixLocale atomic.Bool

func init() { autoFixLocale.Store(true) }

// AutoFixLocale reports the current value of the auto-fix toggle, for
// use as CheckLocale(AutoFixLocale()) at each entry point.
func AutoFixLocale() bool { return autoFixLocale.Load() }

// SetAutoFixLocale sets the toggle.
func SetAutoFixLocale(v bool) { autoFixLocale.Store(v) }

// localeHostileEnvVars are locale names commonly associated with a
// comma decimal separator, checked only for diagnostic purposes.
var localeHostileEnvVars = []string{"de_DE", "ru_RU", "pl_PL", "fr_FR", "it_IT", "es_ES"}

// CheckLocale verifies that the process's numeric formatting will use
// '.' as the decimal separator. Go's strconv is unconditionally
// locale-independent, so there is no ambient locale state for this
// process's own number formatting to drift from '.' -- the only way a
// comma separator could leak into this process's output is a
// cgo-linked C library calling setlocale(LC_ALL, ...) globally, which
// this package neither invokes nor can observe without cgo.
//
// CheckLocale therefore never mutates anything; it inspects
// LC_NUMERIC, LC_ALL, and LANG for a name conventionally associated
// with a comma decimal separator purely to log a diagnostic warning
// when autoFix is true, preserving the shape of a locale guard for
// callers migrating from an environment where one was load-bearing.
// It returns true if no hostile locale was detected (or autoFix is
// false), false if one was detected and logged.
func CheckLocale(autoFix bool) bool {
	if !autoFix {
		return true
	}
	name := firstNonEmpty(os.Getenv("LC_NUMERIC"), os.Getenv("LC_ALL"), os.Getenv("LANG"))
	if name == "" {
		return true
	}
	for _, hostile := range localeHostileEnvVars {
		if strings.HasPrefix(name, hostile) {
			logLocaleWarning(name)
			return false
		}
	}
	return true
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
