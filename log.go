package qjson

import "github.com/go-kit/log"

// pkgLogger is used at exactly two call sites: the locale guard logging
// a detected comma-decimal-separator environment, and the backend
// selector logging a BackendSimd request that could not be honored.
// Parse and serialize themselves never log.
var pkgLogger log.Logger = log.NewNopLogger()

// SetLogger installs l as the package-wide diagnostic logger, replacing
// the default no-op. Pass nil to restore the no-op.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNopLogger()
	}
	pkgLogger = l
}

func logLocaleWarning(name string) {
	pkgLogger.Log("component", "locale", "msg", "detected locale with non-'.' decimal separator", "locale", name)
}

func logSimdUnavailable() {
	pkgLogger.Log("component", "backend", "msg", "simd backend requested but not available", "backend", BackendSimd.String())
}
