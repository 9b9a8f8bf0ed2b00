package qjson

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log"
)

func TestSetLoggerReceivesLocaleWarning(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.NewLogfmtLogger(&buf))
	defer SetLogger(nil)

	t.Setenv("LC_NUMERIC", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "ru_RU.UTF-8")
	CheckLocale(true)

	if !strings.Contains(buf.String(), "locale") {
		t.Errorf("expected a locale warning log line, got %q", buf.String())
	}
}

func TestSetLoggerNilRestoresNoOp(t *testing.T) {
	SetLogger(nil)
	// Should not panic and should produce no observable output.
	logSimdUnavailable()
}
