package qjson

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ParseError records a lexical error, grammar violation, depth overflow,
// unterminated string, invalid UTF-8/surrogate sequence, or trailing
// content after the root value.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("qjson: parse error at byte %s: %s", humanize.Comma(int64(e.Offset)), e.Msg)
}

func newParseError(offset int, format string, args ...interface{}) *ParseError {
	return &ParseError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// OptionError records a well-formed JSON document that nonetheless
// violates a requested ParseOption (RequireObject, RequireArray). An
// unset root under the NoBareNull SerOption is reported as a SerError.
type OptionError struct {
	Msg string
}

func (e *OptionError) Error() string { return "qjson: option error: " + e.Msg }

func newOptionError(format string, args ...interface{}) *OptionError {
	return &OptionError{Msg: fmt.Sprintf(format, args...)}
}

// SerError records a value that cannot be serialized: a non-finite
// double, or the unset sentinel under NoBareNull.
type SerError struct {
	Msg string
}

func (e *SerError) Error() string { return "qjson: serialize error: " + e.Msg }

func newSerError(format string, args ...interface{}) *SerError {
	return &SerError{Msg: fmt.Sprintf(format, args...)}
}

// ParserUnavailableError is returned when the requested parser Backend
// is not present on this build/host.
type ParserUnavailableError struct {
	Backend Backend
}

func (e *ParserUnavailableError) Error() string {
	return fmt.Sprintf("qjson: parser backend %s is not available", e.Backend)
}

// IOError wraps a filesystem failure from ParseFile.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("qjson: reading %q: %v", e.Path, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// InternalError records an invariant violation that should be
// unreachable given well-formed input from earlier pipeline stages. It
// is reported rather than allowed to panic or silently corrupt output.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string { return "qjson: internal error: " + e.Msg }

func newInternalError(format string, args ...interface{}) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}
