package qjson

import "os"

// ParseFile reads path fully into memory and parses it with ParseUtf8.
// It is the only filesystem-facing operation in this package; a read
// failure is wrapped as *IOError.
func ParseFile(path string, opt ParseOption, backend Backend) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, &IOError{Path: path, Err: err}
	}
	return ParseUtf8(data, opt, backend)
}
