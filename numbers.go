package qjson

import (
	"bytes"
	"strconv"
)

// interpretNumber turns a raw number lexeme from the tokenizer into a
// Value. A lexeme containing '.', 'e', or 'E' always becomes a float64;
// otherwise one starting with '-' becomes an int64; otherwise a uint64.
// An integer lexeme outside the int64 (negative) or uint64 range becomes
// a float64 approximation instead. This keeps integers that exceed float64's 53-bit exact-integer range
// from losing precision on a routine parse/reserialize round trip.
func interpretNumber(lexeme []byte) (Value, error) {
	if bytes.ContainsAny(lexeme, ".eE") {
		f, err := strconv.ParseFloat(string(lexeme), 64)
		if err != nil {
			return Value{}, newInternalError("malformed float lexeme %q: %v", lexeme, err)
		}
		return Float64(f), nil
	}
	if lexeme[0] == '-' {
		i, err := strconv.ParseInt(string(lexeme), 10, 64)
		if err != nil {
			// Out-of-range negative integer lexemes still have a single
			// valid interpretation: a float64 approximation.
			f, ferr := strconv.ParseFloat(string(lexeme), 64)
			if ferr != nil {
				return Value{}, newInternalError("malformed integer lexeme %q: %v", lexeme, err)
			}
			return Float64(f), nil
		}
		return Int64(i), nil
	}
	u, err := strconv.ParseUint(string(lexeme), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(string(lexeme), 64)
		if ferr != nil {
			return Value{}, newInternalError("malformed integer lexeme %q: %v", lexeme, err)
		}
		return Float64(f), nil
	}
	return Uint64(u), nil
}
