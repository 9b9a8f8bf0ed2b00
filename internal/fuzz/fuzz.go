// Package fuzz differentially tests the qjson parser against the
// standard library's encoding/json: for arbitrary input, either both
// must accept it and agree on shape, or both must reject it.
package fuzz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/qjson-go/qjson"
)

// Compare parses data with both qjson and encoding/json and reports a
// mismatch as a non-nil error. Any accept/reject disagreement is
// reported; when both accept, both re-serializations are parsed back
// with qjson and compared with valuesAgree.
func Compare(data []byte) error {
	var stdOut interface{}
	stdErr := json.Unmarshal(data, &stdOut)

	qVal, qErr := qjson.ParseUtf8(data, qjson.AcceptAnyValue, qjson.BackendDefault)

	if qErr != nil && stdErr == nil {
		return fmt.Errorf("qjson rejected input that encoding/json accepted: %v (input: %s)", qErr, trim(data))
	}
	if qErr == nil && stdErr != nil {
		return fmt.Errorf("qjson accepted input that encoding/json rejected: %v (input: %s)", stdErr, trim(data))
	}
	if qErr != nil {
		return nil
	}

	qOut, err := qjson.ToUTF8(qVal, true, qjson.BareNullOk)
	if err != nil {
		return fmt.Errorf("qjson failed to reserialize its own parse result: %v", err)
	}

	stdReencoded, err := json.Marshal(stdOut)
	if err != nil {
		return fmt.Errorf("encoding/json failed to reserialize its own parse result: %v", err)
	}

	var reparsed interface{}
	if err := json.Unmarshal(stdReencoded, &reparsed); err != nil {
		return fmt.Errorf("encoding/json failed to reparse its own reencoding: %v", err)
	}
	qReparsed, err := qjson.ParseUtf8(qOut, qjson.AcceptAnyValue, qjson.BackendDefault)
	if err != nil {
		return fmt.Errorf("qjson failed to reparse its own reencoding: %v", err)
	}
	stdQVal, err := qjson.ParseUtf8(stdReencoded, qjson.AcceptAnyValue, qjson.BackendDefault)
	if err != nil {
		return fmt.Errorf("qjson failed to parse encoding/json's reencoding: %v", err)
	}
	if !valuesAgree(qReparsed, stdQVal) {
		return fmt.Errorf("qjson and encoding/json disagree on parsed shape (input: %s)", trim(data))
	}

	return nil
}

// valuesAgree is Value.Equal loosened for numbers beyond 2^53: since
// encoding/json always decodes into float64, a huge exact integer
// round-tripped through it picks up binary64 rounding error that an
// exact comparison would flag as a disagreement even though both
// libraries parsed the original input identically. Within the safe
// integer range this is exactly Value.Equal. Arrays and objects are
// compared element by element in order (object members by key and
// value, since both inputs come from key-sorted serializations); other
// non-numeric Kinds use Value.Equal.
func valuesAgree(a, b qjson.Value) bool {
	if isNumeric(a.Kind) && isNumeric(b.Kind) {
		af, _ := numericAsFloat(a)
		bf, _ := numericAsFloat(b)
		if math.Abs(af) <= (1 << 53) {
			return af == bf
		}
		return math.Abs(af-bf) <= math.Abs(af)*1e-9
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case qjson.KindArray:
		if len(a.Arr) != len(b.Arr) {
			return false
		}
		for i := range a.Arr {
			if !valuesAgree(a.Arr[i], b.Arr[i]) {
				return false
			}
		}
		return true
	case qjson.KindObject:
		if len(a.Obj) != len(b.Obj) {
			return false
		}
		for i := range a.Obj {
			if !bytes.Equal(a.Obj[i].Key, b.Obj[i].Key) || !valuesAgree(a.Obj[i].Value, b.Obj[i].Value) {
				return false
			}
		}
		return true
	default:
		return a.Equal(b)
	}
}

func isNumeric(k qjson.Kind) bool {
	return k == qjson.KindU64 || k == qjson.KindI64 || k == qjson.KindF64
}

func numericAsFloat(v qjson.Value) (float64, bool) {
	switch v.Kind {
	case qjson.KindU64:
		return float64(v.U64), true
	case qjson.KindI64:
		return float64(v.I64), true
	case qjson.KindF64:
		return v.F64, true
	default:
		return 0, false
	}
}

func trim(data []byte) string {
	s := string(bytes.TrimSpace(data))
	if len(s) > 160 {
		return s[:160] + "..."
	}
	return s
}
