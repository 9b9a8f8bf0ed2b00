package qjson

import (
	"math"
	"sort"
	"strconv"
)

// SerOption controls how Serialize/ToUTF8 treats the unset sentinel at
// the root.
type SerOption uint8

const (
	// NoBareNull rejects the unset sentinel at the root with a SerError.
	NoBareNull SerOption = iota
	// BareNullOk renders the unset sentinel at the root as "null".
	BareNullOk
)

// ToUTF8 is the high-level serialize entry point: compact when compact
// is true, otherwise pretty-printed with a 4-space indent. opt governs
// only whether an unset root value is rejected (NoBareNull) or rendered
// as "null" (BareNullOk); Serialize itself always allows a bare null.
func ToUTF8(v Value, compact bool, opt SerOption) ([]byte, error) {
	CheckLocale(AutoFixLocale())

	if v.Kind == KindUnset && opt == NoBareNull {
		return nil, newSerError("unset value cannot be serialized under NoBareNull")
	}

	indent := uint(4)
	if compact {
		indent = 0
	}
	return Serialize(v, indent, 0)
}

// Serialize renders v as JSON. prettyIndent == 0 means fully compact
// (no inter-token whitespace); otherwise each nesting level adds
// prettyIndent spaces of leading indentation, a newline follows '{',
// '[', and ',', and one space follows ':'. No trailing newline is
// written after the root value. An unset value always renders as
// "null"; callers that must reject a bare unset root use ToUTF8 with
// NoBareNull instead.
func Serialize(v Value, prettyIndent, indentLevel uint) ([]byte, error) {
	buf := make([]byte, 0, 256)
	buf, err := appendValue(buf, v, prettyIndent, indentLevel)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func appendValue(buf []byte, v Value, indent, level uint) ([]byte, error) {
	switch v.Kind {
	case KindUnset:
		return append(buf, "null"...), nil
	case KindNull:
		return append(buf, "null"...), nil
	case KindBool:
		if v.Bool {
			return append(buf, "true"...), nil
		}
		return append(buf, "false"...), nil
	case KindU64:
		return strconv.AppendUint(buf, v.U64, 10), nil
	case KindI64:
		return strconv.AppendInt(buf, v.I64, 10), nil
	case KindF64:
		if math.IsNaN(v.F64) || math.IsInf(v.F64, 0) {
			return nil, newSerError("non-finite float %v cannot be serialized", v.F64)
		}
		return strconv.AppendFloat(buf, v.F64, 'g', -1, 64), nil
	case KindString:
		return appendEscapedString(buf, v.Str), nil
	case KindArray:
		return appendArray(buf, v.Arr, indent, level)
	case KindObject:
		return appendObject(buf, v.Obj, indent, level)
	default:
		return nil, newInternalError("unknown Kind %d in Serialize", v.Kind)
	}
}

func appendArray(buf []byte, elems []Value, indent, level uint) ([]byte, error) {
	buf = append(buf, '[')
	for i, e := range elems {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendNewlineIndent(buf, indent, level+1)
		var err error
		buf, err = appendValue(buf, e, indent, level+1)
		if err != nil {
			return nil, err
		}
	}
	if len(elems) > 0 {
		buf = appendNewlineIndent(buf, indent, level)
	}
	buf = append(buf, ']')
	return buf, nil
}

func appendObject(buf []byte, members []Member, indent, level uint) ([]byte, error) {
	order := sortedMemberIndices(members)

	buf = append(buf, '{')
	for i, idx := range order {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendNewlineIndent(buf, indent, level+1)
		buf = appendEscapedString(buf, members[idx].Key)
		buf = append(buf, ':')
		if indent > 0 {
			buf = append(buf, ' ')
		}
		var err error
		buf, err = appendValue(buf, members[idx].Value, indent, level+1)
		if err != nil {
			return nil, err
		}
	}
	if len(order) > 0 {
		buf = appendNewlineIndent(buf, indent, level)
	}
	buf = append(buf, '}')
	return buf, nil
}

// sortedMemberIndices returns member indices in ascending lexicographic
// byte order of their key, stable on ties so duplicate keys keep their
// relative insertion order. Serialize never relies on Go map iteration
// order -- Object is a plain ordered slice, and this sort is the only
// source of output determinism.
func sortedMemberIndices(members []Member) []int {
	order := make([]int, len(members))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return compareBytes(members[order[a]].Key, members[order[b]].Key) < 0
	})
	return order
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func appendNewlineIndent(buf []byte, indent, level uint) []byte {
	if indent == 0 {
		return buf
	}
	buf = append(buf, '\n')
	for i := uint(0); i < indent*level; i++ {
		buf = append(buf, ' ')
	}
	return buf
}

const hexDigits = "0123456789abcdef"

// appendEscapedString quotes and escapes s per the minimal JSON escape
// set: '"', '\\', and the named control-character shorthands get their
// two-character form; any other byte < 0x20 becomes \u00XX in lowercase
// hex; everything else, including 0x7F, is emitted verbatim.
func appendEscapedString(buf, s []byte) []byte {
	buf = append(buf, '"')
	for _, b := range s {
		switch b {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if b < 0x20 {
				buf = append(buf, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xF])
			} else {
				buf = append(buf, b)
			}
		}
	}
	buf = append(buf, '"')
	return buf
}
