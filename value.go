package qjson

import "bytes"

// Kind identifies which field of a Value is populated.
type Kind uint8

const (
	// KindUnset is the zero value of Kind, distinguishing a bare,
	// never-set Value (the "unset sentinel" of spec) from an explicit
	// JSON null.
	KindUnset Kind = iota
	KindNull
	KindBool
	KindU64
	KindI64
	KindF64
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindU64:
		return "uint64"
	case KindI64:
		return "int64"
	case KindF64:
		return "float64"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a tagged variant representing any JSON value. It is a
// struct rather than an interface{} so scalar values never need a heap
// allocation of their own during parsing.
type Value struct {
	Kind Kind
	Bool bool
	U64  uint64
	I64  int64
	F64  float64
	Str  []byte
	Arr  []Value
	Obj  []Member
}

// Member is one key/value pair of an Object. Object preserves insertion
// order and duplicate keys through parsing; Serialize imposes its own
// deterministic (sorted) order independent of Member order.
type Member struct {
	Key   []byte
	Value Value
}

// Null returns the JSON null value.
func Null() Value { return Value{Kind: KindNull} }

// Bool returns a JSON boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Uint64 returns a JSON number value backed by an unsigned 64-bit integer.
func Uint64(u uint64) Value { return Value{Kind: KindU64, U64: u} }

// Int64 returns a JSON number value backed by a signed 64-bit integer.
func Int64(i int64) Value { return Value{Kind: KindI64, I64: i} }

// Float64 returns a JSON number value backed by an IEEE-754 double.
func Float64(f float64) Value { return Value{Kind: KindF64, F64: f} }

// String returns a JSON string value.
func String(s string) Value { return Value{Kind: KindString, Str: []byte(s)} }

// Bytes returns a JSON string value from raw UTF-8 bytes. A nil or
// empty slice serializes as null, since an absent byte array is
// indistinguishable from one that was never set.
func Bytes(b []byte) Value {
	if len(b) == 0 {
		return Null()
	}
	return Value{Kind: KindString, Str: b}
}

// Array returns a JSON array value.
func Array(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{Kind: KindArray, Arr: elems}
}

// Object returns a JSON object value preserving the given member order.
func Object(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{Kind: KindObject, Obj: members}
}

// IsUnset reports whether v is the zero-value "unset" sentinel,
// distinct from an explicit JSON null.
func (v Value) IsUnset() bool { return v.Kind == KindUnset }

// Equal reports structural equality per the round-trip invariant:
// numeric kinds compare by mathematical value (two integer kinds compare
// exactly; an integer compared with a float64 is first converted to
// float64), arrays compare order-sensitively, and objects compare as a
// multiset of key/value pairs (duplicate keys must match
// occurrence-for-occurrence, in any order, since qjson never collapses
// them).
func (v Value) Equal(o Value) bool {
	if v.Kind == KindUnset || o.Kind == KindUnset {
		return v.Kind == o.Kind
	}
	if isNumericKind(v.Kind) && isNumericKind(o.Kind) {
		return numericEqual(v, o)
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindString:
		return bytes.Equal(v.Str, o.Str)
	case KindArray:
		if len(v.Arr) != len(o.Arr) {
			return false
		}
		for i := range v.Arr {
			if !v.Arr[i].Equal(o.Arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return objectsEqual(v.Obj, o.Obj)
	default:
		return false
	}
}

func isNumericKind(k Kind) bool { return k == KindU64 || k == KindI64 || k == KindF64 }

func numericEqual(a, b Value) bool {
	switch {
	case a.Kind == KindU64 && b.Kind == KindU64:
		return a.U64 == b.U64
	case a.Kind == KindI64 && b.Kind == KindI64:
		return a.I64 == b.I64
	case a.Kind == KindU64 && b.Kind == KindI64:
		return b.I64 >= 0 && uint64(b.I64) == a.U64
	case a.Kind == KindI64 && b.Kind == KindU64:
		return a.I64 >= 0 && uint64(a.I64) == b.U64
	}
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		return af == bf
	}
	return false
}

func asFloat(v Value) (float64, bool) {
	switch v.Kind {
	case KindU64:
		return float64(v.U64), true
	case KindI64:
		return float64(v.I64), true
	case KindF64:
		return v.F64, true
	default:
		return 0, false
	}
}

func objectsEqual(a, b []Member) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ma := range a {
		found := false
		for j, mb := range b {
			if used[j] || !bytes.Equal(ma.Key, mb.Key) {
				continue
			}
			if ma.Value.Equal(mb.Value) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
