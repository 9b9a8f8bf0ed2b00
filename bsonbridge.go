package qjson

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToBSON converts an Object Value into a bson.D, for callers storing
// parsed config blobs or snapshots in a Mongo-backed document store.
// Single-key member objects matching one of the recognized Extended
// JSON markers ($oid, $numberLong, $date, $binary) are converted to the
// corresponding native BSON type rather than left as a nested document.
func ToBSON(v Value) (bson.D, error) {
	if v.Kind != KindObject {
		return nil, newOptionError("ToBSON requires an object value, got %s", v.Kind)
	}
	doc := make(bson.D, 0, len(v.Obj))
	for _, m := range v.Obj {
		conv, err := toBSONValue(m.Value)
		if err != nil {
			return nil, err
		}
		doc = append(doc, bson.E{Key: string(m.Key), Value: conv})
	}
	return doc, nil
}

func toBSONValue(v Value) (interface{}, error) {
	switch v.Kind {
	case KindUnset, KindNull:
		return nil, nil
	case KindBool:
		return v.Bool, nil
	case KindU64:
		return v.U64, nil
	case KindI64:
		return v.I64, nil
	case KindF64:
		return v.F64, nil
	case KindString:
		return string(v.Str), nil
	case KindArray:
		arr := make(bson.A, len(v.Arr))
		for i, e := range v.Arr {
			conv, err := toBSONValue(e)
			if err != nil {
				return nil, err
			}
			arr[i] = conv
		}
		return arr, nil
	case KindObject:
		marker, ok, err := recognizeMarker(v.Obj)
		if err != nil {
			return nil, err
		}
		if ok {
			return marker, nil
		}
		doc := make(bson.D, 0, len(v.Obj))
		for _, m := range v.Obj {
			conv, err := toBSONValue(m.Value)
			if err != nil {
				return nil, err
			}
			doc = append(doc, bson.E{Key: string(m.Key), Value: conv})
		}
		return doc, nil
	default:
		return nil, newInternalError("unknown Kind %d in ToBSON", v.Kind)
	}
}

// recognizeMarker detects a single-key object matching one of the
// document-store markers this bridge understands. It is deliberately
// narrower than full Extended JSON v2: only the handful of markers
// relevant to config/snapshot documents are handled here, one layer
// above the core JSON grammar, which has no notion of them at all.
func recognizeMarker(obj []Member) (interface{}, bool, error) {
	if len(obj) != 1 {
		return nil, false, nil
	}
	m := obj[0]
	switch string(m.Key) {
	case "$oid":
		if m.Value.Kind != KindString {
			return nil, false, nil
		}
		oid, err := primitive.ObjectIDFromHex(string(m.Value.Str))
		if err != nil {
			return nil, true, newInternalError("invalid $oid: %v", err)
		}
		return oid, true, nil

	case "$numberLong":
		if m.Value.Kind != KindString {
			return nil, false, nil
		}
		i, err := strconv.ParseInt(string(m.Value.Str), 10, 64)
		if err != nil {
			return nil, true, newInternalError("invalid $numberLong: %v", err)
		}
		return i, true, nil

	case "$date":
		if m.Value.Kind != KindObject {
			return nil, false, nil
		}
		inner, ok, err := recognizeMarker(m.Value.Obj)
		if err != nil || !ok {
			return nil, false, err
		}
		millis, ok := inner.(int64)
		if !ok {
			return nil, false, nil
		}
		return primitive.NewDateTimeFromTime(time.UnixMilli(millis)), true, nil

	case "$binary":
		if m.Value.Kind != KindObject {
			return nil, false, nil
		}
		var b64 string
		var subType byte
		for _, bm := range m.Value.Obj {
			switch string(bm.Key) {
			case "base64":
				if bm.Value.Kind == KindString {
					b64 = string(bm.Value.Str)
				}
			case "subType":
				if bm.Value.Kind == KindString {
					n, err := strconv.ParseUint(string(bm.Value.Str), 16, 8)
					if err != nil {
						return nil, true, newInternalError("invalid $binary subType: %v", err)
					}
					subType = byte(n)
				}
			}
		}
		data, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return nil, true, newInternalError("invalid $binary base64: %v", err)
		}
		return primitive.Binary{Subtype: subType, Data: data}, true, nil

	default:
		return nil, false, nil
	}
}

// FromBSON converts a bson.D document back into a Value, rendering
// primitive.ObjectID, primitive.DateTime, and primitive.Binary back into
// their $oid, $date, and $binary marker object form. An int64 (including
// one produced from a $numberLong marker) comes back as a plain Int64
// number, not as a $numberLong marker.
func FromBSON(d bson.D) Value {
	return fromBSONValue(d)
}

func fromBSONValue(x interface{}) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case int32:
		return Int64(int64(t))
	case int64:
		return Int64(t)
	case uint64:
		return Uint64(t)
	case float64:
		return Float64(t)
	case string:
		return String(t)
	case primitive.ObjectID:
		return Object(Member{Key: []byte("$oid"), Value: String(t.Hex())})
	case primitive.DateTime:
		return Object(Member{Key: []byte("$date"), Value: Object(
			Member{Key: []byte("$numberLong"), Value: String(strconv.FormatInt(int64(t), 10))},
		)})
	case primitive.Binary:
		return Object(
			Member{Key: []byte("$binary"), Value: Object(
				Member{Key: []byte("base64"), Value: String(base64.StdEncoding.EncodeToString(t.Data))},
				Member{Key: []byte("subType"), Value: String(fmt.Sprintf("%02x", t.Subtype))},
			)},
		)
	case bson.A:
		elems := make([]Value, len(t))
		for i, e := range t {
			elems[i] = fromBSONValue(e)
		}
		return Array(elems...)
	case bson.D:
		members := make([]Member, len(t))
		for i, e := range t {
			members[i] = Member{Key: []byte(e.Key), Value: fromBSONValue(e.Value)}
		}
		return Object(members...)
	case primitive.M:
		members := make([]Member, 0, len(t))
		for k, v := range t {
			members = append(members, Member{Key: []byte(k), Value: fromBSONValue(v)})
		}
		return Object(members...)
	default:
		return Null()
	}
}
