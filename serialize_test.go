package qjson

import (
	"math"
	"testing"
)

func TestSerializeCompactScalars(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Null(), "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Uint64(42), "42"},
		{Int64(-42), "-42"},
		{Float64(3.5), "3.5"},
		{String("hi"), `"hi"`},
	}
	for _, c := range cases {
		out, err := Serialize(c.v, 0, 0)
		if err != nil {
			t.Errorf("%v: unexpected error: %v", c.v, err)
			continue
		}
		if string(out) != c.want {
			t.Errorf("got %q, want %q", out, c.want)
		}
	}
}

func TestSerializeStringEscaping(t *testing.T) {
	in := "a\"b\\c\bd\fe\nf\rg\th\x01i\x7fj"
	out, err := Serialize(String(in), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\"a\\\"b\\\\c\\bd\\fe\\nf\\rg\\th\\u0001i\x7fj\""
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestSerializeNonFiniteRejected(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Serialize(Float64(f), 0, 0); err == nil {
			t.Errorf("%v: expected SerError", f)
		} else if _, ok := err.(*SerError); !ok {
			t.Errorf("%v: expected *SerError, got %T", f, err)
		}
	}
}

func TestSerializeUnsetRootUnderOptions(t *testing.T) {
	if _, err := ToUTF8(Value{}, true, NoBareNull); err == nil {
		t.Errorf("expected SerError for unset root under NoBareNull")
	}
	out, err := ToUTF8(Value{}, true, BareNullOk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("got %q, want null", out)
	}
}

func TestSerializePrettyIndentation(t *testing.T) {
	v := Object(
		Member{Key: []byte("a"), Value: Int64(1)},
		Member{Key: []byte("b"), Value: Array(Int64(1), Int64(2))},
	)
	out, err := Serialize(v, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": [\n    1,\n    2\n  ]\n}"
	if string(out) != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestSerializeEmptyContainers(t *testing.T) {
	out, err := Serialize(Array(), 4, 0)
	if err != nil || string(out) != "[]" {
		t.Errorf("got %q, err %v", out, err)
	}
	out, err = Serialize(Object(), 4, 0)
	if err != nil || string(out) != "{}" {
		t.Errorf("got %q, err %v", out, err)
	}
}

func TestSerializeObjectKeyOrderIndependentOfInsertion(t *testing.T) {
	a := Object(Member{Key: []byte("z"), Value: Int64(1)}, Member{Key: []byte("a"), Value: Int64(2)})
	out, err := Serialize(a, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `{"a":2,"z":1}` {
		t.Errorf("got %q", out)
	}
}

func TestFingerprintStableUnderMemberOrder(t *testing.T) {
	a := Object(Member{Key: []byte("x"), Value: Int64(1)}, Member{Key: []byte("y"), Value: Int64(2)})
	b := Object(Member{Key: []byte("y"), Value: Int64(2)}, Member{Key: []byte("x"), Value: Int64(1)})
	ha, err := Fingerprint(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hb, err := Fingerprint(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ha != hb {
		t.Errorf("fingerprints differ for semantically identical objects: %x vs %x", ha, hb)
	}

	c := Object(Member{Key: []byte("x"), Value: Int64(3)})
	hc, err := Fingerprint(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ha == hc {
		t.Errorf("fingerprints collided for different objects")
	}
}
