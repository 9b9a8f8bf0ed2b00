package fuzz

import "testing"

var seedCorpus = []string{
	`{"a":1}`,
	`[1,2,3]`,
	`"hello"`,
	`null`,
	`true`,
	`false`,
	`1.5e10`,
	`{"nested":{"a":[1,2,{"b":null}]}}`,
	`[1,]`,
	`{"a":1,}`,
	`01`,
	`"𝄞"`,
	`18446744073709551615`,
	`-9223372036854775808`,
}

func FuzzAgainstEncodingJSON(f *testing.F) {
	for _, s := range seedCorpus {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		if err := Compare(data); err != nil {
			t.Error(err)
		}
	})
}
