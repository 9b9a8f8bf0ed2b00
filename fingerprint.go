package qjson

import "github.com/cespare/xxhash/v2"

// Fingerprint returns a cheap, stable content hash of v, computed by
// canonically serializing it (compact form, which is already
// deterministic thanks to Serialize's sorted object keys) and hashing
// the result with xxhash. Two Values that would serialize identically
// always fingerprint identically, regardless of how their Object
// members were originally ordered.
func Fingerprint(v Value) (uint64, error) {
	buf, err := Serialize(v, 0, 0)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(buf), nil
}
