package digest

import (
	"crypto/sha256"
)

// Sum computes SHA-256 over the concatenation of parts, in order, with no
// separators. Sum("ab", "c") and Sum("a", "bc") are therefore equal.
func Sum(parts ...[]byte) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// SumContext digests a payload under a context key: SHA-256(key || payload).
func SumContext(key, payload string) []byte {
	return Sum([]byte(key), []byte(payload))
}
