package utils

import (
	"strings"

	"github.com/twmb/murmur3"
)

func HashString(s string) uint64 {
	hash := murmur3.New64()
	_, err := hash.Write([]byte(s))
	if err != nil {
		panic(err)
	}
	return hash.Sum64()
}

// HashPair hashes an unordered pair of strings: both orders of the same two
// values produce the same key. Values are lowercased before hashing.
func HashPair(a string, b string) uint64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a > b {
		a, b = b, a
	}
	return HashString(a + "|" + b)
}
