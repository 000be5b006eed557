package payload

import (
	"math/rand/v2"
)

// Alphabet is the set of bytes generated payloads are drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns size bytes, each picked uniformly from Alphabet using the
// process-wide random source. A size of 0 or less yields an empty slice.
func Generate(size int) []byte {
	if size <= 0 {
		return []byte{}
	}
	out := make([]byte, size)
	for i := range out {
		out[i] = Alphabet[rand.IntN(len(Alphabet))]
	}
	return out
}
