package passlock

import (
	"crypto/sha256"
)

// HashIterations is the number of extra SHA-256 rounds applied by HashPassword.
const HashIterations = 10000

// HashPassword computes H(password || salt), then rehashes the digest with the salt HashIterations times.
// The result is always 32 bytes.
func HashPassword(password string, salt []byte) []byte {
	h := sha256.New()
	h.Write([]byte(password))
	h.Write(salt)
	sum := make([]byte, 0, sha256.Size)
	for i := 0; i < HashIterations; i++ {
		sum = h.Sum(sum[:0])
		h.Reset()
		h.Write(sum)
		h.Write(salt)
	}
	return h.Sum(nil)
}
