package common

import (
	"crypto/rand"
	"math/big"
)

var seq = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomInt returns a random integer in 0 .. max-1 (crypto/rand backed).
func RandomInt(max int) int {
	if max <= 0 {
		return 0
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0
	}
	return int(n.Int64())
}

// Random returns a random alphanumeric string of length n.
func Random(n int) string {
	runes := make([]byte, n)
	for i := 0; i < n; i++ {
		runes[i] = seq[RandomInt(len(seq))]
	}
	return string(runes)
}
