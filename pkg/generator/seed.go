package generator

import (
	"crypto/sha256"
	"math/big"
)

var seedModulus = big.NewInt(100_000_000)

// Seed derives a stable numeric seed from the prompt text: the full SHA-256
// value interpreted as an integer, modulo 10^8. The same prompt always lands
// on the same placeholder image.
func Seed(prompt string) int64 {
	sum := sha256.Sum256([]byte(prompt))
	n := new(big.Int).SetBytes(sum[:])
	return n.Mod(n, seedModulus).Int64()
}
