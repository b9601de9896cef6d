package common

import (
	"golang.org/x/crypto/sha3"
)

// Keccak256 hashes the concatenation of data with the pre-standard Keccak
// padding used by Ethereum. It is NOT NIST SHA3-256.
func Keccak256(data ...[]byte) Hash {
	hash := sha3.NewLegacyKeccak256()
	for _, b := range data {
		hash.Write(b)
	}
	return BytesToHash(hash.Sum(nil))
}
