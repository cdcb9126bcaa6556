// Package crypto provides the hash and base58check primitives behind
// address values: sha256 double-hash checksums and sha256+ripemd160
// public-key hashing.
package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

const (
	// ChecksumLength is the size of the checksum trailing an address.
	ChecksumLength = 4
	// HashLength is the size of the public-key hash inside an address.
	HashLength = 20
)

// Hash returns the sha256 hash of data.
func Hash(data []byte) []byte {
	result := sha256.Sum256(data)
	return result[:]
}

// DoubleHash returns sha256 applied twice to data.
func DoubleHash(data []byte) []byte {
	return Hash(Hash(data))
}

// Hash160 returns ripemd160(sha256(data)), the public-key hash used inside
// addresses.
func Hash160(data []byte) []byte {
	hasher := ripemd160.New()
	// ripemd160 Write never fails
	hasher.Write(Hash(data)) //nolint:errcheck
	return hasher.Sum(nil)
}

// Checksum returns the first four bytes of the double sha256 of data.
func Checksum(data []byte) []byte {
	return DoubleHash(data)[:ChecksumLength]
}
