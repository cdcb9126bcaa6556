package crypto

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"

	"github.com/nanohq/nano-engine/pkg/collection"
	"github.com/nanohq/nano-engine/pkg/network"
)

// AddressLength is the raw size of an address: one version byte, a 20-byte
// public-key hash and a 4-byte checksum.
const AddressLength = 25

var (
	// ErrAddressLength represents an address payload that is not 25 bytes.
	ErrAddressLength = errors.New("Address should be 25 bytes long")
	// ErrAddressChecksum represents a checksum not matching the payload.
	ErrAddressChecksum = errors.New("invalid address checksum")
	// ErrAddressVersion represents a version byte the network does not use.
	ErrAddressVersion = errors.New("invalid address version")
)

// Address is a validated 25-byte address. The zero value is not a valid
// address; construct through one of the NewAddress functions.
type Address struct {
	raw [AddressLength]byte
}

// NewAddress validates data against net and returns it as an Address.
// The checksum is verified before the version byte, so a corrupted payload
// reports corruption rather than a wrong network.
func NewAddress(data []byte, net *network.Network) (Address, error) {
	if len(data) != AddressLength {
		return Address{}, fmt.Errorf("%w, got %d bytes", ErrAddressLength, len(data))
	}
	payload := data[:AddressLength-ChecksumLength]
	checksum := data[AddressLength-ChecksumLength:]
	if !collection.Equal(Checksum(payload), checksum) {
		return Address{}, ErrAddressChecksum
	}
	if !net.ValidVersion(data[0]) {
		return Address{}, fmt.Errorf("%w 0x%02x for network %s", ErrAddressVersion, data[0], net.Name)
	}
	result := Address{}
	copy(result.raw[:], data)
	return result, nil
}

// NewAddressFromBase58 decodes and validates a base58 address string.
func NewAddressFromBase58(encoded string, net *network.Network) (Address, error) {
	decoded := base58.Decode(encoded)
	if len(decoded) == 0 {
		return Address{}, fmt.Errorf("invalid base58 address %q", encoded)
	}
	return NewAddress(decoded, net)
}

// NewAddressFromPublicKey derives the P2PKH address of a public key on net.
func NewAddressFromPublicKey(publicKey []byte, net *network.Network) Address {
	payload := make([]byte, 0, AddressLength)
	payload = append(payload, net.P2PKHVersion)
	payload = append(payload, Hash160(publicKey)...)
	payload = append(payload, Checksum(payload)...)
	result := Address{}
	copy(result.raw[:], payload)
	return result
}

// Bytes returns the raw 25-byte form.
func (a Address) Bytes() []byte {
	result := make([]byte, AddressLength)
	copy(result, a.raw[:])
	return result
}

// Base58 returns the base58 string form.
func (a Address) Base58() string {
	return base58.Encode(a.raw[:])
}

// Version returns the leading version byte.
func (a Address) Version() byte {
	return a.raw[0]
}

// String implements fmt.Stringer with the base58 form.
func (a Address) String() string {
	return a.Base58()
}
