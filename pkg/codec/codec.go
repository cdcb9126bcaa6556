// Package codec implements the nano-contract argument wire format: a
// DWARF5-style signed/unsigned LEB128 variable-length integer encoding and
// the fixed-width and length-prefixed encodings built on top of it.
//
// All decoding operates on read-only views of the input buffer and reports
// exactly how many bytes were consumed, so callers can pack sibling fields
// back to back on one buffer and advance their own cursor.
package codec

const (
	// MaxValueLength is the maximum payload size in bytes of a
	// length-prefixed value (str, bytes and collection counts).
	MaxValueLength = 65535
	// maxLengthBytes caps the encoded size of a length prefix. Three LEB128
	// groups cover every length up to MaxValueLength; anything longer is
	// rejected before the payload is touched.
	maxLengthBytes = 3
	// HashLength is the size of identifier values carried raw on the wire
	// (contract ids, blueprint ids, vertex ids, custom token uids).
	HashLength = 32
)
