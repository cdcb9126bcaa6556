// Package field implements the typed field codecs mapping nano-contract
// method arguments and on-chain values between their wire form and their
// in-memory form, plus the conversion to API-safe user representations.
//
// A codec is selected from a parsed type descriptor through New and is
// stateless: every Decode/Encode/ToUser/FromUser call is a pure function of
// its arguments and the immutable network configuration captured at
// construction, so one codec value can serve concurrent calls.
package field

import (
	"errors"

	"github.com/nanohq/nano-engine/pkg/codec"
)

// Field encodes and decodes one value of a fixed type.
type Field interface {
	// Decode reads one value from r, advancing it by exactly the number of
	// bytes consumed. On failure no partial value is returned.
	Decode(r *codec.Reader) (any, error)
	// Encode appends the wire form of value to w.
	Encode(w *codec.Writer, value any) error
	// ToUser converts a decoded value to its API-safe representation.
	ToUser(value any) (any, error)
	// FromUser validates an API representation and converts it to a value
	// Encode accepts. Shape violations are reported before domain
	// validation runs.
	FromUser(data any) (any, error)
}

var (
	// ErrUnsupportedType represents a type name or node kind with no codec
	// binding. This is a programmer-facing error, not a runtime condition.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrWrongValueType represents an in-memory value whose Go type does
	// not belong to the codec it was given to.
	ErrWrongValueType = errors.New("unexpected value type")
	// ErrArityMismatch represents a tuple or signed-data input with the
	// wrong number of components.
	ErrArityMismatch = errors.New("wrong number of elements")
	// ErrTypeMismatch represents a signed-data declared type disagreeing
	// with the codec's expected subtype.
	ErrTypeMismatch = errors.New("declared type does not match expected subtype")
	// ErrUserInput represents user-facing input failing shape validation.
	ErrUserInput = errors.New("invalid user input")
)

// SignedData is the decoded form of SignedData[T] and RawSignedData[T]: a
// value together with the signature covering it.
type SignedData struct {
	// Type is the subtype descriptor the envelope was built for, e.g.
	// "int?" for SignedData[int?].
	Type      string
	Value     any
	Signature codec.Hex
	// ProducerID identifies the signing contract. It is nil for the raw
	// (caller-signed) variant.
	ProducerID codec.Hex
}

// DictEntry is one key/value pair of a decoded dict. Entries keep wire
// order so re-encoding reproduces the original buffer.
type DictEntry struct {
	Key   any
	Value any
}
