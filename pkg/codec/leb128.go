package codec

import "math/big"

const (
	continuationBit = 0x80
	groupMask       = 0x7f
	signBit         = 0x40
)

var (
	big7f       = big.NewInt(groupMask)
	bigOne      = big.NewInt(1)
	bigMinusOne = big.NewInt(-1)
)

// EncodeSigned encodes value as a DWARF5 signed LEB128 byte sequence.
// Emission stops once the remaining value is a clean sign-extension of the
// bits already written, so the last byte's sign bit always matches the
// two's-complement sign of the value.
func EncodeSigned(value *big.Int) []byte {
	v := new(big.Int).Set(value)
	result := []byte{}
	for {
		// big.Int And/Rsh follow two's-complement semantics for negative
		// values, which is exactly what LEB128 group extraction needs.
		group := byte(new(big.Int).And(v, big7f).Uint64())
		v.Rsh(v, 7)
		done := (v.Sign() == 0 && group&signBit == 0) ||
			(v.Cmp(bigMinusOne) == 0 && group&signBit != 0)
		if done {
			return append(result, group)
		}
		result = append(result, group|continuationBit)
	}
}

// EncodeUnsigned encodes value as an unsigned LEB128 byte sequence.
// Negative values are rejected.
func EncodeUnsigned(value *big.Int) ([]byte, error) {
	if value.Sign() < 0 {
		return nil, ErrNegative
	}
	v := new(big.Int).Set(value)
	result := []byte{}
	for {
		group := byte(new(big.Int).And(v, big7f).Uint64())
		v.Rsh(v, 7)
		if v.Sign() == 0 {
			return append(result, group), nil
		}
		result = append(result, group|continuationBit)
	}
}

// DecodeSigned decodes a DWARF5 signed LEB128 value from the start of data,
// returning the value and the number of bytes consumed. A positive maxBytes
// bounds how many encoded bytes may be read before the decode is aborted
// with ErrOutOfRange; zero means unbounded.
func DecodeSigned(data []byte, maxBytes int) (*big.Int, int, error) {
	value, size, last, err := decodeGroups(data, maxBytes)
	if err != nil {
		return nil, 0, err
	}
	if last&signBit != 0 {
		value.Sub(value, new(big.Int).Lsh(bigOne, uint(size*7)))
	}
	return value, size, nil
}

// DecodeUnsigned decodes an unsigned LEB128 value from the start of data,
// returning the value and the number of bytes consumed.
func DecodeUnsigned(data []byte, maxBytes int) (*big.Int, int, error) {
	value, size, _, err := decodeGroups(data, maxBytes)
	if err != nil {
		return nil, 0, err
	}
	return value, size, nil
}

// decodeGroups accumulates 7-bit groups until a byte without the
// continuation bit is found. It returns the accumulated (unsigned) value,
// the byte count and the final group for sign extension by the caller.
func decodeGroups(data []byte, maxBytes int) (*big.Int, int, byte, error) {
	result := new(big.Int)
	for i, b := range data {
		if maxBytes > 0 && i >= maxBytes {
			return nil, 0, 0, ErrOutOfRange
		}
		group := big.NewInt(int64(b & groupMask))
		result.Or(result, group.Lsh(group, uint(i*7)))
		if b&continuationBit == 0 {
			return result, i + 1, b, nil
		}
	}
	if maxBytes > 0 && len(data) >= maxBytes {
		return nil, 0, 0, ErrOutOfRange
	}
	if len(data) == 0 {
		return nil, 0, 0, ErrUnexpectedEnd
	}
	return nil, 0, 0, ErrNoTerminate
}
