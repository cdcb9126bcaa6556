package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"unicode/utf8"
)

// Reader is responsible for reading wire-format data from a byte slice.
// It never mutates the slice it is given; every successful read advances an
// internal cursor by exactly the number of bytes consumed.
type Reader struct {
	index int
	end   int
	data  []byte
}

// NewReader returns a reader over the data given.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:  data,
		index: 0,
		end:   len(data),
	}
}

// BytesRead returns how many bytes have been consumed so far.
func (r *Reader) BytesRead() int {
	return r.index
}

// HasUnreadBytes returns true if the reader has not consumed all data.
func (r *Reader) HasUnreadBytes() bool {
	return r.index != r.end
}

// ReadByte reads a single tag byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.index >= r.end {
		return 0, ErrUnexpectedEnd
	}
	result := r.data[r.index]
	r.index++
	return result, nil
}

// ReadBool reads one byte and requires it to be the strict 0x00 or 0x01 tag.
func (r *Reader) ReadBool() (bool, error) {
	target, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	if target != 0x00 && target != 0x01 {
		return false, fmt.Errorf("invalid boolean tag 0x%02x: %w", target, ErrInvalidData)
	}
	return target != 0x00, nil
}

// ReadFixedBytes reads exactly size raw bytes with no length prefix.
func (r *Reader) ReadFixedBytes(size int) ([]byte, error) {
	remaining := r.end - r.index
	if size > remaining {
		return nil, fmt.Errorf("need %d bytes but %d remain: %w", size, remaining, ErrUnexpectedEnd)
	}
	result := make([]byte, size)
	copy(result, r.data[r.index:r.index+size])
	r.index += size
	return result, nil
}

// ReadLength reads an unsigned LEB128 length prefix, bounded to
// maxLengthBytes encoded bytes and MaxValueLength as a value.
func (r *Reader) ReadLength() (int, error) {
	length, size, err := DecodeUnsigned(r.data[r.index:r.end], maxLengthBytes)
	if err != nil {
		return 0, err
	}
	if !length.IsUint64() || length.Uint64() > MaxValueLength {
		return 0, fmt.Errorf("declared length %s: %w", length, ErrMaxLength)
	}
	r.index += size
	return int(length.Uint64()), nil
}

// ReadBytes reads a length-prefixed byte blob.
func (r *Reader) ReadBytes() ([]byte, error) {
	size, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	remaining := r.end - r.index
	if size > remaining {
		return nil, fmt.Errorf("invalid byte size %d. Remaining data length is %d: %w", size, remaining, ErrUnexpectedEnd)
	}
	return r.ReadFixedBytes(size)
}

// ReadString reads a length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	result, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(result) {
		return "", fmt.Errorf("invalid byte for UTF-8 is included: %w", ErrInvalidData)
	}
	return string(result), nil
}

// ReadInt32 reads a fixed 4-byte big-endian two's-complement integer.
func (r *Reader) ReadInt32() (int32, error) {
	raw, err := r.ReadFixedBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(raw)), nil
}

// ReadFloat64 reads a fixed 8-byte big-endian IEEE-754 double.
func (r *Reader) ReadFloat64() (float64, error) {
	raw, err := r.ReadFixedBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(raw)), nil
}

// ReadVarInt reads a signed LEB128 integer of arbitrary precision.
func (r *Reader) ReadVarInt() (*big.Int, error) {
	value, size, err := DecodeSigned(r.data[r.index:r.end], 0)
	if err != nil {
		return nil, err
	}
	r.index += size
	return value, nil
}

// ReadUVarInt reads an unsigned LEB128 integer of arbitrary precision.
func (r *Reader) ReadUVarInt() (*big.Int, error) {
	value, size, err := DecodeUnsigned(r.data[r.index:r.end], 0)
	if err != nil {
		return nil, err
	}
	r.index += size
	return value, nil
}
