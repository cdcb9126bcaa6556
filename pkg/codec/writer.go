package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
)

// Writer is responsible for writing wire-format data to a growing buffer.
type Writer struct {
	result []byte
}

// NewWriter returns a new instance of a writer.
func NewWriter() *Writer {
	return &Writer{
		result: []byte{},
	}
}

// Result returns the written bytes.
func (w *Writer) Result() []byte {
	return w.result
}

// Size returns the written size.
func (w *Writer) Size() int {
	return len(w.result)
}

// WriteTag writes a single tag byte.
func (w *Writer) WriteTag(data byte) {
	w.result = append(w.result, data)
}

// WriteBool writes a boolean as the strict 0x00 or 0x01 tag.
func (w *Writer) WriteBool(data bool) {
	if data {
		w.WriteTag(0x01)
	} else {
		w.WriteTag(0x00)
	}
}

// WriteFixedBytes writes raw bytes with no length prefix.
func (w *Writer) WriteFixedBytes(data []byte) {
	w.result = append(w.result, data...)
}

// WriteLength writes an unsigned LEB128 length prefix, rejecting sizes above
// MaxValueLength so encoded data stays decodable.
func (w *Writer) WriteLength(size int) error {
	if size < 0 {
		return ErrNegative
	}
	if size > MaxValueLength {
		return fmt.Errorf("length %d: %w", size, ErrMaxLength)
	}
	encoded, err := EncodeUnsigned(big.NewInt(int64(size)))
	if err != nil {
		return err
	}
	w.result = append(w.result, encoded...)
	return nil
}

// WriteBytes writes a length-prefixed byte blob.
func (w *Writer) WriteBytes(data []byte) error {
	if err := w.WriteLength(len(data)); err != nil {
		return err
	}
	w.result = append(w.result, data...)
	return nil
}

// WriteString writes a length-prefixed UTF-8 string.
func (w *Writer) WriteString(data string) error {
	return w.WriteBytes([]byte(data))
}

// WriteInt32 writes a fixed 4-byte big-endian two's-complement integer.
func (w *Writer) WriteInt32(data int32) {
	raw := make([]byte, 4)
	binary.BigEndian.PutUint32(raw, uint32(data))
	w.result = append(w.result, raw...)
}

// WriteFloat64 writes a fixed 8-byte big-endian IEEE-754 double.
func (w *Writer) WriteFloat64(data float64) {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, math.Float64bits(data))
	w.result = append(w.result, raw...)
}

// WriteVarInt writes a signed LEB128 integer of arbitrary precision.
func (w *Writer) WriteVarInt(data *big.Int) {
	w.result = append(w.result, EncodeSigned(data)...)
}

// WriteUVarInt writes an unsigned LEB128 integer of arbitrary precision.
func (w *Writer) WriteUVarInt(data *big.Int) error {
	encoded, err := EncodeUnsigned(data)
	if err != nil {
		return err
	}
	w.result = append(w.result, encoded...)
	return nil
}
