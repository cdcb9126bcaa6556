package codec

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBytes(t *testing.T) {
	writer := NewWriter()
	require.NoError(t, writer.WriteBytes([]byte{0xaa, 0xbb}))
	assert.Equal(t, []byte{0x02, 0xaa, 0xbb}, writer.Result())
	assert.Equal(t, 3, writer.Size())

	writer = NewWriter()
	err := writer.WriteBytes(bytes.Repeat([]byte{0x00}, MaxValueLength+1))
	assert.ErrorIs(t, err, ErrMaxLength)
}

func TestWriteBool(t *testing.T) {
	writer := NewWriter()
	writer.WriteBool(true)
	writer.WriteBool(false)
	assert.Equal(t, []byte{0x01, 0x00}, writer.Result())
}

func TestWriteInt32(t *testing.T) {
	writer := NewWriter()
	writer.WriteInt32(-2)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xfe}, writer.Result())
}

func TestWriteUVarInt(t *testing.T) {
	writer := NewWriter()
	require.NoError(t, writer.WriteUVarInt(big.NewInt(128)))
	assert.Equal(t, []byte{0x80, 0x01}, writer.Result())
	assert.ErrorIs(t, writer.WriteUVarInt(big.NewInt(-1)), ErrNegative)
}

func TestWriteLength(t *testing.T) {
	writer := NewWriter()
	assert.ErrorIs(t, writer.WriteLength(-1), ErrNegative)
	assert.ErrorIs(t, writer.WriteLength(MaxValueLength+1), ErrMaxLength)
	require.NoError(t, writer.WriteLength(MaxValueLength))
	assert.Equal(t, []byte{0xff, 0xff, 0x03}, writer.Result())
}
