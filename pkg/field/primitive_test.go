package field

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanohq/nano-engine/pkg/codec"
)

func encodeValue(t *testing.T, f Field, value any) []byte {
	t.Helper()
	writer := codec.NewWriter()
	require.NoError(t, f.Encode(writer, value))
	return writer.Result()
}

func decodeValue(t *testing.T, f Field, data []byte) (any, int) {
	t.Helper()
	reader := codec.NewReader(data)
	value, err := f.Decode(reader)
	require.NoError(t, err)
	return value, reader.BytesRead()
}

func TestStrField(t *testing.T) {
	f := strField{}
	encoded := encodeValue(t, f, "hathor")
	assert.Equal(t, []byte{0x06, 'h', 'a', 't', 'h', 'o', 'r'}, encoded)

	value, read := decodeValue(t, f, encoded)
	assert.Equal(t, "hathor", value)
	assert.Equal(t, len(encoded), read)

	user, err := f.ToUser(value)
	require.NoError(t, err)
	assert.Equal(t, "hathor", user)

	back, err := f.FromUser(user)
	require.NoError(t, err)
	assert.Equal(t, value, back)

	writer := codec.NewWriter()
	assert.ErrorIs(t, f.Encode(writer, 42), ErrWrongValueType)
	_, err = f.FromUser(42)
	assert.ErrorIs(t, err, ErrUserInput)
}

func TestBoolField(t *testing.T) {
	f := boolField{}
	assert.Equal(t, []byte{0x01}, encodeValue(t, f, true))
	assert.Equal(t, []byte{0x00}, encodeValue(t, f, false))

	value, read := decodeValue(t, f, []byte{0x01})
	assert.Equal(t, true, value)
	assert.Equal(t, 1, read)

	reader := codec.NewReader([]byte{0x02})
	_, err := f.Decode(reader)
	assert.ErrorIs(t, err, codec.ErrInvalidData)

	reader = codec.NewReader([]byte{})
	_, err = f.Decode(reader)
	assert.ErrorIs(t, err, codec.ErrUnexpectedEnd)

	user, err := f.ToUser(true)
	require.NoError(t, err)
	assert.Equal(t, "true", user)
	user, err = f.ToUser(false)
	require.NoError(t, err)
	assert.Equal(t, "false", user)

	back, err := f.FromUser("true")
	require.NoError(t, err)
	assert.Equal(t, true, back)
	back, err = f.FromUser(false)
	require.NoError(t, err)
	assert.Equal(t, false, back)
	_, err = f.FromUser("yes")
	assert.ErrorIs(t, err, ErrUserInput)
}

func TestBytesField(t *testing.T) {
	f := bytesField{}
	raw := codec.Hex{0xde, 0xad, 0xbe, 0xef}
	encoded := encodeValue(t, f, raw)
	assert.Equal(t, []byte{0x04, 0xde, 0xad, 0xbe, 0xef}, encoded)

	value, read := decodeValue(t, f, encoded)
	assert.Equal(t, raw, value)
	assert.Equal(t, 5, read)

	user, err := f.ToUser(value)
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", user)

	back, err := f.FromUser("deadbeef")
	require.NoError(t, err)
	assert.Equal(t, raw, back)

	_, err = f.FromUser("DEADBEEF")
	assert.ErrorIs(t, err, ErrUserInput)
	_, err = f.FromUser("abc")
	assert.ErrorIs(t, err, ErrUserInput)

	// []byte is accepted on the encode side
	assert.Equal(t, encoded, encodeValue(t, f, []byte{0xde, 0xad, 0xbe, 0xef}))
}

func TestHashField(t *testing.T) {
	f := hashField{}
	raw := codec.Hex(bytes.Repeat([]byte{0xab}, codec.HashLength))
	encoded := encodeValue(t, f, raw)
	// no length prefix
	assert.Equal(t, []byte(raw), encoded)

	value, read := decodeValue(t, f, encoded)
	assert.Equal(t, raw, value)
	assert.Equal(t, codec.HashLength, read)

	writer := codec.NewWriter()
	assert.ErrorIs(t, f.Encode(writer, codec.Hex{0x01}), ErrWrongValueType)

	reader := codec.NewReader(encoded[:10])
	_, err := f.Decode(reader)
	assert.ErrorIs(t, err, codec.ErrUnexpectedEnd)

	_, err = f.FromUser("abcd")
	assert.ErrorIs(t, err, ErrUserInput)
	back, err := f.FromUser(raw.String())
	require.NoError(t, err)
	assert.Equal(t, raw, back)
}
