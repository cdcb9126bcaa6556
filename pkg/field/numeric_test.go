package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanohq/nano-engine/pkg/codec"
)

func TestIntField(t *testing.T) {
	f := intField{}
	assert.Equal(t, []byte{0x7e}, encodeValue(t, f, big.NewInt(-2)))
	assert.Equal(t, []byte{0x80, 0x01}, encodeValue(t, f, big.NewInt(128)))

	value, read := decodeValue(t, f, []byte{0x81, 0x7f})
	assert.Equal(t, int64(-127), value.(*big.Int).Int64())
	assert.Equal(t, 2, read)

	user, err := f.ToUser(big.NewInt(-127))
	require.NoError(t, err)
	assert.Equal(t, "-127", user)

	back, err := f.FromUser("-127")
	require.NoError(t, err)
	assert.Equal(t, int64(-127), back.(*big.Int).Int64())

	// JSON numbers arrive as float64; integral ones are accepted
	back, err = f.FromUser(float64(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), back.(*big.Int).Int64())

	_, err = f.FromUser(1.5)
	assert.ErrorIs(t, err, ErrUserInput)
	_, err = f.FromUser(float64(1 << 54))
	assert.ErrorIs(t, err, ErrUserInput)
	_, err = f.FromUser("12abc")
	assert.ErrorIs(t, err, ErrUserInput)
}

func TestIntFieldBeyondUint64(t *testing.T) {
	f := intField{}
	value, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	decoded, read := decodeValue(t, f, encodeValue(t, f, value))
	assert.Equal(t, 0, value.Cmp(decoded.(*big.Int)))
	assert.Equal(t, len(encodeValue(t, f, value)), read)

	back, err := f.FromUser("123456789012345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, 0, value.Cmp(back.(*big.Int)))
}

func TestAmountField(t *testing.T) {
	f := amountField{}
	assert.Equal(t, []byte{0xff, 0x01}, encodeValue(t, f, big.NewInt(255)))

	value, read := decodeValue(t, f, []byte{0xff, 0x01})
	assert.Equal(t, int64(255), value.(*big.Int).Int64())
	assert.Equal(t, 2, read)

	writer := codec.NewWriter()
	assert.ErrorIs(t, f.Encode(writer, big.NewInt(-1)), codec.ErrNegative)

	_, err := f.FromUser("-5")
	assert.ErrorIs(t, err, ErrUserInput)

	back, err := f.FromUser("21000000000000")
	require.NoError(t, err)
	assert.Equal(t, "21000000000000", back.(*big.Int).String())
}

func TestTimestampField(t *testing.T) {
	f := timestampField{}
	encoded := encodeValue(t, f, big.NewInt(1700000000))
	assert.Len(t, encoded, 4)

	value, read := decodeValue(t, f, encoded)
	assert.Equal(t, int64(1700000000), value.(*big.Int).Int64())
	assert.Equal(t, 4, read)

	// negative timestamps survive the two's-complement form
	value, _ = decodeValue(t, f, encodeValue(t, f, big.NewInt(-1)))
	assert.Equal(t, int64(-1), value.(*big.Int).Int64())

	writer := codec.NewWriter()
	assert.ErrorIs(t, f.Encode(writer, big.NewInt(1<<40)), ErrWrongValueType)
	_, err := f.FromUser("5000000000")
	assert.ErrorIs(t, err, ErrUserInput)
}
