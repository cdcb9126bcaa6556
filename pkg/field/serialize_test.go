package field

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanohq/nano-engine/pkg/codec"
	"github.com/nanohq/nano-engine/pkg/nctype"
	"github.com/nanohq/nano-engine/pkg/network"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	net := network.Mainnet()
	addr := testAddress(t, net)
	producer := codec.Hex(bytes.Repeat([]byte{0x33}, codec.HashLength))

	cases := []struct {
		typeDesc string
		value    any
	}{
		{typeDesc: "str", value: "nano contract"},
		{typeDesc: "bool", value: true},
		{typeDesc: "int", value: big.NewInt(-129)},
		{typeDesc: "VarInt", value: big.NewInt(1 << 40)},
		{typeDesc: "Amount", value: big.NewInt(2100000000)},
		{typeDesc: "Timestamp", value: big.NewInt(1700000000)},
		{typeDesc: "bytes", value: codec.Hex{0x00, 0x01, 0x02}},
		{typeDesc: "TokenUid", value: codec.Hex{0x00}},
		{typeDesc: "ContractId", value: codec.Hex(bytes.Repeat([]byte{0x44}, 32))},
		{typeDesc: "Address", value: addr},
		{typeDesc: "int?", value: nil},
		{typeDesc: "int?", value: big.NewInt(7)},
		{typeDesc: "tuple[Address, Amount]", value: []any{addr, big.NewInt(5)}},
		{typeDesc: "list[int]", value: []any{big.NewInt(1), big.NewInt(-1)}},
		{typeDesc: "dict[str, set[int]]", value: []DictEntry{
			{Key: "a", Value: []any{big.NewInt(1), big.NewInt(2)}},
		}},
		{typeDesc: "SignedData[Optional[int]]", value: SignedData{
			Type:       "Optional[int]",
			Value:      big.NewInt(42),
			Signature:  codec.Hex{0x01, 0x02, 0x03},
			ProducerID: producer,
		}},
		{typeDesc: "RawSignedData[str]", value: SignedData{
			Type:      "str",
			Value:     "payload",
			Signature: codec.Hex{0xff},
		}},
	}

	for _, testCase := range cases {
		encoded, err := Serialize(testCase.value, testCase.typeDesc, net)
		require.NoError(t, err, testCase.typeDesc)

		decoded, read, err := Deserialize(encoded, testCase.typeDesc, net)
		require.NoError(t, err, testCase.typeDesc)
		assert.Equal(t, len(encoded), read, testCase.typeDesc)
		assert.Equal(t, testCase.value, decoded, testCase.typeDesc)

		// a second encode of the decoded value reproduces the buffer
		again, err := Serialize(decoded, testCase.typeDesc, net)
		require.NoError(t, err, testCase.typeDesc)
		assert.Equal(t, encoded, again, testCase.typeDesc)
	}
}

func TestDeserializeReportsConsumedBytes(t *testing.T) {
	// two values packed on one buffer decode sequentially via bytesRead
	first, err := Serialize(big.NewInt(-127), "int", nil)
	require.NoError(t, err)
	second, err := Serialize("tail", "str", nil)
	require.NoError(t, err)
	buffer := append(append([]byte{}, first...), second...)

	value, read, err := Deserialize(buffer, "int", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(-127), value.(*big.Int).Int64())
	assert.Equal(t, len(first), read)

	value, read, err = Deserialize(buffer[read:], "str", nil)
	require.NoError(t, err)
	assert.Equal(t, "tail", value)
	assert.Equal(t, len(second), read)
}

func TestSerializeErrors(t *testing.T) {
	_, err := Serialize("x", "Queue[int]", nil)
	assert.ErrorIs(t, err, nctype.ErrParse)

	_, err = Serialize(42, "str", nil)
	assert.ErrorIs(t, err, ErrWrongValueType)

	_, _, err = Deserialize([]byte{0x02}, "bool", nil)
	assert.ErrorIs(t, err, codec.ErrInvalidData)

	_, _, err = Deserialize([]byte{}, "int", nil)
	assert.ErrorIs(t, err, codec.ErrUnexpectedEnd)
}

func TestUserRoundTrip(t *testing.T) {
	net := network.Testnet()
	f, err := ForType("dict[str, tuple[Amount, bool]]", net)
	require.NoError(t, err)

	value, err := f.FromUser([]any{
		[]any{"alice", []any{"100", "true"}},
		[]any{"bob", []any{"250", "false"}},
	})
	require.NoError(t, err)

	writer := codec.NewWriter()
	require.NoError(t, f.Encode(writer, value))

	reader := codec.NewReader(writer.Result())
	decoded, err := f.Decode(reader)
	require.NoError(t, err)
	assert.Equal(t, writer.Size(), reader.BytesRead())

	user, err := f.ToUser(decoded)
	require.NoError(t, err)
	assert.Equal(t, []any{
		[]any{"alice", []any{"100", "true"}},
		[]any{"bob", []any{"250", "false"}},
	}, user)
}
