package codec

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
)

// Hex is a byte slice which marshals to and from a lowercase hex string in
// JSON. It is the in-memory form of every bytes-like wire value.
type Hex []byte

func (h *Hex) UnmarshalJSON(b []byte) error {
	str := ""
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	res, err := hex.DecodeString(str)
	if err != nil {
		return err
	}
	*h = res
	return nil
}

func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

// String returns the lowercase hex representation.
func (h Hex) String() string {
	return hex.EncodeToString(h)
}

// Equal returns true if the underlying bytes are equal.
func (h Hex) Equal(val Hex) bool {
	return bytes.Equal(h, val)
}

// BytesArrayToHexArray converts [][]byte to []Hex.
func BytesArrayToHexArray(val [][]byte) []Hex {
	converted := make([]Hex, len(val))
	for i, v := range val {
		converted[i] = v
	}
	return converted
}
