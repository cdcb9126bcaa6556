package codec

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// BigIntStr is an arbitrary-precision integer which marshals to and from a
// decimal string in JSON, so that values beyond the 53-bit safe-integer
// range survive untyped JSON consumers.
type BigIntStr big.Int

func (i *BigIntStr) MarshalJSON() ([]byte, error) {
	return json.Marshal((*big.Int)(i).String())
}

func (i *BigIntStr) UnmarshalJSON(b []byte) error {
	// Try string first
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		value, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return fmt.Errorf("invalid decimal string %q", s)
		}
		*i = BigIntStr(*value)
		return nil
	}

	// Fallback to number
	var value int64
	if err := json.Unmarshal(b, &value); err != nil {
		return err
	}
	*i = BigIntStr(*big.NewInt(value))
	return nil
}

// Int returns the value as *big.Int.
func (i *BigIntStr) Int() *big.Int {
	return (*big.Int)(i)
}

// String returns the decimal representation.
func (i *BigIntStr) String() string {
	return (*big.Int)(i).String()
}
