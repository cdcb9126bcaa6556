package field

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"regexp"

	"github.com/nanohq/nano-engine/pkg/codec"
)

var (
	hexRegex     = regexp.MustCompile(`^([0-9a-f]{2})*$`)
	decimalRegex = regexp.MustCompile(`^-?[0-9]+$`)
)

// maxSafeInteger is the largest float64 that still represents integers
// exactly. Anything beyond it must arrive as a decimal string.
const maxSafeInteger = 1<<53 - 1

// parseUserBigInt accepts the user-facing integer forms: a decimal string,
// a native integer, an exactly-integral float (JSON numbers decode as
// float64) or a ready *big.Int. Out-of-range and fractional input is
// rejected, never truncated.
func parseUserBigInt(data any) (*big.Int, error) {
	switch value := data.(type) {
	case *big.Int:
		return new(big.Int).Set(value), nil
	case *codec.BigIntStr:
		return new(big.Int).Set(value.Int()), nil
	case string:
		if !decimalRegex.MatchString(value) {
			return nil, fmt.Errorf("%q is not a decimal integer: %w", value, ErrUserInput)
		}
		result, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return nil, fmt.Errorf("%q is not a decimal integer: %w", value, ErrUserInput)
		}
		return result, nil
	case int:
		return big.NewInt(int64(value)), nil
	case int64:
		return big.NewInt(value), nil
	case float64:
		if math.Trunc(value) != value || math.Abs(value) > maxSafeInteger {
			return nil, fmt.Errorf("number %v is not a safe integer: %w", value, ErrUserInput)
		}
		return big.NewInt(int64(value)), nil
	}
	return nil, fmt.Errorf("cannot read %T as integer: %w", data, ErrUserInput)
}

// parseUserHex accepts a lowercase hex string of whole bytes.
func parseUserHex(data any) (codec.Hex, error) {
	value, ok := data.(string)
	if !ok {
		return nil, fmt.Errorf("cannot read %T as hex string: %w", data, ErrUserInput)
	}
	if !hexRegex.MatchString(value) {
		return nil, fmt.Errorf("%q is not a lowercase hex string: %w", value, ErrUserInput)
	}
	result, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%q is not a hex string: %w", value, ErrUserInput)
	}
	return result, nil
}

// asBigInt coerces the in-memory integer forms Encode accepts.
func asBigInt(value any) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return v, nil
	case int:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	}
	return nil, fmt.Errorf("expected integer, got %T: %w", value, ErrWrongValueType)
}

// asBytes coerces the in-memory byte forms Encode accepts.
func asBytes(value any) (codec.Hex, error) {
	switch v := value.(type) {
	case codec.Hex:
		return v, nil
	case []byte:
		return v, nil
	}
	return nil, fmt.Errorf("expected bytes, got %T: %w", value, ErrWrongValueType)
}
