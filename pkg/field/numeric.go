package field

import (
	"fmt"
	"math"
	"math/big"

	"github.com/nanohq/nano-engine/pkg/codec"
)

// intField carries signed integers of arbitrary precision as signed
// LEB128. It backs both "int" and "VarInt".
type intField struct{}

func (intField) Decode(r *codec.Reader) (any, error) {
	result, err := r.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (intField) Encode(w *codec.Writer, value any) error {
	v, err := asBigInt(value)
	if err != nil {
		return err
	}
	w.WriteVarInt(v)
	return nil
}

func (intField) ToUser(value any) (any, error) {
	v, err := asBigInt(value)
	if err != nil {
		return nil, err
	}
	return v.String(), nil
}

func (intField) FromUser(data any) (any, error) {
	return parseUserBigInt(data)
}

// amountField carries token amounts as unsigned LEB128. Amounts are never
// negative on the wire.
type amountField struct{}

func (amountField) Decode(r *codec.Reader) (any, error) {
	result, err := r.ReadUVarInt()
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (amountField) Encode(w *codec.Writer, value any) error {
	v, err := asBigInt(value)
	if err != nil {
		return err
	}
	return w.WriteUVarInt(v)
}

func (amountField) ToUser(value any) (any, error) {
	v, err := asBigInt(value)
	if err != nil {
		return nil, err
	}
	return v.String(), nil
}

func (amountField) FromUser(data any) (any, error) {
	result, err := parseUserBigInt(data)
	if err != nil {
		return nil, err
	}
	if result.Sign() < 0 {
		return nil, fmt.Errorf("amount %s is negative: %w", result, ErrUserInput)
	}
	return result, nil
}

// timestampField carries timestamps in the legacy fixed 4-byte big-endian
// signed form.
type timestampField struct{}

func (timestampField) Decode(r *codec.Reader) (any, error) {
	result, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	return big.NewInt(int64(result)), nil
}

func (timestampField) Encode(w *codec.Writer, value any) error {
	v, err := asBigInt(value)
	if err != nil {
		return err
	}
	if !v.IsInt64() || v.Int64() > math.MaxInt32 || v.Int64() < math.MinInt32 {
		return fmt.Errorf("timestamp %s does not fit in 4 bytes: %w", v, ErrWrongValueType)
	}
	w.WriteInt32(int32(v.Int64()))
	return nil
}

func (timestampField) ToUser(value any) (any, error) {
	v, err := asBigInt(value)
	if err != nil {
		return nil, err
	}
	return v.String(), nil
}

func (timestampField) FromUser(data any) (any, error) {
	result, err := parseUserBigInt(data)
	if err != nil {
		return nil, err
	}
	if !result.IsInt64() || result.Int64() > math.MaxInt32 || result.Int64() < math.MinInt32 {
		return nil, fmt.Errorf("timestamp %s does not fit in 4 bytes: %w", result, ErrUserInput)
	}
	return result, nil
}
