package field

import (
	"encoding/hex"
	"fmt"

	"github.com/nanohq/nano-engine/pkg/codec"
	"github.com/nanohq/nano-engine/pkg/collection"
)

// collectionField carries homogeneous sequences as an unsigned LEB128
// count followed by that many back-to-back element encodings. list, set,
// deque and frozenset all share this layout; set and frozenset only add a
// uniqueness rule on user input.
type collectionField struct {
	element Field
	unique  bool
}

func (f collectionField) Decode(r *codec.Reader) (any, error) {
	count, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	result := make([]any, 0, count)
	for i := 0; i < count; i++ {
		value, err := f.element.Decode(r)
		if err != nil {
			return nil, err
		}
		result = append(result, value)
	}
	return result, nil
}

func (f collectionField) Encode(w *codec.Writer, value any) error {
	values, ok := value.([]any)
	if !ok {
		return fmt.Errorf("expected collection elements, got %T: %w", value, ErrWrongValueType)
	}
	if err := w.WriteLength(len(values)); err != nil {
		return err
	}
	for _, v := range values {
		if err := f.element.Encode(w, v); err != nil {
			return err
		}
	}
	return nil
}

func (f collectionField) ToUser(value any) (any, error) {
	values, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected collection elements, got %T: %w", value, ErrWrongValueType)
	}
	result := make([]any, len(values))
	for i, v := range values {
		converted, err := f.element.ToUser(v)
		if err != nil {
			return nil, err
		}
		result[i] = converted
	}
	return result, nil
}

func (f collectionField) FromUser(data any) (any, error) {
	values, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("cannot read %T as collection: %w", data, ErrUserInput)
	}
	result := make([]any, len(values))
	for i, v := range values {
		converted, err := f.element.FromUser(v)
		if err != nil {
			return nil, err
		}
		result[i] = converted
	}
	if f.unique {
		if err := f.checkUnique(result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// checkUnique compares elements by their wire encoding; the in-memory
// forms (big ints, slices) are not directly comparable.
func (f collectionField) checkUnique(values []any) error {
	encoded := make([]string, len(values))
	for i, v := range values {
		w := codec.NewWriter()
		if err := f.element.Encode(w, v); err != nil {
			return err
		}
		encoded[i] = hex.EncodeToString(w.Result())
	}
	if !collection.IsUnique(encoded) {
		return fmt.Errorf("set elements are not unique: %w", ErrUserInput)
	}
	return nil
}
