package field

import (
	"fmt"

	"github.com/nanohq/nano-engine/pkg/codec"
)

// tupleField concatenates its elements' encodings in order, with no length
// prefix: the arity is fixed by the type.
type tupleField struct {
	elements []Field
}

func (f tupleField) Decode(r *codec.Reader) (any, error) {
	result := make([]any, len(f.elements))
	for i, element := range f.elements {
		value, err := element.Decode(r)
		if err != nil {
			return nil, err
		}
		result[i] = value
	}
	return result, nil
}

func (f tupleField) Encode(w *codec.Writer, value any) error {
	values, ok := value.([]any)
	if !ok {
		return fmt.Errorf("expected tuple elements, got %T: %w", value, ErrWrongValueType)
	}
	if len(values) != len(f.elements) {
		return fmt.Errorf("tuple needs %d elements, got %d: %w", len(f.elements), len(values), ErrArityMismatch)
	}
	for i, element := range f.elements {
		if err := element.Encode(w, values[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f tupleField) ToUser(value any) (any, error) {
	values, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected tuple elements, got %T: %w", value, ErrWrongValueType)
	}
	if len(values) != len(f.elements) {
		return nil, fmt.Errorf("tuple needs %d elements, got %d: %w", len(f.elements), len(values), ErrArityMismatch)
	}
	result := make([]any, len(values))
	for i, element := range f.elements {
		converted, err := element.ToUser(values[i])
		if err != nil {
			return nil, err
		}
		result[i] = converted
	}
	return result, nil
}

func (f tupleField) FromUser(data any) (any, error) {
	values, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("cannot read %T as tuple: %w", data, ErrUserInput)
	}
	if len(values) != len(f.elements) {
		return nil, fmt.Errorf("tuple needs %d elements, got %d: %w", len(f.elements), len(values), ErrArityMismatch)
	}
	result := make([]any, len(values))
	for i, element := range f.elements {
		converted, err := element.FromUser(values[i])
		if err != nil {
			return nil, err
		}
		result[i] = converted
	}
	return result, nil
}
