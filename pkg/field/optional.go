package field

import (
	"github.com/nanohq/nano-engine/pkg/codec"
)

// optionalField prefixes the inner encoding with a one-byte presence tag:
// 0x00 for absent (nothing follows), anything else for present.
type optionalField struct {
	inner Field
}

func (f optionalField) Decode(r *codec.Reader) (any, error) {
	present, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if present == 0x00 {
		return nil, nil
	}
	return f.inner.Decode(r)
}

func (f optionalField) Encode(w *codec.Writer, value any) error {
	if value == nil {
		w.WriteTag(0x00)
		return nil
	}
	w.WriteTag(0x01)
	return f.inner.Encode(w, value)
}

func (f optionalField) ToUser(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	return f.inner.ToUser(value)
}

func (f optionalField) FromUser(data any) (any, error) {
	if data == nil {
		return nil, nil
	}
	return f.inner.FromUser(data)
}
