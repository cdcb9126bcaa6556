package field

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/nanohq/nano-engine/pkg/codec"
)

// dictField carries mappings as an unsigned LEB128 pair count followed by
// that many key/value encodings. Entries keep wire order in memory so a
// decoded dict re-encodes to the original buffer.
type dictField struct {
	key   Field
	value Field
}

func (f dictField) Decode(r *codec.Reader) (any, error) {
	count, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	result := make([]DictEntry, 0, count)
	seen := map[string]bool{}
	for i := 0; i < count; i++ {
		key, err := f.key.Decode(r)
		if err != nil {
			return nil, err
		}
		value, err := f.value.Decode(r)
		if err != nil {
			return nil, err
		}
		encodedKey, err := f.encodeKey(key)
		if err != nil {
			return nil, err
		}
		if seen[encodedKey] {
			return nil, fmt.Errorf("duplicate dict key: %w", codec.ErrInvalidData)
		}
		seen[encodedKey] = true
		result = append(result, DictEntry{Key: key, Value: value})
	}
	return result, nil
}

func (f dictField) Encode(w *codec.Writer, value any) error {
	entries, ok := value.([]DictEntry)
	if !ok {
		return fmt.Errorf("expected dict entries, got %T: %w", value, ErrWrongValueType)
	}
	if err := w.WriteLength(len(entries)); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := f.key.Encode(w, entry.Key); err != nil {
			return err
		}
		if err := f.value.Encode(w, entry.Value); err != nil {
			return err
		}
	}
	return nil
}

func (f dictField) ToUser(value any) (any, error) {
	entries, ok := value.([]DictEntry)
	if !ok {
		return nil, fmt.Errorf("expected dict entries, got %T: %w", value, ErrWrongValueType)
	}
	result := make([]any, len(entries))
	for i, entry := range entries {
		key, err := f.key.ToUser(entry.Key)
		if err != nil {
			return nil, err
		}
		converted, err := f.value.ToUser(entry.Value)
		if err != nil {
			return nil, err
		}
		result[i] = []any{key, converted}
	}
	return result, nil
}

func (f dictField) FromUser(data any) (any, error) {
	switch input := data.(type) {
	case []any:
		result := make([]DictEntry, len(input))
		for i, raw := range input {
			pair, ok := raw.([]any)
			if !ok || len(pair) != 2 {
				return nil, fmt.Errorf("dict entry %d is not a key/value pair: %w", i, ErrUserInput)
			}
			entry, err := f.entryFromUser(pair[0], pair[1])
			if err != nil {
				return nil, err
			}
			result[i] = entry
		}
		return result, nil
	case map[string]any:
		// JSON objects lose order; sort keys so encoding is deterministic
		keys := make([]string, 0, len(input))
		for key := range input {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		result := make([]DictEntry, len(keys))
		for i, key := range keys {
			entry, err := f.entryFromUser(key, input[key])
			if err != nil {
				return nil, err
			}
			result[i] = entry
		}
		return result, nil
	}
	return nil, fmt.Errorf("cannot read %T as dict: %w", data, ErrUserInput)
}

func (f dictField) entryFromUser(rawKey, rawValue any) (DictEntry, error) {
	key, err := f.key.FromUser(rawKey)
	if err != nil {
		return DictEntry{}, err
	}
	value, err := f.value.FromUser(rawValue)
	if err != nil {
		return DictEntry{}, err
	}
	return DictEntry{Key: key, Value: value}, nil
}

func (f dictField) encodeKey(key any) (string, error) {
	w := codec.NewWriter()
	if err := f.key.Encode(w, key); err != nil {
		return "", err
	}
	return hex.EncodeToString(w.Result()), nil
}
