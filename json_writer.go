package budget

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter writes the keys of a persisted record in a fixed order, so
// that the ledger file diffs cleanly between saves. The zero value is an empty
// object.
type jsonObjectWriter struct {
	fields bytes.Buffer
	err    error
}

// Append writes one "key": value member. After the first failure it records
// the error and ignores further members.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	v, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("field %q: %w", key, err)
		return w
	}
	k, _ := json.Marshal(key)
	if w.fields.Len() > 0 {
		w.fields.WriteByte(',')
	}
	w.fields.Write(k)
	w.fields.WriteByte(':')
	w.fields.Write(v)
	return w
}

// MarshalJSON returns the members written so far enclosed in braces, or the
// first Append error.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, w.fields.Len()+2)
	out = append(out, '{')
	out = append(out, w.fields.Bytes()...)
	return append(out, '}'), nil
}
