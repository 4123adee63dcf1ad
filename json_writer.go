package wealth

import (
	"encoding/json"
	"fmt"
	"strings"
)

// fieldWriter builds a JSON object whose fields keep the order they are
// written in, which makes ledger lines stable and diffable.
// The first marshaling error is kept and reported by Object.
type fieldWriter struct {
	fields []string
	err    error
}

// Field writes key with its JSON encoded value, whatever the value is.
func (w *fieldWriter) Field(key string, value any) {
	if w.err != nil {
		return
	}
	k, _ := json.Marshal(key)
	v, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot encode %q: %w", key, err)
		return
	}
	w.fields = append(w.fields, string(k)+":"+string(v))
}

// Text writes s, unless it is empty.
func (w *fieldWriter) Text(key, s string) {
	if s != "" {
		w.Field(key, s)
	}
}

// Number writes n only when it holds a finite value, so that "not provided"
// survives a round trip and stays distinct from 0.
func (w *fieldWriter) Number(key string, n Number) {
	if n.IsFinite() {
		w.Field(key, n)
	}
}

// Object returns the encoded object.
func (w *fieldWriter) Object() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return []byte("{" + strings.Join(w.fields, ",") + "}"), nil
}
