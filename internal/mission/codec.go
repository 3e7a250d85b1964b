// File: internal/mission/codec.go
// Brief: Alias-aware JSON decode and deterministic encode helpers.

package mission

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// isNull reports whether raw is the JSON null literal. Null-valued
// fields are treated as absent during normalization.
func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// rawObject is a decoded JSON object with alias-aware field access.
// Every alias consulted is claimed whether or not it held the winning
// value, so extra() returns only fields no canonical slot recognizes.
type rawObject struct {
	fields  map[string]json.RawMessage
	claimed map[string]bool
	err     error
}

func newRawObject(data []byte) (*rawObject, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return &rawObject{fields: fields, claimed: make(map[string]bool)}, nil
}

// first decodes the earliest defined alias into dst. Aliases are
// consulted in the given order; the canonical spelling comes first.
func (r *rawObject) first(dst any, aliases ...string) {
	var chosen json.RawMessage
	var name string
	for _, alias := range aliases {
		r.claimed[alias] = true
		if chosen != nil {
			continue
		}
		if v, ok := r.fields[alias]; ok && !isNull(v) {
			chosen, name = v, alias
		}
	}
	if chosen == nil || r.err != nil {
		return
	}
	if err := json.Unmarshal(chosen, dst); err != nil {
		r.err = fmt.Errorf("field %q: %w", name, err)
	}
}

// firstStringList is first for list-of-string fields that historically
// also appear as a bare string.
func (r *rawObject) firstStringList(dst *[]string, aliases ...string) {
	var chosen json.RawMessage
	for _, alias := range aliases {
		r.claimed[alias] = true
		if chosen != nil {
			continue
		}
		if v, ok := r.fields[alias]; ok && !isNull(v) {
			chosen = v
		}
	}
	if chosen == nil || r.err != nil {
		return
	}
	if err := json.Unmarshal(chosen, dst); err == nil {
		return
	}
	var single string
	if err := json.Unmarshal(chosen, &single); err != nil {
		r.err = fmt.Errorf("field %q: %w", aliases[0], err)
		return
	}
	*dst = []string{single}
}

// extra returns the unclaimed fields verbatim, or nil when every field
// was recognized.
func (r *rawObject) extra() map[string]json.RawMessage {
	var out map[string]json.RawMessage
	for k, v := range r.fields {
		if r.claimed[k] {
			continue
		}
		if out == nil {
			out = make(map[string]json.RawMessage)
		}
		out[k] = v
	}
	return out
}

// objectWriter assembles the canonical encoding of an entity. Unknown
// fields seed the object so canonical spellings win on collision, and
// the final map marshal gives a deterministic key order.
type objectWriter struct {
	fields map[string]json.RawMessage
	err    error
}

func newObjectWriter(extra map[string]json.RawMessage) *objectWriter {
	w := &objectWriter{fields: make(map[string]json.RawMessage, len(extra)+8)}
	for k, v := range extra {
		w.fields[k] = v
	}
	return w
}

func (w *objectWriter) put(name string, v any) {
	if w.err != nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("field %q: %w", name, err)
		return
	}
	w.fields[name] = raw
}

func (w *objectWriter) setString(name, v string) {
	if v != "" {
		w.put(name, v)
	}
}

func (w *objectWriter) setFloat(name string, v *float64) {
	if v != nil {
		w.put(name, *v)
	}
}

func (w *objectWriter) setStrings(name string, v []string) {
	if v != nil {
		w.put(name, v)
	}
}

func (w *objectWriter) setFloats(name string, v []float64) {
	if v != nil {
		w.put(name, v)
	}
}

func (w *objectWriter) setLocation(name string, v *Location) {
	if v != nil {
		w.put(name, v)
	}
}

func (w *objectWriter) marshal() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return json.Marshal(w.fields)
}
