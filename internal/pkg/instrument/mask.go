package instrument

import (
	"encoding/json"
	"strings"
)

// MaskKeys is a set of lower-cased field names whose values must never be logged.
type MaskKeys map[string]struct{}

// NewMaskKeys normalizes fields into a MaskKeys set, dropping blanks.
func NewMaskKeys(fields []string) MaskKeys {
	keys := make(MaskKeys, len(fields))
	for _, field := range fields {
		field = strings.ToLower(strings.TrimSpace(field))
		if field != "" {
			keys[field] = struct{}{}
		}
	}
	return keys
}

// Contains reports whether key is masked, ignoring case.
func (m MaskKeys) Contains(key string) bool {
	_, ok := m[strings.ToLower(key)]
	return ok
}

// Mask walks decoded JSON data and replaces masked values with "***".
func (m MaskKeys) Mask(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, v2 := range val {
			if m.Contains(k) {
				out[k] = "***"
				continue
			}
			out[k] = m.Mask(v2)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, v2 := range val {
			out[i] = m.Mask(v2)
		}
		return out
	default:
		return v
	}
}

// MaskJSON decodes payload, masks it and re-encodes it. ok is false when
// payload is not a JSON object or array.
func (m MaskKeys) MaskJSON(payload []byte) (masked string, ok bool) {
	if len(payload) == 0 || (payload[0] != '{' && payload[0] != '[') {
		return "", false
	}

	var body any
	if err := json.Unmarshal(payload, &body); err != nil {
		return "", false
	}

	out, err := json.Marshal(m.Mask(body))
	if err != nil {
		return "", false
	}
	return string(out), true
}
