package store

import "time"

// Fields is the field set of one document.
type Fields map[string]any

// Clone returns a copy of f with timestamps normalised to UTC.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		if t, ok := v.(time.Time); ok {
			v = t.UTC()
		}
		out[k] = v
	}
	return out
}

// String returns the string stored under key, or "" when absent or not a string.
func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// StringOr is String with a fallback for absent or empty values.
func (f Fields) StringOr(key, fallback string) string {
	if s := f.String(key); s != "" {
		return s
	}
	return fallback
}

// Time returns the timestamp stored under key. RFC 3339 strings are accepted
// for documents written by other tools; anything else yields the zero time.
func (f Fields) Time(key string) time.Time {
	switch v := f[key].(type) {
	case time.Time:
		return v.UTC()
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// Bool returns the boolean stored under key, false when absent.
func (f Fields) Bool(key string) bool {
	b, _ := f[key].(bool)
	return b
}
