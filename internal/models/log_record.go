package models

import "fmt"

const (
	FieldTimestamp    = "@timestamp"
	FieldURL          = "url"
	FieldResponseTime = "response_time"
)

// LogRecord is one decoded NDJSON line. Field presence is not checked when the
// line is loaded; the typed accessors report missing or mistyped fields.
type LogRecord map[string]any

// FieldError is returned by the LogRecord accessors when a field is absent or
// holds a value of the wrong JSON type.
type FieldError struct {
	Field   string
	Missing bool
	Value   any
}

func (e *FieldError) Error() string {
	if e.Missing {
		return fmt.Sprintf("missing field %q", e.Field)
	}
	return fmt.Sprintf("field %q has unexpected type %T", e.Field, e.Value)
}

func (r LogRecord) URL() (string, error) {
	return r.stringField(FieldURL)
}

func (r LogRecord) Timestamp() (string, error) {
	return r.stringField(FieldTimestamp)
}

// ResponseTime returns response_time in milliseconds.
func (r LogRecord) ResponseTime() (float64, error) {
	v, ok := r[FieldResponseTime]
	if !ok {
		return 0, &FieldError{Field: FieldResponseTime, Missing: true}
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, &FieldError{Field: FieldResponseTime, Value: v}
	}
}

func (r LogRecord) stringField(field string) (string, error) {
	v, ok := r[field]
	if !ok {
		return "", &FieldError{Field: field, Missing: true}
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Field: field, Value: v}
	}
	return s, nil
}
