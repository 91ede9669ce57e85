package store

import (
	"database/sql"
	"encoding/json"
)

// nullableString converts a sql.NullString to the *string shape raw records
// use for optional columns.
func nullableString(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}

// nullableToValue converts a *string to a value suitable for SQLite
// storage. Returns nil (SQL NULL) when the pointer is nil.
func nullableToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullableFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

func nullableFloatToValue(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// nullableBool converts a sql.NullInt64 flag column to the *bool shape raw
// records use, preserving the absent/false distinction.
func nullableBool(v sql.NullInt64) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Int64 != 0
	return &b
}

func nullableBoolToValue(b *bool) interface{} {
	if b == nil {
		return nil
	}
	return boolToInt(*b)
}

// encodeJSON marshals v for a TEXT column; fallback is used when marshaling
// fails or v is empty.
func encodeJSON(v any, fallback string) string {
	data, err := json.Marshal(v)
	if err != nil || v == nil {
		return fallback
	}
	return string(data)
}

func decodeStrings(data string) []string {
	if data == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func decodeFields(data string) map[string]any {
	if data == "" {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func decodeStringMap(data string) map[string]string {
	if data == "" {
		return nil
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
