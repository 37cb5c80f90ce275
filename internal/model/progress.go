package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ProgressValue is a closed scalar variant: a number, a string, or a
// boolean. Nested objects and arrays are rejected on decode.
type ProgressValue struct {
	kind    progressKind
	number  float64
	str     string
	boolean bool
}

type progressKind int

const (
	kindNumber progressKind = iota
	kindString
	kindBool
)

// NumberValue wraps a numeric progress entry.
func NumberValue(n float64) ProgressValue {
	return ProgressValue{kind: kindNumber, number: n}
}

// StringValue wraps a string progress entry.
func StringValue(s string) ProgressValue {
	return ProgressValue{kind: kindString, str: s}
}

// BoolValue wraps a boolean progress entry.
func BoolValue(b bool) ProgressValue {
	return ProgressValue{kind: kindBool, boolean: b}
}

// Number returns the numeric value and whether the entry holds one.
func (v ProgressValue) Number() (float64, bool) {
	return v.number, v.kind == kindNumber
}

// String returns the string value and whether the entry holds one.
func (v ProgressValue) String() (string, bool) {
	return v.str, v.kind == kindString
}

// Bool returns the boolean value and whether the entry holds one.
func (v ProgressValue) Bool() (bool, bool) {
	return v.boolean, v.kind == kindBool
}

// MarshalJSON encodes the underlying scalar directly.
func (v ProgressValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindString:
		return json.Marshal(v.str)
	case kindBool:
		return json.Marshal(v.boolean)
	default:
		return json.Marshal(v.number)
	}
}

// UnmarshalJSON accepts only scalar JSON values.
func (v *ProgressValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch val := raw.(type) {
	case float64:
		*v = NumberValue(val)
	case string:
		*v = StringValue(val)
	case bool:
		*v = BoolValue(val)
	default:
		return fmt.Errorf("progress value must be a number, string or boolean, got %T", raw)
	}
	return nil
}

// ProgressMap stores per-request progress entries keyed by stage name.
// It is persisted as a JSON column.
type ProgressMap map[string]ProgressValue

// Value implements driver.Valuer for GORM.
func (m ProgressMap) Value() (driver.Value, error) {
	if m == nil {
		m = ProgressMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for GORM.
func (m *ProgressMap) Scan(src interface{}) error {
	if src == nil {
		*m = ProgressMap{}
		return nil
	}
	var data []byte
	switch s := src.(type) {
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return fmt.Errorf("unsupported progress column type %T", src)
	}
	if len(data) == 0 {
		*m = ProgressMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}
