package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap is a custom type for schema-less JSON columns. It backs the
// free-form metadata bag on Resource and Recommendation: the column never
// gets a closed struct because the shape varies per service/analyzer.
type JSONMap map[string]interface{}

// Scan implements sql.Scanner. Accepts both []byte and string since
// drivers disagree on which they hand back for a text/json column (the
// MySQL driver this column is written for returns []byte; sqlite, used
// as a test double for this package's repository tests, returns string).
func (j *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, err := scanBytes(value)
	if err != nil {
		return err
	}
	result := make(map[string]interface{})
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = JSONMap(result)
	return nil
}

// Value implements driver.Valuer.
func (j JSONMap) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// StringMap is a custom type for JSON columns holding string->string data,
// used for the Resource tag bag.
type StringMap map[string]string

// Scan implements sql.Scanner. See JSONMap.Scan for why both []byte and
// string are accepted.
func (s *StringMap) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	bytes, err := scanBytes(value)
	if err != nil {
		return err
	}
	result := make(map[string]string)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*s = StringMap(result)
	return nil
}

// scanBytes normalizes a driver.Value into the []byte json.Unmarshal
// needs, regardless of whether the driver returned raw bytes or a string.
func scanBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("failed to unmarshal json column value: %v", value)
	}
}

// Value implements driver.Valuer.
func (s StringMap) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}
