package models

import (
	"fmt"
	"strconv"
	"time"
)

// ValueType is the SQL type the engineering database reports for a
// mnemonic's values.
type ValueType string

const (
	ValueTypeReal    ValueType = "real"
	ValueTypeVarchar ValueType = "varchar"
)

// ParseValueType maps the sqldatatype column of an EDB response to a
// ValueType, rejecting anything it does not know.
func ParseValueType(s string) (ValueType, error) {
	switch ValueType(s) {
	case ValueTypeReal:
		return ValueTypeReal, nil
	case ValueTypeVarchar:
		return ValueTypeVarchar, nil
	default:
		return "", fmt.Errorf("unknown value type: %q (supported: real, varchar)", s)
	}
}

// Sample is one telemetry observation: a UTC timestamp, the same instant
// as a modified Julian date, and the value with its reported type.
type Sample struct {
	Time  time.Time `json:"time" yaml:"time"`
	MJD   float64   `json:"mjd" yaml:"mjd"`
	Value string    `json:"value" yaml:"value"`
	Type  ValueType `json:"type" yaml:"type"`
}

// Float64 returns the sample value as a float64. Only valid for real-typed
// samples.
func (s Sample) Float64() (float64, error) {
	if s.Type != ValueTypeReal {
		return 0, fmt.Errorf("sample value %q has type %s, not real", s.Value, s.Type)
	}
	v, err := strconv.ParseFloat(s.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse sample value %q: %w", s.Value, err)
	}
	return v, nil
}
