package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// UnspecifiedDuration is what an entry added without a usable duration reports.
const UnspecifiedDuration = "No duration specified"

// Duration is either a present number of minutes or unspecified.
// The zero value is unspecified.
type Duration struct {
	value float64
	set   bool
}

// decimalNumber matches plain decimal numerics; hex floats, NaN and Inf do not.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// DurationOf returns a present duration. NaN and ±Inf are not durations and
// yield an unspecified one.
func DurationOf(v float64) Duration {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Duration{}
	}
	return Duration{value: v, set: true}
}

// ParseDuration reads a decimal duration. Empty, non-numeric or out of range
// input is unspecified.
func ParseDuration(s string) Duration {
	s = strings.TrimSpace(s)
	if !decimalNumber.MatchString(s) {
		return Duration{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Duration{}
	}
	return DurationOf(v)
}

// Value reports the number and whether it is present.
func (d Duration) Value() (float64, bool) {
	return d.value, d.set
}

func (d Duration) String() string {
	if !d.set {
		return UnspecifiedDuration
	}
	return strconv.FormatFloat(d.value, 'f', -1, 64)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	if !d.set {
		return json.Marshal(UnspecifiedDuration)
	}
	return json.Marshal(d.value)
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == '"' || bytes.Equal(data, []byte("null")) {
		*d = Duration{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	*d = DurationOf(v)
	return nil
}

// MarshalBSONValue stores present values as doubles and the sentinel string otherwise,
// which is the shape the original collection holds.
func (d Duration) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !d.set {
		return bson.MarshalValue(UnspecifiedDuration)
	}
	return bson.MarshalValue(d.value)
}

func (d *Duration) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		*d = DurationOf(raw.Double())
	case bsontype.Int32:
		*d = DurationOf(float64(raw.Int32()))
	case bsontype.Int64:
		*d = DurationOf(float64(raw.Int64()))
	default:
		*d = Duration{}
	}
	return nil
}
