package halstead

import (
	"math"
	"strconv"
)

// Value is a metric that may be undefined. The zero Value is undefined.
type Value struct {
	v  float64
	ok bool
}

// Undefined is the explicit absence of a value.
var Undefined = Value{}

// Defined wraps v.
func Defined(v float64) Value {
	return Value{v: v, ok: true}
}

// ValueOf converts a nullable float into a Value.
func ValueOf(p *float64) Value {
	if p == nil {
		return Undefined
	}
	return Defined(*p)
}

// IsDefined reports whether the value is present.
func (v Value) IsDefined() bool { return v.ok }

// Float64 returns the value and whether it is defined.
func (v Value) Float64() (float64, bool) { return v.v, v.ok }

// Ptr returns a pointer to the value, or nil when undefined.
func (v Value) Ptr() *float64 {
	if !v.ok {
		return nil
	}
	f := v.v
	return &f
}

// String formats the value, or "undefined".
func (v Value) String() string {
	if !v.ok {
		return "undefined"
	}
	return strconv.FormatFloat(v.v, 'f', -1, 64)
}

// MarshalJSON encodes undefined as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v.v, 'f', -1, 64)), nil
}

// UnmarshalJSON decodes null as undefined.
func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Undefined
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*v = Defined(f)
	return nil
}

// MarshalYAML encodes undefined as null.
func (v Value) MarshalYAML() (interface{}, error) {
	if !v.ok {
		return nil, nil
	}
	return v.v, nil
}

// round2 rounds to two decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
