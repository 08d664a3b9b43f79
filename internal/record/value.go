// Package record contains the shared log record types used across multiple packages to avoid import cycles.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a tagged representation of one JSON value inside a log record.
// The zero Value is the absent variant, which is what path lookups return
// when a key is missing at any hop.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  map[string]Value
}

// Absent is the missing-value variant.
var Absent = Value{kind: KindAbsent}

// Null returns the JSON null variant.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64. JSON integers are represented as float64 too.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps a slice of values. Arrays are opaque to flattening and lookup.
func Array(vals []Value) Value { return Value{kind: KindArray, arr: vals} }

// Object wraps a nested mapping.
func Object(fields map[string]Value) Value { return Value{kind: KindObject, obj: fields} }

// Kind reports which variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the value is the missing-value variant.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsObject reports whether the value is a nested mapping.
func (v Value) IsObject() bool { return v.kind == KindObject }

// BoolValue returns the boolean payload. Only meaningful for KindBool.
func (v Value) BoolValue() bool { return v.b }

// NumberValue returns the numeric payload and whether the value is a number.
func (v Value) NumberValue() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// StringValue returns the string payload and whether the value is a string.
func (v Value) StringValue() (string, bool) {
	return v.str, v.kind == KindString
}

// ArrayValue returns the array payload. Only meaningful for KindArray.
func (v Value) ArrayValue() []Value { return v.arr }

// ObjectValue returns the nested mapping. Only meaningful for KindObject.
func (v Value) ObjectValue() map[string]Value { return v.obj }

// fromJSON converts a decoded JSON value (with numbers as json.Number)
// into the tagged representation.
func fromJSON(raw interface{}) Value {
	switch t := raw.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			// Out-of-range literals degrade to their textual form.
			return String(t.String())
		}
		return Number(f)
	case string:
		return String(t)
	case []interface{}:
		vals := make([]Value, len(t))
		for i, item := range t {
			vals[i] = fromJSON(item)
		}
		return Array(vals)
	case map[string]interface{}:
		fields := make(map[string]Value, len(t))
		for k, item := range t {
			fields[k] = fromJSON(item)
		}
		return Object(fields)
	default:
		return Null()
	}
}

// ParseLine parses one input line as a JSON object and returns its fields.
// A line that is valid JSON but not an object at the top level is rejected:
// the report engine has nothing addressable to group on in a bare scalar
// or array.
func ParseLine(line []byte) (map[string]Value, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected trailing data after JSON value")
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("top-level value is not a JSON object")
	}

	fields := make(map[string]Value, len(obj))
	for k, item := range obj {
		fields[k] = fromJSON(item)
	}
	return fields, nil
}
