package record

import "strconv"

// GroupKey is a comparable variant over the scalar kinds that can act as
// grouping values in a report: booleans, numbers and strings. It is usable
// directly as a Go map key, which gives the defined equality the grouping
// step needs across heterogeneous log values.
type GroupKey struct {
	Kind Kind
	Bool bool
	Num  float64
	Str  string
}

// AsGroupKey converts a value into a grouping key. It reports false for
// every non-scalar kind (absent, null, array, object): records carrying
// those as group values are excluded from aggregation.
func (v Value) AsGroupKey() (GroupKey, bool) {
	switch v.kind {
	case KindBool:
		return GroupKey{Kind: KindBool, Bool: v.b}, true
	case KindNumber:
		return GroupKey{Kind: KindNumber, Num: v.num}, true
	case KindString:
		return GroupKey{Kind: KindString, Str: v.str}, true
	default:
		return GroupKey{}, false
	}
}

// Display renders the key the way it appears in the report table.
func (k GroupKey) Display() string {
	switch k.Kind {
	case KindBool:
		return strconv.FormatBool(k.Bool)
	case KindNumber:
		return strconv.FormatFloat(k.Num, 'f', -1, 64)
	default:
		return k.Str
	}
}
