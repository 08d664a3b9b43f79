package record

import "strings"

// Lookup resolves a slash-delimited path against the record's fields.
// Only object values are descended into; a missing key or a non-object
// intermediate at any hop resolves to Absent, never an error. Looking up
// an intermediate path returns the nested object value itself.
func Lookup(fields map[string]Value, path string) Value {
	cur := Object(fields)
	for _, part := range strings.Split(path, PathSeparator) {
		if !cur.IsObject() {
			return Absent
		}
		next, ok := cur.ObjectValue()[part]
		if !ok {
			return Absent
		}
		cur = next
	}
	return cur
}
