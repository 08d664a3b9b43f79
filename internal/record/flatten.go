package record

// PathSeparator joins nested map keys into flattened paths.
const PathSeparator = "/"

// FlattenKeys returns every addressable path through the record's nested
// object structure, including a path for each intermediate object itself.
// Arrays are opaque: their elements are never traversed.
//
// Flattening {"a": {"b": 1, "c": {"d": 2}}, "e": 3} yields
// {a, a/b, a/c, a/c/d, e}.
func FlattenKeys(fields map[string]Value) []string {
	var paths []string
	flattenInto(fields, "", &paths)
	return paths
}

func flattenInto(fields map[string]Value, prefix string, paths *[]string) {
	for key, val := range fields {
		path := key
		if prefix != "" {
			path = prefix + PathSeparator + key
		}
		*paths = append(*paths, path)
		if val.IsObject() {
			flattenInto(val.ObjectValue(), path, paths)
		}
	}
}
