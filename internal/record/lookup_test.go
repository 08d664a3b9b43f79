package record

import "testing"

func TestLookupNestedValue(t *testing.T) {
	fields, err := ParseLine([]byte(`{"a": {"b": {"c": 123}}}`))
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}

	if n, ok := Lookup(fields, "a/b/c").NumberValue(); !ok || n != 123 {
		t.Errorf("Lookup(a/b/c) = %v (ok=%v), expected 123", n, ok)
	}

	if v := Lookup(fields, "a/b/x"); !v.IsAbsent() {
		t.Errorf("Lookup(a/b/x) = %v, expected absent", v.Kind())
	}

	// Looking up an intermediate path returns the nested object itself.
	if v := Lookup(fields, "a"); !v.IsObject() {
		t.Errorf("Lookup(a) = %v, expected object", v.Kind())
	}
}

func TestLookupThroughNonObjectHop(t *testing.T) {
	fields, err := ParseLine([]byte(`{"a": 1, "arr": [{"b": 2}]}`))
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}

	// Descending through a scalar yields absent, not an error.
	if v := Lookup(fields, "a/b"); !v.IsAbsent() {
		t.Errorf("Lookup(a/b) = %v, expected absent", v.Kind())
	}
	// Arrays are never descended into.
	if v := Lookup(fields, "arr/b"); !v.IsAbsent() {
		t.Errorf("Lookup(arr/b) = %v, expected absent", v.Kind())
	}
}

func TestLookupMissingTopLevelKey(t *testing.T) {
	fields := map[string]Value{"url": String("/x")}
	if v := Lookup(fields, "missing"); !v.IsAbsent() {
		t.Errorf("Lookup(missing) = %v, expected absent", v.Kind())
	}
}
