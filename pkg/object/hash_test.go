package object

import (
	"strings"
	"testing"
)

// Test 1: identical bytes always produce identical fingerprints.
func TestHashBytes_Deterministic(t *testing.T) {
	a := HashBytes([]byte("hello"))
	b := HashBytes([]byte("hello"))
	if a != b {
		t.Errorf("HashBytes not deterministic: %s vs %s", a, b)
	}
}

// Test 2: fingerprints are 40 lowercase hex characters.
func TestHashBytes_Format(t *testing.T) {
	h := HashBytes([]byte("hello"))
	if len(h) != HashLength {
		t.Fatalf("len = %d, want %d", len(h), HashLength)
	}
	if strings.ToLower(string(h)) != string(h) {
		t.Errorf("hash %s contains uppercase characters", h)
	}
	for _, c := range string(h) {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Errorf("hash %s contains non-hex character %q", h, c)
		}
	}
}

// Test 3: different bytes produce different fingerprints.
func TestHashBytes_Distinct(t *testing.T) {
	if HashBytes([]byte("one")) == HashBytes([]byte("two")) {
		t.Error("distinct contents hashed to the same fingerprint")
	}
}

// Test 4: entry encoding splits back into its halves.
func TestEntry_Roundtrip(t *testing.T) {
	blob := HashBytes([]byte("contents"))
	e := NewEntry(blob, "a.txt")
	if e.Blob() != blob {
		t.Errorf("Blob() = %s, want %s", e.Blob(), blob)
	}
	if e.Name() != "a.txt" {
		t.Errorf("Name() = %q, want %q", e.Name(), "a.txt")
	}
}
