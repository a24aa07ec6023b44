package ident

import "testing"

func TestSequenceGeneratorIsUnique(t *testing.T) {
	g := NewSequence("row")
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.Generate()
		if seen[id] {
			t.Fatalf("duplicate id %q after %d calls", id, i)
		}
		seen[id] = true
	}
	if !seen["row-1"] || !seen["row-1000"] {
		t.Fatal("expected sequential ids with prefix row")
	}
}

func TestUUIDGeneratorIsUnique(t *testing.T) {
	var g UUIDGenerator
	a, b := g.Generate(), g.Generate()
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}

func TestNewScheme(t *testing.T) {
	for _, scheme := range []string{"", "uuid", "UUID", "seq"} {
		if _, err := New(scheme); err != nil {
			t.Fatalf("New(%q) failed: %v", scheme, err)
		}
	}
	if _, err := New("cuid"); err == nil {
		t.Fatal("expected error for unknown scheme")
	}
}
