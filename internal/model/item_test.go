package model

import (
	"errors"
	"testing"
)

func TestItemValidateRequiresID(t *testing.T) {
	item := Item{Name: "apples"}
	err := item.Validate()
	if err == nil || !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}

	item.ID = "item-1"
	if err := item.Validate(); err != nil {
		t.Fatalf("expected valid item, got error: %v", err)
	}
}

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()
	if len(seed) != 4 {
		t.Fatalf("expected 4 seed items, got %d", len(seed))
	}
	want := []string{"apples", "oranges", "milk", "bread"}
	for i, name := range want {
		if seed[i].Name != name {
			t.Fatalf("seed[%d] = %q, want %q", i, seed[i].Name, name)
		}
	}
	if !seed[2].Checked || seed[0].Checked || seed[1].Checked || seed[3].Checked {
		t.Fatalf("only milk should start checked: %+v", seed)
	}
}

func TestCloneItemsDoesNotAlias(t *testing.T) {
	items := []Item{{ID: "a", Name: "apples"}}
	clone := CloneItems(items)
	clone[0].Name = "pears"
	if items[0].Name != "apples" {
		t.Fatalf("clone aliased the source slice: %+v", items)
	}
}

func TestEditingItem(t *testing.T) {
	if _, ok := EditingItem(nil); ok {
		t.Fatal("expected no editing item in empty slice")
	}
	items := []Item{{ID: "a"}, {ID: "b", IsEditing: true}}
	got, ok := EditingItem(items)
	if !ok || got.ID != "b" {
		t.Fatalf("unexpected editing item: %+v ok=%v", got, ok)
	}
}
