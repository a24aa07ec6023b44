package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("model: item not found")
	ErrInvalidInput = errors.New("model: invalid input")
)

// Item is one entry of the list. ID is assigned once and never reused.
type Item struct {
	ID        string
	Name      string
	Checked   bool
	IsEditing bool
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("%w: item id is required", ErrInvalidInput)
	}
	return nil
}

type SeedItem struct {
	Name    string `yaml:"name"`
	Checked bool   `yaml:"checked"`
}

func DefaultSeed() []SeedItem {
	return []SeedItem{
		{Name: "apples"},
		{Name: "oranges"},
		{Name: "milk", Checked: true},
		{Name: "bread"},
	}
}

// CloneItems returns a copy so callers can't alias store-owned slices.
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// EditingItem returns the first item in edit mode.
func EditingItem(items []Item) (Item, bool) {
	for _, item := range items {
		if item.IsEditing {
			return item, true
		}
	}
	return Item{}, false
}
