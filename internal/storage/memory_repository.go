package storage

import (
	"context"
	"fmt"
)

// MemoryRepository is a slice-backed Repository. Lookups are linear scans,
// which is fine for lists of a few dozen entries.
type MemoryRepository struct {
	items []Item
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) AppendItem(_ context.Context, in Item) error {
	if r.indexOf(in.ID) >= 0 {
		return fmt.Errorf("storage: duplicate item id %q", in.ID)
	}
	r.items = append(r.items, in)
	return nil
}

func (r *MemoryRepository) GetItem(_ context.Context, id string) (Item, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Item{}, ErrNotFound
	}
	return r.items[idx], nil
}

func (r *MemoryRepository) UpdateItem(_ context.Context, in Item) error {
	idx := r.indexOf(in.ID)
	if idx < 0 {
		return ErrNotFound
	}
	r.items[idx] = in
	return nil
}

func (r *MemoryRepository) DeleteItem(_ context.Context, id string) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	r.items = append(r.items[:idx], r.items[idx+1:]...)
	return nil
}

func (r *MemoryRepository) ListItems(_ context.Context) ([]Item, error) {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryRepository) ClearEditing(_ context.Context, exceptID string) error {
	for i := range r.items {
		if r.items[i].ID != exceptID {
			r.items[i].Editing = false
		}
	}
	return nil
}

func (r *MemoryRepository) indexOf(id string) int {
	for i, item := range r.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
