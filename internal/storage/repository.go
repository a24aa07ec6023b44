package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository keeps items in insertion order. ListItems returns them in that
// order; DeleteItem keeps the relative order of the remainder.
type Repository interface {
	AppendItem(ctx context.Context, in Item) error
	GetItem(ctx context.Context, id string) (Item, error)
	UpdateItem(ctx context.Context, in Item) error
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context) ([]Item, error)
	// ClearEditing resets the edit flag on every item except exceptID.
	ClearEditing(ctx context.Context, exceptID string) error
}
