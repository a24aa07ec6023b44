// Package store owns the canonical item sequence and the two view filters.
// Every mutation goes through a Store method; failed calls leave the store
// unchanged.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandeepkv93/shoplist/internal/ident"
	"github.com/sandeepkv93/shoplist/internal/model"
	"github.com/sandeepkv93/shoplist/internal/storage"
)

type Store struct {
	repo          storage.Repository
	ids           ident.Generator
	hideCompleted bool
	searchTerm    *string
}

func New(repo storage.Repository, ids ident.Generator) (*Store, error) {
	if repo == nil {
		return nil, errors.New("store: nil repository")
	}
	if ids == nil {
		return nil, errors.New("store: nil id generator")
	}
	return &Store{repo: repo, ids: ids}, nil
}

// Seed appends the given entries with fresh ids.
func (s *Store) Seed(ctx context.Context, seed []model.SeedItem) error {
	for _, entry := range seed {
		item := storage.Item{ID: s.ids.Generate(), Name: entry.Name, Checked: entry.Checked}
		if err := toModel(item).Validate(); err != nil {
			return fmt.Errorf("seed %q: %w", entry.Name, err)
		}
		if err := s.repo.AppendItem(ctx, item); err != nil {
			return fmt.Errorf("seed %q: %w", entry.Name, err)
		}
	}
	return nil
}

func (s *Store) AddItem(ctx context.Context, name string) (model.Item, error) {
	item := storage.Item{ID: s.ids.Generate(), Name: name}
	if err := toModel(item).Validate(); err != nil {
		return model.Item{}, fmt.Errorf("add item: %w", err)
	}
	if err := s.repo.AppendItem(ctx, item); err != nil {
		return model.Item{}, fmt.Errorf("add item: %w", err)
	}
	return toModel(item), nil
}

func (s *Store) Find(ctx context.Context, id string) (model.Item, error) {
	item, err := s.get(ctx, id)
	if err != nil {
		return model.Item{}, err
	}
	return toModel(item), nil
}

func (s *Store) ToggleChecked(ctx context.Context, id string) (model.Item, error) {
	item, err := s.get(ctx, id)
	if err != nil {
		return model.Item{}, err
	}
	item.Checked = !item.Checked
	if err := s.update(ctx, item); err != nil {
		return model.Item{}, err
	}
	return toModel(item), nil
}

// DeleteItem removes the item with id. A missing id is reported and nothing
// is removed.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return translate(err, id)
	}
	return nil
}

func (s *Store) SetHideCompleted(flag bool) { s.hideCompleted = flag }

func (s *Store) HideCompleted() bool { return s.hideCompleted }

// SetSearchTerm stores term as given; nil and "" stay distinguishable.
func (s *Store) SetSearchTerm(term *string) {
	if term == nil {
		s.searchTerm = nil
		return
	}
	v := *term
	s.searchTerm = &v
}

func (s *Store) SearchTerm() *string {
	if s.searchTerm == nil {
		return nil
	}
	v := *s.searchTerm
	return &v
}

// SetEditing sets the edit flag on id. Turning it on clears it everywhere
// else, so at most one item is in edit mode.
func (s *Store) SetEditing(ctx context.Context, id string, flag bool) error {
	item, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if flag {
		if err := s.repo.ClearEditing(ctx, id); err != nil {
			return fmt.Errorf("clear editing: %w", err)
		}
	}
	item.Editing = flag
	return s.update(ctx, item)
}

func (s *Store) RenameItem(ctx context.Context, id, name string) error {
	item, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	item.Name = name
	return s.update(ctx, item)
}

// CommitRename applies name and leaves edit mode in a single update.
func (s *Store) CommitRename(ctx context.Context, id, name string) error {
	item, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	item.Name = name
	item.Editing = false
	return s.update(ctx, item)
}

func (s *Store) Items(ctx context.Context) ([]model.Item, error) {
	rows, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	out := make([]model.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, toModel(row))
	}
	return out, nil
}

// Visible is the projection of the current items through both filters.
func (s *Store) Visible(ctx context.Context) ([]model.Item, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	return Project(items, s.hideCompleted, s.searchTerm), nil
}

func (s *Store) get(ctx context.Context, id string) (storage.Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return storage.Item{}, translate(err, id)
	}
	return item, nil
}

func (s *Store) update(ctx context.Context, item storage.Item) error {
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return translate(err, item.ID)
	}
	return nil
}

func translate(err error, id string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %q", model.ErrNotFound, id)
	}
	return err
}

func toModel(in storage.Item) model.Item {
	return model.Item{ID: in.ID, Name: in.Name, Checked: in.Checked, IsEditing: in.Editing}
}
