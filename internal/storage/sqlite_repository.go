package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN keeps the database inside the process; nothing touches disk.
const MemoryDSN = ":memory:"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens path and applies migrations. Every pooled connection to
// ":memory:" would get its own database, so the pool is pinned to one.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) AppendItem(ctx context.Context, in Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO items (id, name, checked, is_editing)
		VALUES (?, ?, ?, ?)`,
		in.ID, in.Name, boolInt(in.Checked), boolInt(in.Editing),
	)
	return err
}

func (r *SQLiteRepository) GetItem(ctx context.Context, id string) (Item, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, checked, is_editing
		FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return item, nil
}

func (r *SQLiteRepository) UpdateItem(ctx context.Context, in Item) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE items
		SET name = ?, checked = ?, is_editing = ?
		WHERE id = ?`,
		in.Name, boolInt(in.Checked), boolInt(in.Editing), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteItem(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListItems(ctx context.Context) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, checked, is_editing
		FROM items ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) ClearEditing(ctx context.Context, exceptID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE items SET is_editing = 0 WHERE id <> ?`, exceptID)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (Item, error) {
	var out Item
	var checked, editing int
	if err := s.Scan(&out.ID, &out.Name, &checked, &editing); err != nil {
		return Item{}, err
	}
	out.Checked = checked == 1
	out.Editing = editing == 1
	return out, nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
