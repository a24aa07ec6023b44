package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	if err := repo.AppendItem(t.Context(), Item{ID: "item-rt-1", Name: "roundtrip"}); err != nil {
		t.Fatalf("insert after roundtrip failed: %v", err)
	}
	got, err := repo.GetItem(t.Context(), "item-rt-1")
	if err != nil {
		t.Fatalf("get after roundtrip failed: %v", err)
	}
	if got.Name != "roundtrip" {
		t.Fatalf("unexpected name after roundtrip: %q", got.Name)
	}
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "migrate-twice.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := MigrateUp(db); err != nil {
			t.Fatalf("migrate up #%d failed: %v", i+1, err)
		}
	}
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_versions`).Scan(&count); err != nil {
		t.Fatalf("count versions: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one recorded version, got %d", count)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_versions`).Scan(&count); err != nil {
		t.Fatalf("count versions after down: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no recorded versions after down, got %d", count)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("second migrate down must be a no-op: %v", err)
	}
}
