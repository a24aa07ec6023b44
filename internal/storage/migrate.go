package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_versions (version TEXT PRIMARY KEY)`

// MigrateUp applies every up migration not yet recorded in schema_versions.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(createVersionsTable); err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}
	versions, err := migrationVersions()
	if err != nil {
		return err
	}
	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}
	for _, version := range versions {
		if applied[version] {
			continue
		}
		if err := runMigration(db, version, ".up.sql", `INSERT INTO schema_versions (version) VALUES (?)`); err != nil {
			return err
		}
	}
	return nil
}

// MigrateDown reverts applied migrations, newest first.
func MigrateDown(db *sql.DB) error {
	if _, err := db.Exec(createVersionsTable); err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}
	versions, err := migrationVersions()
	if err != nil {
		return err
	}
	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}
	for i := len(versions) - 1; i >= 0; i-- {
		if !applied[versions[i]] {
			continue
		}
		if err := runMigration(db, versions[i], ".down.sql", `DELETE FROM schema_versions WHERE version = ?`); err != nil {
			return err
		}
	}
	return nil
}

// migrationVersions lists "0001_items"-style names in ascending order.
func migrationVersions() ([]string, error) {
	entries, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("glob migrations: %w", err)
	}
	versions := make([]string, 0, len(entries))
	for _, name := range entries {
		versions = append(versions, strings.TrimSuffix(path.Base(name), ".up.sql"))
	}
	sort.Strings(versions)
	return versions, nil
}

func appliedVersions(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query(`SELECT version FROM schema_versions`)
	if err != nil {
		return nil, fmt.Errorf("list schema_versions: %w", err)
	}
	defer rows.Close()
	applied := map[string]bool{}
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("scan schema_versions: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// runMigration executes one migration file and its bookkeeping statement in a
// single transaction.
func runMigration(db *sql.DB, version, suffix, record string) error {
	name := "migrations/" + version + suffix
	script, err := migrationFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", name, err)
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", name, err)
	}
	if _, err := tx.Exec(string(script)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("apply migration %s: %w", name, err)
	}
	if _, err := tx.Exec(record, version); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %s: %w", name, err)
	}
	return tx.Commit()
}
