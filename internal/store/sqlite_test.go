package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "zencheck-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	kv, err := NewSQLiteKV(db)
	if err != nil {
		t.Fatalf("new kv: %v", err)
	}
	return kv
}

func TestKVGetMissingKey(t *testing.T) {
	kv := openTestKV(t)
	_, err := kv.Get(t.Context(), "absent")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestKVSetOverwrites(t *testing.T) {
	kv := openTestKV(t)
	if err := kv.Set(t.Context(), KeyTheme, ThemeLight); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := kv.Set(t.Context(), KeyTheme, ThemeDark); err != nil {
		t.Fatalf("second set: %v", err)
	}
	got, err := kv.Get(t.Context(), KeyTheme)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != ThemeDark {
		t.Fatalf("expected overwrite to win, got %q", got)
	}
}

func TestMigrateRoundTrip(t *testing.T) {
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

	kv, err := NewSQLiteKV(db)
	if err != nil {
		t.Fatalf("new kv: %v", err)
	}
	if err := kv.Set(t.Context(), "k", "v"); err != nil {
		t.Fatalf("set after roundtrip failed: %v", err)
	}
	got, err := kv.Get(t.Context(), "k")
	if err != nil || got != "v" {
		t.Fatalf("get after roundtrip: %q, %v", got, err)
	}
}
