package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestJSONStore_LoadBeforeSave(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "nested", "lifehub.v2.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if _, err := store.Load(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("Load() error = %v, want ErrNoSnapshot", err)
	}
}

func TestJSONStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifehub.v2.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if err := store.Save([]byte(`{"txns":[]}`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save([]byte(`{"txns":[],"nightShiftMode":false}`)); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	data, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != `{"txns":[],"nightShiftMode":false}` {
		t.Errorf("Load() = %s, want the latest document", data)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind after Save")
	}
	if store.GetConfigPath() != path {
		t.Errorf("GetConfigPath() = %q, want %q", store.GetConfigPath(), path)
	}
}

func TestJSONStore_EmptyFileIsNoSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifehub.v2.json")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatalf("failed to create empty file: %v", err)
	}

	if _, err := NewJSONStore(path).Load(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("Load() error = %v, want ErrNoSnapshot", err)
	}
}

func TestJSONStore_SaveIntoMissingDirectoryFails(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing", "lifehub.v2.json"))

	if err := store.Save([]byte(`{}`)); err == nil {
		t.Error("Save() succeeded without a data directory")
	}
}
