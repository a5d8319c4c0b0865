package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) (*Store, *FileKV, string) {
	t.Helper()
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	return NewStore(kv), kv, dir
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _, _ := newTestStore(t)

	creds := &Credentials{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-xyz",
		ExpiresAt:    time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC),
		User:         json.RawMessage(`{"id":"u-1","role":"driver"}`),
	}

	if err := store.Save(creds); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned nil after Save")
	}
	if got.AccessToken != creds.AccessToken || got.RefreshToken != creds.RefreshToken {
		t.Errorf("tokens = %q/%q, want %q/%q", got.AccessToken, got.RefreshToken, creds.AccessToken, creds.RefreshToken)
	}
	if !got.ExpiresAt.Equal(creds.ExpiresAt) {
		t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, creds.ExpiresAt)
	}
	if string(got.User) != string(creds.User) {
		t.Errorf("User = %s, want %s", got.User, creds.User)
	}
}

func TestSaveNilDeletes(t *testing.T) {
	store, _, _ := newTestStore(t)

	if err := store.Save(&Credentials{AccessToken: "a"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil): %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("Load after Save(nil) = %+v, want nil", got)
	}
}

func TestLoadMissingReturnsNil(t *testing.T) {
	store, _, _ := newTestStore(t)

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("Load on empty store = %+v, want nil", got)
	}
}

func TestLoadCorruptEntryClearsAndReturnsNil(t *testing.T) {
	store, kv, dir := newTestStore(t)

	// Write garbage directly under the storage key.
	if err := kv.Set(Key, []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load on corrupt entry: %v", err)
	}
	if got != nil {
		t.Errorf("Load on corrupt entry = %+v, want nil", got)
	}

	// The corrupt entry must be gone.
	if _, statErr := os.Stat(filepath.Join(dir, Key+".json")); !os.IsNotExist(statErr) {
		t.Error("corrupt entry was not deleted")
	}
}
