// Tests for the SQLite slot store.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dukaforge/storekeep/pkg/types"
)

func testConfig(dir string) types.Config {
	return types.Config{
		Backend: types.BackendSQLite,
		DataDir: dir,
	}
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	if err := b.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	// Verify database file created
	dbPath := filepath.Join(tmpDir, DBFileName)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("%s not created", DBFileName)
	}

	// Verify double attach fails
	if err := b.Attach(testConfig(tmpDir)); err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}
}

func TestBackend_AttachInvalidConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(types.Config{Backend: "mongodb"})
	if err != types.ErrBackendUnknown {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(testConfig(t.TempDir())); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}
	// Verify idempotent
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach failed: %v", err)
	}

	if _, err := b.Get(types.SlotProducts); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached after Detach, got %v", err)
	}
	if err := b.Set(types.SlotProducts, []byte(`[]`)); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached after Detach, got %v", err)
	}
}

func TestBackend_GetSet(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(testConfig(t.TempDir())); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	if _, err := b.Get(types.SlotBrand); err != types.ErrSlotNotFound {
		t.Errorf("expected ErrSlotNotFound for unwritten slot, got %v", err)
	}

	payload := []byte(`{"name":"Ridgeline"}`)
	if err := b.Set(types.SlotBrand, payload); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := b.Get(types.SlotBrand)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("expected %s, got %s", payload, got)
	}

	// Overwrite replaces the prior value.
	if err := b.Set(types.SlotBrand, []byte(`{"name":"Updated"}`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, err = b.Get(types.SlotBrand)
	if err != nil {
		t.Fatalf("Get after overwrite failed: %v", err)
	}
	if string(got) != `{"name":"Updated"}` {
		t.Errorf("overwrite not applied, got %s", got)
	}
}

func TestBackend_PersistsAcrossReattach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	if err := b.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if err := b.Set(types.SlotCart, []byte(`[{"qty":1}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// A fresh backend bound to the same data directory sees the value.
	b2 := NewBackend()
	if err := b2.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("re-Attach failed: %v", err)
	}
	defer b2.Detach()

	got, err := b2.Get(types.SlotCart)
	if err != nil {
		t.Fatalf("Get after re-attach failed: %v", err)
	}
	if string(got) != `[{"qty":1}]` {
		t.Errorf("value lost across reattach, got %s", got)
	}
}
