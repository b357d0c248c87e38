package memory

import (
	"testing"

	"github.com/dukaforge/storekeep/pkg/types"
)

func TestStore_GetSet(t *testing.T) {
	s := NewStore()

	if _, err := s.Get("products"); err != types.ErrSlotNotFound {
		t.Errorf("expected ErrSlotNotFound, got %v", err)
	}

	if err := s.Set("products", []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, err := s.Get("products")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(v) != `[]` {
		t.Errorf("expected [], got %s", v)
	}
}

func TestStore_SetCopiesValue(t *testing.T) {
	s := NewStore()
	buf := []byte(`{"name":"x"}`)
	if err := s.Set("brand", buf); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	buf[0] = '!'

	v, err := s.Get("brand")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v[0] != '{' {
		t.Error("stored value aliases the caller's buffer")
	}
}

func TestStore_Detached(t *testing.T) {
	s := NewStore()
	if err := s.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	if _, err := s.Get("cart"); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached, got %v", err)
	}
	if err := s.Set("cart", nil); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached, got %v", err)
	}

	// Idempotent detach, then re-attach sees prior content.
	if err := s.Detach(); err != nil {
		t.Fatalf("second Detach failed: %v", err)
	}
	if err := s.Attach(types.Config{Backend: types.BackendMemory}); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if err := s.Attach(types.Config{Backend: types.BackendMemory}); err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}
}

func TestStore_FailureToggles(t *testing.T) {
	s := NewStore()
	s.FailReads = true
	if _, err := s.Get("reviews"); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached on failed read, got %v", err)
	}

	s.FailReads = false
	s.FailWrites = true
	if err := s.Set("reviews", []byte(`[]`)); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached on failed write, got %v", err)
	}
}
