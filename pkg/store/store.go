// Package store binds a typed in-memory value to a named durable slot.
//
// A Value is loaded once from its slot at bind time and written back on every
// mutation. Reads that fail for any reason (slot absent, corrupt payload,
// backend detached) fall back to a caller-supplied default, so binding never
// fails. Writes are best-effort: a failed persist is logged at debug level
// and otherwise swallowed, leaving the in-memory value authoritative for the
// rest of the session. Availability of the running tool wins over durability.
package store

import (
	"encoding/json"
	"log/slog"

	"github.com/dukaforge/storekeep/pkg/types"
)

// Value is a typed in-memory value backed by one durable slot.
// It is not safe for concurrent use; all access is expected to happen on the
// single event-handling goroutine.
type Value[T any] struct {
	slots types.SlotStore
	key   string
	val   T
}

// Bind loads the slot named key from slots and returns a Value holding the
// stored content, or def when the slot is absent, unreadable, or does not
// deserialize. Bind never returns an error.
func Bind[T any](slots types.SlotStore, key string, def T) *Value[T] {
	v := &Value[T]{slots: slots, key: key, val: def}

	raw, err := slots.Get(key)
	if err != nil {
		if err != types.ErrSlotNotFound {
			slog.Debug("slot read failed, using default", "slot", key, "err", err)
		}
		return v
	}

	var loaded T
	if err := json.Unmarshal(raw, &loaded); err != nil {
		slog.Debug("slot payload corrupt, using default", "slot", key, "err", err)
		return v
	}

	v.val = loaded
	return v
}

// Get returns the current in-memory value.
func (v *Value[T]) Get() T {
	return v.val
}

// Set replaces the in-memory value and persists it best-effort.
func (v *Value[T]) Set(val T) {
	v.val = val
	v.persist()
}

// Update applies fn to the current value and stores the result, persisting
// best-effort.
func (v *Value[T]) Update(fn func(T) T) {
	v.Set(fn(v.val))
}

// persist serializes the current value into the slot. Failures are swallowed;
// the in-memory value remains authoritative.
func (v *Value[T]) persist() {
	raw, err := json.Marshal(v.val)
	if err != nil {
		slog.Debug("slot serialize failed, keeping value in memory", "slot", v.key, "err", err)
		return
	}
	if err := v.slots.Set(v.key, raw); err != nil {
		slog.Debug("slot write failed, keeping value in memory", "slot", v.key, "err", err)
	}
}
