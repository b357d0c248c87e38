package types

import "errors"

// Standard slot names. Each slot holds one serialized entity or collection.
const (
	SlotProducts = "products"
	SlotReviews  = "reviews"
	SlotBrand    = "brand"
	SlotCart     = "cart"
)

// SlotStore is the injectable persistence port: a named key-value store of
// durable slots. Backends attach to a data directory, serve reads and writes,
// and detach when done. There is no cross-instance synchronization; two
// stores bound to the same data directory overwrite each other silently.
// This is a known limitation of the single-client design, not a bug.
type SlotStore interface {
	// Get returns the raw value stored in the named slot.
	// Returns ErrSlotNotFound if the slot has never been written.
	Get(key string) ([]byte, error)

	// Set writes the raw value into the named slot, replacing any prior value.
	Set(key string, value []byte) error

	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, Get and Set return ErrStoreDetached.
	Detach() error
}

// Slot store lifecycle and operation errors.
var (
	ErrStoreDetached   = errors.New("slot store is detached")
	ErrAlreadyAttached = errors.New("slot store is already attached")
	ErrSlotNotFound    = errors.New("slot not found")
)
