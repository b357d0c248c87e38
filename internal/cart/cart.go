// Package cart implements the persisted cart: an ordered list of product
// snapshots with quantities.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/dukaforge/storekeep/pkg/store"
	"github.com/dukaforge/storekeep/pkg/types"
)

// Repository manages the cart slot. Items hold full product snapshots taken
// at add time, so later catalog edits or deletions do not reach into the
// cart. Items are kept in insertion order.
type Repository struct {
	items *store.Value[[]types.CartItem]
}

// New binds a repository to the cart slot of the given store.
func New(slots types.SlotStore) *Repository {
	return &Repository{
		items: store.Bind(slots, types.SlotCart, []types.CartItem{}),
	}
}

// Items returns the current cart contents in insertion order.
func (r *Repository) Items() []types.CartItem {
	return r.items.Get()
}

// Add appends a snapshot of the product with quantity 1. There is no
// quantity-adjustment operation; adding the same product again appends a
// second entry.
func (r *Repository) Add(p types.Product) types.CartItem {
	item := types.CartItem{Product: p, Qty: 1}
	r.items.Update(func(list []types.CartItem) []types.CartItem {
		return append(list, item)
	})
	return item
}

// Remove deletes the first cart entry whose product snapshot carries the
// given ID. Returns ErrNotFound if no entry matches.
func (r *Repository) Remove(productID string) error {
	list := r.items.Get()
	for i := range list {
		if list[i].Product.ID == productID {
			updated := make([]types.CartItem, 0, len(list)-1)
			updated = append(updated, list[:i]...)
			updated = append(updated, list[i+1:]...)
			r.items.Set(updated)
			return nil
		}
	}
	return types.ErrNotFound
}

// Clear empties the cart.
func (r *Repository) Clear() {
	r.items.Set([]types.CartItem{})
}

// Total returns the sum of snapshot price times quantity over all entries.
func (r *Repository) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.items.Get() {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	return total
}
