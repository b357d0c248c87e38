// Package catalog implements product CRUD over the products slot.
package catalog

import (
	"github.com/google/uuid"

	"github.com/dukaforge/storekeep/pkg/store"
	"github.com/dukaforge/storekeep/pkg/types"
)

// Repository manages the ordered product collection. Create prepends, so the
// listing is most-recent-first. Update replaces the whole record keyed on ID;
// there is no partial patch.
type Repository struct {
	products *store.Value[[]types.Product]
}

// New binds a repository to the products slot of the given store.
func New(slots types.SlotStore) *Repository {
	return &Repository{
		products: store.Bind(slots, types.SlotProducts, []types.Product{}),
	}
}

// List returns the current ordered product collection. Callers treat the
// slice as a stable snapshot; it is re-read after every mutation.
func (r *Repository) List() []types.Product {
	return r.products.Get()
}

// Published returns only the products visible on the public listing,
// preserving order.
func (r *Repository) Published() []types.Product {
	var out []types.Product
	for _, p := range r.products.Get() {
		if p.Published {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the product with the given ID.
// Returns ErrNotFound if no product exists with that ID.
func (r *Repository) Get(id string) (types.Product, error) {
	for _, p := range r.products.Get() {
		if p.ID == id {
			return p, nil
		}
	}
	return types.Product{}, types.ErrNotFound
}

// Create allocates a product with a generated ID and default field values,
// prepends it to the collection, and returns it.
func (r *Repository) Create() types.Product {
	p := types.NewProduct("New product")
	p.ID = newUUID()

	r.products.Update(func(list []types.Product) []types.Product {
		return append([]types.Product{p}, list...)
	})
	return p
}

// Update replaces the stored record whose ID matches p.ID.
// Returns ErrNotFound without mutating anything if the ID is not present;
// the ID itself is never changed by an update.
func (r *Repository) Update(p types.Product) error {
	list := r.products.Get()
	for i := range list {
		if list[i].ID == p.ID {
			updated := make([]types.Product, len(list))
			copy(updated, list)
			updated[i] = p
			r.products.Set(updated)
			return nil
		}
	}
	return types.ErrNotFound
}

// Delete removes the product with the given ID. Deletion is irreversible and
// the caller is expected to gate it behind an explicit confirmation; the
// repository itself never prompts. Cart entries holding a snapshot of the
// product are untouched.
// Returns ErrNotFound if no product exists with that ID.
func (r *Repository) Delete(id string) error {
	list := r.products.Get()
	for i := range list {
		if list[i].ID == id {
			updated := make([]types.Product, 0, len(list)-1)
			updated = append(updated, list[:i]...)
			updated = append(updated, list[i+1:]...)
			r.products.Set(updated)
			return nil
		}
	}
	return types.ErrNotFound
}

// newUUID generates a UUID v7 string, falling back to v4 if v7 fails.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
