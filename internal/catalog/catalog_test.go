package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/storekeep/internal/memory"
	"github.com/dukaforge/storekeep/pkg/types"
)

func TestCreateDefaultsAndPrepend(t *testing.T) {
	r := New(memory.NewStore())

	first := r.Create()
	second := r.Create()

	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Published)
	assert.Equal(t, types.StatusNotShipped, first.ShippingStatus)
	assert.Empty(t, first.SKU)
	assert.Empty(t, first.Description)
	assert.True(t, first.Price.IsZero())

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "create must prepend")
	assert.Equal(t, first.ID, list[1].ID)
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	r := New(memory.NewStore())

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p := r.Create()
		if seen[p.ID] {
			t.Fatalf("duplicate ID generated: %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	r := New(memory.NewStore())
	p := r.Create()

	p.Name = "bushcraft knife"
	p.Price = decimal.RequireFromString("89.50")
	p.Published = true
	require.NoError(t, p.SetShippingStatus(types.StatusPreOrder))

	require.NoError(t, r.Update(p))

	got, err := r.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "bushcraft knife", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("89.50")))
	assert.True(t, got.Published)
	assert.Equal(t, types.StatusPreOrder, got.ShippingStatus)
}

func TestUpdateMissingIDLeavesCollectionUnchanged(t *testing.T) {
	r := New(memory.NewStore())
	existing := r.Create()

	ghost := types.NewProduct("ghost")
	ghost.ID = "no-such-id"
	err := r.Update(ghost)
	assert.ErrorIs(t, err, types.ErrNotFound)

	list := r.List()
	require.Len(t, list, 1)
	assert.Equal(t, existing.ID, list[0].ID)
}

func TestDelete(t *testing.T) {
	r := New(memory.NewStore())
	a := r.Create()
	b := r.Create()

	require.NoError(t, r.Delete(a.ID))

	list := r.List()
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	_, err := r.Get(a.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteMissingIDLeavesCollectionUnchanged(t *testing.T) {
	r := New(memory.NewStore())
	r.Create()

	err := r.Delete("no-such-id")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Len(t, r.List(), 1)
}

func TestPublishedFiltersListing(t *testing.T) {
	r := New(memory.NewStore())
	hidden := r.Create()
	visible := r.Create()
	visible.Published = true
	require.NoError(t, r.Update(visible))

	pub := r.Published()
	require.Len(t, pub, 1)
	assert.Equal(t, visible.ID, pub[0].ID)
	assert.NotEqual(t, hidden.ID, pub[0].ID)
}

func TestCollectionSurvivesRebind(t *testing.T) {
	slots := memory.NewStore()
	r := New(slots)
	p := r.Create()

	// A repository freshly bound to the same slots sees the product.
	r2 := New(slots)
	got, err := r2.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}
