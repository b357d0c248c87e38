// Package brand manages the single storefront configuration record.
package brand

import (
	"strings"

	"github.com/dukaforge/storekeep/pkg/store"
	"github.com/dukaforge/storekeep/pkg/types"
)

// Patch carries the fields to merge into the brand record. Nil fields are
// left unchanged; Colors merges per slot rather than replacing the map.
type Patch struct {
	Name      *string
	Colors    map[string]string
	LogoLines []string
}

// Store manages the brand slot. It is a single mutable record, not a
// collection: no IDs, no list operations.
type Store struct {
	brand *store.Value[types.Brand]
}

// New binds a store to the brand slot of the given slot store.
func New(slots types.SlotStore) *Store {
	return &Store{
		brand: store.Bind(slots, types.SlotBrand, types.DefaultBrand()),
	}
}

// Get returns the current brand record.
func (s *Store) Get() types.Brand {
	return s.brand.Get()
}

// Set merges the patch into the current record and persists the result.
// Logo lines are stored leniently: slot names missing from Colors are kept
// and simply skipped by renderers.
func (s *Store) Set(p Patch) types.Brand {
	b := s.brand.Get()

	if p.Name != nil {
		b.Name = *p.Name
	}
	if len(p.Colors) > 0 {
		merged := make(map[string]string, len(b.Colors)+len(p.Colors))
		for k, v := range b.Colors {
			merged[k] = v
		}
		for k, v := range p.Colors {
			merged[k] = v
		}
		b.Colors = merged
	}
	if p.LogoLines != nil {
		b.LogoLines = p.LogoLines
	}

	s.brand.Set(b)
	return b
}

// RenderLines resolves the logo lines to their colors, dropping slot names
// that have no color. This is the render-time no-op for invalid slots.
func (s *Store) RenderLines() []string {
	b := s.brand.Get()
	var out []string
	for _, slot := range b.LogoLines {
		if c, ok := b.Colors[slot]; ok {
			out = append(out, c)
		}
	}
	return out
}

// ParseLogoLines turns comma-separated UI input into an ordered, trimmed
// slot-name list. Empty segments are dropped; unknown names are not.
func ParseLogoLines(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
