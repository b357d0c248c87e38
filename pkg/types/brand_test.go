package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBrand(t *testing.T) {
	b := DefaultBrand()

	assert.Equal(t, "Storekeep", b.Name)
	assert.Len(t, b.Colors, 3)
	assert.Contains(t, b.Colors, SlotBlack)
	assert.Contains(t, b.Colors, SlotODGreen)
	assert.Contains(t, b.Colors, SlotWhite)
	assert.Equal(t, []string{SlotBlack, SlotODGreen, SlotWhite}, b.LogoLines)
}

func TestDefaultBrandIsolated(t *testing.T) {
	// Each call returns an independent record; mutating one must not leak
	// into the next.
	a := DefaultBrand()
	a.Colors[SlotBlack] = "#111111"
	a.LogoLines[0] = SlotWhite

	b := DefaultBrand()
	assert.Equal(t, "#000000", b.Colors[SlotBlack])
	assert.Equal(t, SlotBlack, b.LogoLines[0])
}
