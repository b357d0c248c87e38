package types

// Brand color slot names. Colors maps each slot to a hex color value.
const (
	SlotBlack   = "black"
	SlotODGreen = "odGreen"
	SlotWhite   = "white"
)

// Brand is the single mutable storefront configuration record. LogoLines is
// an ordered list of color slot names rendered top to bottom; names that do
// not appear in Colors are stored as-is and skipped at render time.
type Brand struct {
	Name      string            `json:"name"`
	Colors    map[string]string `json:"colors"`
	LogoLines []string          `json:"logoLines"`
}

// DefaultBrand returns the brand configuration used before any customization.
func DefaultBrand() Brand {
	return Brand{
		Name: "Storekeep",
		Colors: map[string]string{
			SlotBlack:   "#000000",
			SlotODGreen: "#4b5320",
			SlotWhite:   "#ffffff",
		},
		LogoLines: []string{SlotBlack, SlotODGreen, SlotWhite},
	}
}
