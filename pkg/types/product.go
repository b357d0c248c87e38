package types

import "github.com/shopspring/decimal"

// Shipping statuses. A product carries exactly one of these at any time.
const (
	StatusNotShipped = "not-shipped"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusPreOrder   = "pre-order"
)

// validShippingStatuses is the set of recognized shipping status values.
var validShippingStatuses = map[string]bool{
	StatusNotShipped: true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusPreOrder:   true,
}

// ValidShippingStatus reports whether s is a recognized shipping status.
func ValidShippingStatus(s string) bool {
	return validShippingStatuses[s]
}

// Product is a catalog entry. The ID is generated at creation and immutable
// thereafter; SKU carries no uniqueness guarantee. Published gates visibility
// on the public listing. Price is not validated against a lower bound.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Description    string          `json:"description"`
	Images         []string        `json:"images"`
	SKU            string          `json:"sku"`
	ShippingStatus string          `json:"shippingStatus"`
	Published      bool            `json:"published"`
}

// NewProduct returns a product with default field values. The caller (or the
// catalog repository) assigns the ID.
func NewProduct(name string) Product {
	return Product{
		Name:           name,
		Price:          decimal.Zero,
		ShippingStatus: StatusNotShipped,
		Published:      false,
	}
}

// SetShippingStatus sets the shipping status to the given value.
// Returns ErrInvalidStatus if the status is not recognized.
// Idempotent: setting the current status succeeds without error.
func (p *Product) SetShippingStatus(status string) error {
	if !validShippingStatuses[status] {
		return ErrInvalidStatus
	}
	p.ShippingStatus = status
	return nil
}
