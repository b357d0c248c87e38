package types

// CartItem is a full product snapshot taken at add time plus a quantity.
// Because it is a snapshot, deleting the product from the catalog leaves the
// cart entry intact and valid.
type CartItem struct {
	Product Product `json:"product"`
	Qty     int     `json:"qty"`
}
