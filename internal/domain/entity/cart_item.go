package entity

import "github.com/shopspring/decimal"

// CartItem is one line of the cart: at most one per product id. Price, Stock
// and the display fields are snapshots of the product at insertion time.
// Quantity always stays in [1, Stock]; the store clamps instead of erroring.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Stock     int             `json:"stock"`
	Image     string          `json:"image"`
	Category  string          `json:"category"`
	Supplier  string          `json:"supplier"`
}

// Subtotal returns price * quantity at full precision.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
