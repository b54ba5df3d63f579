package dto

import "github.com/shopspring/decimal"

// AddItemRequest puts a product into the cart. Quantity defaults to 1.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest sets the quantity of a line. Zero or negative removes it.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse one cart line for display.
type CartItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Stock     int             `json:"stock"`
	Image     string          `json:"image"`
	Category  string          `json:"category"`
	Supplier  string          `json:"supplier"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse the whole cart plus derived totals. Total carries full
// precision; TotalDisplay is rounded to two decimals for the badge/summary.
type CartResponse struct {
	Items        []CartItemResponse `json:"items"`
	ItemsCount   int                `json:"items_count"`
	Total        decimal.Decimal    `json:"total"`
	TotalDisplay string             `json:"total_display"`
}
