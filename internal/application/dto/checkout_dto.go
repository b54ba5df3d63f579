package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteResponse the order summary shown on checkout: flat shipping and 8% tax
// over the cart subtotal, computed at full precision.
type QuoteResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// PlaceOrderRequest shipping plus mock payment fields. Card data is accepted
// and discarded; payment is simulated.
type PlaceOrderRequest struct {
	Name       string `json:"name" validate:"required"`
	Company    string `json:"company"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	Zip        string `json:"zip" validate:"required"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// OrderItemResponse one frozen order line.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Supplier  string          `json:"supplier"`
}

// OrderResponse a stored order for confirmation and history pages.
type OrderResponse struct {
	ID        string              `json:"id"`
	Items     []OrderItemResponse `json:"items"`
	Subtotal  decimal.Decimal     `json:"subtotal"`
	Shipping  decimal.Decimal     `json:"shipping"`
	Tax       decimal.Decimal     `json:"tax"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status"`
	Name      string              `json:"name"`
	Street    string              `json:"street"`
	City      string              `json:"city"`
	State     string              `json:"state"`
	Zip       string              `json:"zip"`
	CreatedAt time.Time           `json:"created_at"`
}

// OrderListResponse order history for the current customer.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}
