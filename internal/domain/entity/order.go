package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// ShippingAddress is the destination captured at checkout.
type ShippingAddress struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// OrderItem is a cart line frozen into an order.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Supplier  string          `json:"supplier"`
}

// Subtotal returns price * quantity for the line.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a completed (mock-paid) checkout.
type Order struct {
	ID            string          `json:"id"` // ORD-<millis>
	CustomerEmail string          `json:"customer_email"`
	Items         []OrderItem     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Shipping      decimal.Decimal `json:"shipping"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	Address       ShippingAddress `json:"address"`
	CreatedAt     time.Time       `json:"created_at"`
}
