package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog record for a medical supply. The catalog is read-only
// master data; the cart copies a snapshot of the fields it displays at add time
// and never re-reads live stock afterwards.
type Product struct {
	ID             string
	Name           string
	Description    string
	Price          decimal.Decimal // unit price, non-negative
	Stock          int             // quantity ceiling for cart lines
	Category       string
	Supplier       string // display name of the vendor
	Image          string
	Features       []string
	Specifications map[string]string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// InStock reports whether at least one unit can be added to a cart.
func (p *Product) InStock() bool { return p.Stock > 0 }
