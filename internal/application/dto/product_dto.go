package dto

import "github.com/shopspring/decimal"

// Sort options for product listings (mirrors the storefront's dropdown).
const (
	SortDefault   = "default"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
	SortStock     = "stock"
)

// ProductFilter narrows and orders a catalog listing. Zero values mean
// "no restriction"; MaxPrice nil means unbounded.
type ProductFilter struct {
	Search      string           `query:"search"`
	Category    string           `query:"category"`
	MinPrice    *decimal.Decimal `query:"min_price"`
	MaxPrice    *decimal.Decimal `query:"max_price"`
	InStockOnly bool             `query:"in_stock"`
	SortBy      string           `query:"sort"`
}

// ProductResponse a catalog record for display.
type ProductResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	Stock          int               `json:"stock"`
	InStock        bool              `json:"in_stock"`
	Category       string            `json:"category"`
	Supplier       string            `json:"supplier"`
	Image          string            `json:"image"`
	Features       []string          `json:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// ProductListResponse listing plus the category set for the filter sidebar.
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Categories []string          `json:"categories"`
}
