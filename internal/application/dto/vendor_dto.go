package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RejectApplicationRequest admin rejection with an optional reason.
type RejectApplicationRequest struct {
	Reason string `json:"reason"`
}

// VendorApplicationResponse one supplier application in the review queue.
type VendorApplicationResponse struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	TaxID       string    `json:"tax_id,omitempty"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// VendorApplicationListResponse review queue grouped by the requested status.
type VendorApplicationListResponse struct {
	Items []VendorApplicationResponse `json:"items"`
	Total int                         `json:"total"`
}

// EarningsResponse commission arithmetic for the vendor dashboard:
// fee = sales * rate/100, net = sales - fee.
type EarningsResponse struct {
	Supplier       string          `json:"supplier"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	PlatformFee    decimal.Decimal `json:"platform_fee"`
	NetEarnings    decimal.Decimal `json:"net_earnings"`
	OrderCount     int             `json:"order_count"`
}
