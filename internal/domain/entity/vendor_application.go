package entity

import "time"

// Vendor application statuses.
const (
	ApplicationPending   = "pending"
	ApplicationApproved  = "approved"
	ApplicationRejected  = "rejected"
	ApplicationSuspended = "suspended"
)

// VendorApplication is a supplier's request to sell on the marketplace,
// reviewed by an admin. Approval flips the directory account's Approved flag.
type VendorApplication struct {
	ID          string
	Company     string
	ContactName string
	Email       string
	Phone       string
	TaxID       string
	Status      string // pending, approved, rejected, suspended
	Reason      string // set on rejection
	SubmittedAt time.Time
	ReviewedAt  time.Time
}
