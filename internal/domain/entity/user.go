package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valid roles for User.
const (
	RoleAdmin    = "admin"
	RoleVendor   = "vendor"
	RoleCustomer = "customer"
)

// User represents an account known to the marketplace directory.
// Approved is false only for vendor accounts whose application is still
// pending review; customer and admin accounts are always approved.
type User struct {
	ID             string
	Email          string // unique, the login key
	PasswordHash   string // bcrypt hash; empty for seeded demo accounts (any password accepted)
	Name           string
	Company        string
	Role           string // admin, vendor, customer
	Approved       bool
	VendorID       string          // assigned on vendor approval, e.g. VEN-001
	CommissionRate decimal.Decimal // percentage in [0,100]; vendors only
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAdmin reports whether the account has the admin role.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// IsVendor reports whether the account has the vendor role.
func (u *User) IsVendor() bool { return u != nil && u.Role == RoleVendor }

// IsCustomer reports whether the account has the customer role.
func (u *User) IsCustomer() bool { return u != nil && u.Role == RoleCustomer }
