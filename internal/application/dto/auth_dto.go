package dto

import "github.com/shopspring/decimal"

// LoginRequest credentials posted by the login form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// RegisterRequest registration form data. AccountType selects the flow:
// "customer" (immediately usable) or "vendor" (pending review).
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Phone       string `json:"phone"`
	TaxID       string `json:"tax_id"`
	AccountType string `json:"account_type" validate:"required,oneof=customer vendor"`
}

// RegisterResult outcome of a registration attempt. Registration never
// authenticates; the caller still has to log in.
type RegisterResult struct {
	Message string `json:"message"`
}

// UserResponse the current identity, without the password hash.
type UserResponse struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Company        string          `json:"company,omitempty"`
	Role           string          `json:"role"`
	Approved       bool            `json:"approved"`
	VendorID       string          `json:"vendor_id,omitempty"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

// SessionResponse session snapshot for the UI: identity (or null), loading
// flag and the last ephemeral error message.
type SessionResponse struct {
	User    *UserResponse `json:"user"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
}
