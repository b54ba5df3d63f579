package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// Identity is the signed payload persisted for a logged-in account. It carries
// everything needed to restore the session without consulting the directory, so
// Role is included for the route guard to make decisions on load.
type Identity struct {
	UserID         string          `json:"user_id"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Company        string          `json:"company,omitempty"`
	Role           string          `json:"role"` // "admin" | "vendor" | "customer"
	Approved       bool            `json:"approved"`
	VendorID       string          `json:"vendor_id,omitempty"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

// Claims includes the standard JWT claims plus the application identity.
type Claims struct {
	jwt.RegisteredClaims
	Identity Identity `json:"identity"`
}

// Generate signs an identity token.
func Generate(secret, issuer string, id Identity, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Identity: id,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// Parse validates a token and returns the identity it carries.
// Returns an error when the token is invalid, expired or signed with another key.
func Parse(secret, tokenString string) (*Identity, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: empty secret")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return &claims.Identity, nil
}
