// Package directory provides the in-memory account directory. In production
// this would be a real authentication service; here it is seeded with the
// demo accounts and grows through registration.
package directory

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/aplusmed/marketplace-api/internal/domain"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
)

// Memory is a mutex-guarded account set keyed by lowercase email.
type Memory struct {
	mu    sync.RWMutex
	byKey map[string]*entity.User
	order []string // insertion order for List
}

// NewMemory builds an empty directory.
func NewMemory() *Memory {
	return &Memory{byKey: make(map[string]*entity.User)}
}

// NewMemoryWithDemoAccounts builds a directory seeded with the demo accounts.
func NewMemoryWithDemoAccounts() *Memory {
	m := NewMemory()
	for _, u := range DemoAccounts() {
		_ = m.Create(u)
	}
	return m
}

func key(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// FindByEmail returns the account or nil.
func (m *Memory) FindByEmail(email string) (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.byKey[key(email)]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// EmailExists reports whether an account uses this email.
func (m *Memory) EmailExists(email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.byKey[key(email)]
	return ok, nil
}

// Create adds a new account; ErrEmailAlreadyRegistered on duplicates.
func (m *Memory) Create(user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(user.Email)
	if _, ok := m.byKey[k]; ok {
		return domain.ErrEmailAlreadyRegistered
	}
	cp := *user
	m.byKey[k] = &cp
	m.order = append(m.order, k)
	return nil
}

// Update replaces an existing account; ErrNotFound when absent.
func (m *Memory) Update(user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(user.Email)
	if _, ok := m.byKey[k]; !ok {
		return domain.ErrNotFound
	}
	cp := *user
	m.byKey[k] = &cp
	return nil
}

// List returns all accounts in insertion order.
func (m *Memory) List() ([]*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*entity.User, 0, len(m.order))
	for _, k := range m.order {
		cp := *m.byKey[k]
		out = append(out, &cp)
	}
	return out, nil
}

// DemoAccounts is the seed set from the storefront demo. The unapproved
// vendor exercises the pending-approval login path. None of them carry a
// password hash, so any password logs them in.
func DemoAccounts() []*entity.User {
	return []*entity.User{
		{
			ID:       "1",
			Email:    "admin@aplusmed.com",
			Name:     "Admin User",
			Role:     entity.RoleAdmin,
			Approved: true,
		},
		{
			ID:       "2",
			Email:    "john@hospital.com",
			Name:     "John Smith",
			Company:  "City Hospital",
			Role:     entity.RoleCustomer,
			Approved: true,
		},
		{
			ID:             "3",
			Email:          "supplier@medtech.com",
			Name:           "MedTech Solutions",
			Company:        "MedTech Solutions",
			Role:           entity.RoleVendor,
			Approved:       true,
			VendorID:       "VEN-001",
			CommissionRate: decimal.NewFromInt(15),
		},
		{
			ID:             "4",
			Email:          "supplier@safeguard.com",
			Name:           "SafeGuard Medical",
			Company:        "SafeGuard Medical",
			Role:           entity.RoleVendor,
			Approved:       true,
			VendorID:       "VEN-002",
			CommissionRate: decimal.NewFromInt(12),
		},
		{
			ID:       "5",
			Email:    "contact@globalmedical.com",
			Name:     "Global Medical Supplies Inc.",
			Company:  "Global Medical Supplies Inc.",
			Role:     entity.RoleVendor,
			Approved: false, // pending admin approval
			VendorID: "VAPP-001",
		},
	}
}
