// Package apps provides the in-memory vendor application repository backing
// the admin review queue.
package apps

import (
	"sync"
	"time"

	"github.com/aplusmed/marketplace-api/internal/domain"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
)

// Memory is a mutex-guarded application set.
type Memory struct {
	mu   sync.RWMutex
	byID map[string]*entity.VendorApplication
	ids  []string
}

// NewMemory builds an empty repository.
func NewMemory() *Memory {
	return &Memory{byID: make(map[string]*entity.VendorApplication)}
}

// NewMemoryWithDemoApplications seeds the pending application matching the
// unapproved demo vendor account.
func NewMemoryWithDemoApplications() *Memory {
	m := NewMemory()
	_ = m.Create(&entity.VendorApplication{
		ID:          "app-globalmedical",
		Company:     "Global Medical Supplies Inc.",
		ContactName: "Global Medical Supplies Inc.",
		Email:       "contact@globalmedical.com",
		Phone:       "+1 555 0100",
		TaxID:       "94-0000000",
		Status:      entity.ApplicationPending,
		SubmittedAt: time.Now().Add(-48 * time.Hour),
	})
	return m
}

// Create stores a new application; ErrConflict on a duplicate id.
func (m *Memory) Create(app *entity.VendorApplication) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[app.ID]; ok {
		return domain.ErrConflict
	}
	cp := *app
	m.byID[app.ID] = &cp
	m.ids = append(m.ids, app.ID)
	return nil
}

// GetByID returns a copy of the application or nil.
func (m *Memory) GetByID(id string) (*entity.VendorApplication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

// ListByStatus returns applications with the given status, oldest first.
// An empty status returns everything.
func (m *Memory) ListByStatus(status string) ([]*entity.VendorApplication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*entity.VendorApplication
	for _, id := range m.ids {
		if status == "" || m.byID[id].Status == status {
			cp := *m.byID[id]
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Update replaces an existing application; ErrNotFound when absent.
func (m *Memory) Update(app *entity.VendorApplication) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[app.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *app
	m.byID[app.ID] = &cp
	return nil
}
