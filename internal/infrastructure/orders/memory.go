// Package orders provides the in-memory order repository.
package orders

import (
	"sort"
	"sync"

	"github.com/aplusmed/marketplace-api/internal/domain"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
)

// Memory is a mutex-guarded order set.
type Memory struct {
	mu   sync.RWMutex
	byID map[string]*entity.Order
	ids  []string // insertion order
}

// NewMemory builds an empty repository.
func NewMemory() *Memory {
	return &Memory{byID: make(map[string]*entity.Order)}
}

// Create stores a new order; ErrConflict on a duplicate id.
func (m *Memory) Create(order *entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[order.ID]; ok {
		return domain.ErrConflict
	}
	cp := *order
	m.byID[order.ID] = &cp
	m.ids = append(m.ids, order.ID)
	return nil
}

// GetByID returns a copy of the order or nil.
func (m *Memory) GetByID(id string) (*entity.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

// ListByCustomer returns the customer's orders, newest first.
func (m *Memory) ListByCustomer(email string) ([]*entity.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*entity.Order
	for _, id := range m.ids {
		if m.byID[id].CustomerEmail == email {
			cp := *m.byID[id]
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// List returns all orders in insertion order.
func (m *Memory) List() ([]*entity.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*entity.Order, 0, len(m.ids))
	for _, id := range m.ids {
		cp := *m.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}
