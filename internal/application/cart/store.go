// Package cart owns the working set of line items for checkout. There are no
// recoverable errors here: every input is normalized by clamping, a deliberate
// trade-off that keeps the cart always-valid instead of rejecting calls.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/aplusmed/marketplace-api/internal/application/ports"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
)

// Namespace of the persisted cart record.
const Namespace = "cart-storage"

// Store holds the ordered cart lines, at most one per product id. Quantity is
// always in [1, stock]. Every mutation persists the collection synchronously.
type Store struct {
	mu    sync.Mutex
	items []entity.CartItem
	state ports.StateStore
}

// New builds the store and restores the persisted cart. A missing or
// malformed record yields the empty cart; restored lines are re-clamped so
// the invariant holds even if the record was edited by hand.
func New(state ports.StateStore) *Store {
	s := &Store{state: state}
	var items []entity.CartItem
	if found, err := state.Load(Namespace, &items); err == nil && found {
		for _, it := range items {
			if it.ProductID == "" || it.Stock < 1 {
				continue
			}
			it.Quantity = clamp(it.Quantity, it.Stock)
			s.items = append(s.items, it)
		}
	}
	return s
}

// clamp forces q into [1, stock]; stock is assumed >= 1.
func clamp(q, stock int) int {
	if q > stock {
		q = stock
	}
	if q < 1 {
		q = 1
	}
	return q
}

// AddItem inserts a snapshot of the product, or raises the existing line's
// quantity when the product is already present. The stored quantity is capped
// at the stock ceiling without error; the value actually stored is returned so
// callers can surface "reduced due to availability" if they want to. A product
// with zero stock is not added and 0 is returned.
func (s *Store) AddItem(p *entity.Product, quantity int) int {
	if p == nil || p.ID == "" || p.Stock < 1 {
		return 0
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == p.ID {
			s.items[i].Quantity = clamp(s.items[i].Quantity+quantity, s.items[i].Stock)
			q := s.items[i].Quantity
			s.persistLocked()
			return q
		}
	}

	item := entity.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  clamp(quantity, p.Stock),
		Stock:     p.Stock,
		Image:     p.Image,
		Category:  p.Category,
		Supplier:  p.Supplier,
	}
	s.items = append(s.items, item)
	s.persistLocked()
	return item.Quantity
}

// RemoveItem drops the line if present; no-op otherwise.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity clamped to [1, stock]. Zero or
// negative removes the line; an unknown product id is a no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = clamp(quantity, s.items[i].Stock)
			s.persistLocked()
			return
		}
	}
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total sums price*quantity over all lines at full precision. Recomputed on
// demand, never cached; rounding happens only at presentation time.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// ItemsCount sums quantities across lines (the cart badge number), not the
// count of distinct lines.
func (s *Store) ItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persistLocked()
}

// persistLocked writes the collection; caller holds the mutex.
func (s *Store) persistLocked() {
	items := s.items
	if items == nil {
		items = []entity.CartItem{}
	}
	_ = s.state.Save(Namespace, items)
}
