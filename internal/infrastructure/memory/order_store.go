package memory

import (
	"sync"

	"github.com/wms-platform/sla-service/internal/domain"
)

// OrderStore holds the in-memory order list. Orders live only for the
// duration of a dashboard session: an upload replaces the list, a clear
// discards it. Evaluations are derived on read and never stored.
type OrderStore struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewOrderStore creates an empty OrderStore
func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Replace swaps the entire order list
func (s *OrderStore) Replace(orders []domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]domain.Order(nil), orders...)
}

// Append adds orders to the current list
func (s *OrderStore) Append(orders []domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, orders...)
}

// All returns a copy of the current order list
func (s *OrderStore) All() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Order(nil), s.orders...)
}

// Count returns the number of stored orders
func (s *OrderStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// Clear discards all orders
func (s *OrderStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
}
