// Package cart implements the cart store: the authoritative mapping from
// product ID to desired purchase quantity for one shopper session.
//
// The store holds no product data and performs no I/O. Everything
// display-ready is derived on demand by joining against the catalog view, so
// catalog changes propagate automatically without cache invalidation. The
// store is not safe for concurrent use; the owning session serializes access.
package cart

import (
	"math"

	"github.com/23prakashjha/Grocery-App/internal/domain"
)

// ProductFinder looks up a product by ID. *catalog.View satisfies it.
type ProductFinder interface {
	Find(id string) (domain.Product, bool)
}

// Store maps product IDs to positive quantities, preserving the order in
// which products were first added.
type Store struct {
	order []string
	qty   map[string]int
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{qty: make(map[string]int)}
}

// Add increments the quantity for productID by one, creating the entry at 1
// if absent. It never fails.
func (s *Store) Add(productID string) {
	if _, ok := s.qty[productID]; !ok {
		s.order = append(s.order, productID)
	}
	s.qty[productID]++
}

// Remove decrements the quantity for productID by one, deleting the entry
// when it reaches zero. Absent IDs are a no-op.
func (s *Store) Remove(productID string) {
	q, ok := s.qty[productID]
	if !ok {
		return
	}
	if q <= 1 {
		s.delete(productID)
		return
	}
	s.qty[productID] = q - 1
}

// Update sets the quantity for productID directly, creating the entry if
// absent. A quantity below one deletes the entry so a zero-quantity line can
// never persist.
func (s *Store) Update(productID string, quantity int) {
	if quantity < 1 {
		s.delete(productID)
		return
	}
	if _, ok := s.qty[productID]; !ok {
		s.order = append(s.order, productID)
	}
	s.qty[productID] = quantity
}

// Quantity returns the quantity for productID, zero if absent.
func (s *Store) Quantity(productID string) int {
	return s.qty[productID]
}

// Count returns the total number of units across all entries.
func (s *Store) Count() int {
	total := 0
	for _, q := range s.qty {
		total += q
	}
	return total
}

// Len returns the number of distinct line items.
func (s *Store) Len() int {
	return len(s.qty)
}

// IsEmpty reports whether the cart holds no entries.
func (s *Store) IsEmpty() bool {
	return len(s.qty) == 0
}

// Amount sums offer price times quantity over every entry whose product is
// still in the catalog, truncated to two decimal places. Entries referencing
// vanished products contribute nothing; that is expected data skew between
// the independent cart and catalog lifecycles, not a fault.
func (s *Store) Amount(products ProductFinder) float64 {
	total := 0.0
	for id, q := range s.qty {
		p, ok := products.Find(id)
		if !ok || q <= 0 {
			continue
		}
		total += p.OfferPrice * float64(q)
	}
	return math.Floor(total*100) / 100
}

// Lines derives the cart projection: one line per entry with a matching
// catalog product, in the order products were first added. Entries without a
// catalog match are dropped silently. The result is a fresh slice; it is
// never cached, so it is always consistent with both inputs.
func (s *Store) Lines(products ProductFinder) []domain.CartLine {
	lines := make([]domain.CartLine, 0, len(s.order))
	for _, id := range s.order {
		p, ok := products.Find(id)
		if !ok {
			continue
		}
		lines = append(lines, domain.CartLine{Product: p, Quantity: s.qty[id]})
	}
	return lines
}

// Items returns the (product ID, quantity) pairs in insertion order,
// including entries without a catalog match. Order submission filters
// through Lines instead.
func (s *Store) Items() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, domain.OrderItem{ProductID: id, Quantity: s.qty[id]})
	}
	return items
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.order = s.order[:0]
	s.qty = make(map[string]int)
}

func (s *Store) delete(productID string) {
	if _, ok := s.qty[productID]; !ok {
		return
	}
	delete(s.qty, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
