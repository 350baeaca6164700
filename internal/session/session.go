// Package session ties one shopper's cart, address selection, payment choice
// and checkout state machine together and serializes access to them.
package session

import (
	"context"
	"sync"

	"github.com/23prakashjha/Grocery-App/internal/address"
	"github.com/23prakashjha/Grocery-App/internal/cart"
	"github.com/23prakashjha/Grocery-App/internal/checkout"
	"github.com/23prakashjha/Grocery-App/internal/domain"
)

// Session is one shopper's live state. A mutex serializes cart and payment
// mutations; the address resolver and the submitter carry their own locks so
// their network round trips never block cart updates.
type Session struct {
	id string

	mu      sync.Mutex
	cart    *cart.Store
	payment domain.PaymentOption

	addresses *address.Resolver
	submitter *checkout.Submitter
}

// New creates a session with an empty cart, COD payment preselected and the
// checkout state machine idle.
func New(id string, fetcher address.Fetcher, placer checkout.OrderPlacer) *Session {
	return &Session{
		id:        id,
		cart:      cart.NewStore(),
		payment:   domain.PaymentCOD,
		addresses: address.NewResolver(fetcher),
		submitter: checkout.NewSubmitter(placer),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// AddItem increments the cart quantity for productID.
func (s *Session) AddItem(productID string) {
	s.mu.Lock()
	s.cart.Add(productID)
	s.mu.Unlock()
}

// RemoveItem decrements the cart quantity for productID.
func (s *Session) RemoveItem(productID string) {
	s.mu.Lock()
	s.cart.Remove(productID)
	s.mu.Unlock()
}

// UpdateItem sets the cart quantity for productID.
func (s *Session) UpdateItem(productID string, quantity int) {
	s.mu.Lock()
	s.cart.Update(productID, quantity)
	s.mu.Unlock()
}

// ClearCart removes every cart entry.
func (s *Session) ClearCart() {
	s.mu.Lock()
	s.cart.Clear()
	s.mu.Unlock()
}

// Quantity returns the cart quantity for productID, zero if absent.
func (s *Session) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Quantity(productID)
}

// CartCount returns the total number of units in the cart.
func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// CartAmount returns the cart total over products present in the catalog,
// truncated to two decimals.
func (s *Session) CartAmount(products cart.ProductFinder) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Amount(products)
}

// CartLines returns the display projection of the cart against the catalog.
func (s *Session) CartLines(products cart.ProductFinder) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines(products)
}

// Payment returns the selected payment option.
func (s *Session) Payment() domain.PaymentOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payment
}

// SetPayment records the payment option. Pure selection; nothing is
// submitted until SubmitOrder.
func (s *Session) SetPayment(p domain.PaymentOption) {
	s.mu.Lock()
	s.payment = p
	s.mu.Unlock()
}

// Addresses returns the session's address resolver.
func (s *Session) Addresses() *address.Resolver {
	return s.addresses
}

// CheckoutState returns the submitter's current phase.
func (s *Session) CheckoutState() checkout.State {
	return s.submitter.State()
}

// SubmitOrder snapshots the cart against the catalog and hands the order to
// the checkout state machine. The session lock is dropped before the network
// round trip, so the cart stays usable while the order is in flight; the
// submitter itself rejects overlapping submissions. On success the cart is
// cleared.
func (s *Session) SubmitOrder(ctx context.Context, products cart.ProductFinder) (*checkout.SubmitResult, error) {
	s.mu.Lock()
	lines := s.cart.Lines(products)
	payment := s.payment
	s.mu.Unlock()

	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{ProductID: l.Product.ID, Quantity: l.Quantity})
	}

	var addr *domain.Address
	if a, ok := s.addresses.Selected(); ok {
		addr = &a
	}

	res, err := s.submitter.Submit(ctx, checkout.SubmitInput{
		Address: addr,
		Items:   items,
		Payment: payment,
	})
	if err != nil {
		return nil, err
	}

	s.ClearCart()
	return res, nil
}
