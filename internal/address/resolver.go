// Package address keeps a session's fetched delivery addresses and the
// selected one. The address service owns the data; this is a client-side
// snapshot refreshed on demand.
package address

import (
	"context"
	"sync"

	"github.com/23prakashjha/Grocery-App/internal/domain"
	"github.com/23prakashjha/Grocery-App/pkg/logger"
)

// Fetcher loads the delivery addresses of one user from the address service.
type Fetcher interface {
	FetchAddresses(ctx context.Context, userID string) ([]domain.Address, error)
}

// Resolver caches fetched addresses and tracks the selection. Selection
// defaults to the first fetched address so checkout works without an
// explicit pick. A failed refresh keeps the previous snapshot; address
// problems must never take the cart down with them.
type Resolver struct {
	fetcher Fetcher

	mu        sync.Mutex
	addresses []domain.Address
	selected  *domain.Address
}

// NewResolver creates a resolver with no addresses loaded.
func NewResolver(fetcher Fetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// Refresh fetches the user's addresses and replaces the snapshot. If no
// address is selected yet, the first fetched one is selected automatically.
// On error the snapshot and selection stay as they were and the error is
// returned for logging only.
func (r *Resolver) Refresh(ctx context.Context, userID string) error {
	addresses, err := r.fetcher.FetchAddresses(ctx, userID)
	if err != nil {
		logger.WithContext(ctx).Warn("address refresh failed", "error", err)
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.addresses = addresses
	if r.selected == nil && len(addresses) > 0 {
		first := addresses[0]
		r.selected = &first
	}
	return nil
}

// Select makes addr the selected address regardless of the snapshot.
func (r *Resolver) Select(addr domain.Address) {
	r.mu.Lock()
	r.selected = &addr
	r.mu.Unlock()
}

// SelectByID selects the snapshot address with the given ID. It reports
// whether the ID was found; an unknown ID leaves the selection unchanged.
func (r *Resolver) SelectByID(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.addresses {
		if a.ID == id {
			addr := a
			r.selected = &addr
			return true
		}
	}
	return false
}

// Selected returns a copy of the selected address, if any.
func (r *Resolver) Selected() (domain.Address, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.selected == nil {
		return domain.Address{}, false
	}
	return *r.selected, true
}

// Addresses returns a copy of the current snapshot.
func (r *Resolver) Addresses() []domain.Address {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Address, len(r.addresses))
	copy(out, r.addresses)
	return out
}
