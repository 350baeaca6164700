// Package catalog holds the storefront's read-only view of the product
// catalog. The catalog service owns the data; the view is a snapshot that is
// replaced wholesale on refresh, never edited in place.
package catalog

import (
	"sync"

	"github.com/23prakashjha/Grocery-App/internal/domain"
)

// View is an ordered, atomically replaceable snapshot of catalog products.
type View struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int
}

// NewView creates an empty catalog view.
func NewView() *View {
	return &View{index: make(map[string]int)}
}

// Replace swaps in a new product list as a single atomic update.
func (v *View) Replace(products []domain.Product) {
	index := make(map[string]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}

	v.mu.Lock()
	v.products = products
	v.index = index
	v.mu.Unlock()
}

// Find returns the product with the given ID, if present.
func (v *View) Find(id string) (domain.Product, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	i, ok := v.index[id]
	if !ok {
		return domain.Product{}, false
	}
	return v.products[i], true
}

// Products returns a copy of the snapshot in catalog order.
func (v *View) Products() []domain.Product {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]domain.Product, len(v.products))
	copy(out, v.products)
	return out
}

// Len returns the number of products in the snapshot.
func (v *View) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.products)
}
