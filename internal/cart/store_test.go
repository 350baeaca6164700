package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23prakashjha/Grocery-App/internal/domain"
)

type finderMap map[string]domain.Product

func (f finderMap) Find(id string) (domain.Product, bool) {
	p, ok := f[id]
	return p, ok
}

func testProducts() finderMap {
	return finderMap{
		"p1": {ID: "p1", Name: "Apples", OfferPrice: 100},
		"p2": {ID: "p2", Name: "Bread", OfferPrice: 40.5},
		"p3": {ID: "p3", Name: "Milk", OfferPrice: 33.33},
		"p4": {ID: "p4", Name: "Ghee", OfferPrice: 55.55},
	}
}

func TestStore_AddIncrementsQuantity(t *testing.T) {
	s := NewStore()

	s.Add("p1")
	s.Add("p1")
	s.Add("p2")

	assert.Equal(t, 2, s.Quantity("p1"))
	assert.Equal(t, 1, s.Quantity("p2"))
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 2, s.Len())
}

func TestStore_RemoveDecrementsAndDeletesAtZero(t *testing.T) {
	s := NewStore()
	s.Add("p1")
	s.Add("p1")

	s.Remove("p1")
	assert.Equal(t, 1, s.Quantity("p1"))

	s.Remove("p1")
	assert.Equal(t, 0, s.Quantity("p1"))
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Items())
}

func TestStore_RemoveAbsentIsNoOp(t *testing.T) {
	s := NewStore()
	s.Add("p1")

	s.Remove("missing")

	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 1, s.Quantity("p1"))
}

func TestStore_UpdateSetsQuantityDirectly(t *testing.T) {
	s := NewStore()
	s.Add("p1")

	s.Update("p1", 5)
	assert.Equal(t, 5, s.Quantity("p1"))

	// Setting the same value again changes nothing.
	s.Update("p1", 5)
	assert.Equal(t, 5, s.Quantity("p1"))
	assert.Equal(t, 5, s.Count())
}

func TestStore_UpdateBelowOneDeletesEntry(t *testing.T) {
	s := NewStore()
	s.Add("p1")
	s.Add("p2")

	s.Update("p1", 0)
	assert.Equal(t, 0, s.Quantity("p1"))
	assert.Equal(t, 1, s.Len())

	s.Update("p2", -3)
	assert.True(t, s.IsEmpty())
}

func TestStore_CountIsSumOfQuantities(t *testing.T) {
	s := NewStore()
	s.Add("p1")
	s.Add("p1")
	s.Add("p2")
	s.Update("p3", 4)

	assert.Equal(t, 7, s.Count())
}

func TestStore_AmountTruncatesToTwoDecimals(t *testing.T) {
	s := NewStore()
	s.Update("p3", 1) // 33.33

	assert.Equal(t, 33.33, s.Amount(testProducts()))

	s.Clear()
	s.Update("p4", 3) // 166.64999... truncates, never rounds up
	assert.Equal(t, 166.64, s.Amount(testProducts()))
}

func TestStore_AmountSkipsVanishedProducts(t *testing.T) {
	s := NewStore()
	s.Add("p1")
	s.Add("gone")
	s.Add("gone")

	assert.Equal(t, 100.0, s.Amount(testProducts()))
	// The raw count still includes the stale entry.
	assert.Equal(t, 3, s.Count())
}

func TestStore_LinesPreserveInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Add("p2")
	s.Add("p1")
	s.Add("p2")
	s.Add("p3")

	lines := s.Lines(testProducts())
	require.Len(t, lines, 3)
	assert.Equal(t, "p2", lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "p1", lines[1].Product.ID)
	assert.Equal(t, "p3", lines[2].Product.ID)
}

func TestStore_LinesDropVanishedProducts(t *testing.T) {
	s := NewStore()
	s.Add("gone")
	s.Add("p1")

	lines := s.Lines(testProducts())
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].Product.ID)
}

func TestStore_ItemsKeepStaleEntries(t *testing.T) {
	s := NewStore()
	s.Add("p1")
	s.Add("gone")

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, domain.OrderItem{ProductID: "p1", Quantity: 1}, items[0])
	assert.Equal(t, domain.OrderItem{ProductID: "gone", Quantity: 1}, items[1])
}

func TestStore_ClearEmptiesEverything(t *testing.T) {
	s := NewStore()
	s.Add("p1")
	s.Add("p2")

	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Lines(testProducts()))

	// Reusable after clearing.
	s.Add("p3")
	assert.Equal(t, 1, s.Count())
}
