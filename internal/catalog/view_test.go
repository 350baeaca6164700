package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23prakashjha/Grocery-App/internal/domain"
)

func TestView_ReplaceAndFind(t *testing.T) {
	v := NewView()

	_, ok := v.Find("p1")
	assert.False(t, ok)

	v.Replace([]domain.Product{
		{ID: "p1", Name: "Apples", OfferPrice: 100},
		{ID: "p2", Name: "Bread", OfferPrice: 40.5},
	})

	p, ok := v.Find("p2")
	require.True(t, ok)
	assert.Equal(t, "Bread", p.Name)
	assert.Equal(t, 2, v.Len())
}

func TestView_ReplaceDropsVanishedProducts(t *testing.T) {
	v := NewView()
	v.Replace([]domain.Product{{ID: "p1"}, {ID: "p2"}})

	v.Replace([]domain.Product{{ID: "p2"}})

	_, ok := v.Find("p1")
	assert.False(t, ok)
	_, ok = v.Find("p2")
	assert.True(t, ok)
}

func TestView_ProductsReturnsCopy(t *testing.T) {
	v := NewView()
	v.Replace([]domain.Product{{ID: "p1", Name: "Apples"}})

	products := v.Products()
	products[0].Name = "mutated"

	p, _ := v.Find("p1")
	assert.Equal(t, "Apples", p.Name)
}

func TestView_ConcurrentReadsDuringReplace(t *testing.T) {
	v := NewView()
	v.Replace([]domain.Product{{ID: "p1"}})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				v.Find("p1")
				v.Len()
			}
		}()
	}
	for i := 0; i < 100; i++ {
		v.Replace([]domain.Product{{ID: "p1"}, {ID: "p2"}})
	}
	wg.Wait()

	assert.Equal(t, 2, v.Len())
}
