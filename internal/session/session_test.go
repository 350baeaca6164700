package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23prakashjha/Grocery-App/internal/checkout"
	"github.com/23prakashjha/Grocery-App/internal/domain"
)

type finderMap map[string]domain.Product

func (f finderMap) Find(id string) (domain.Product, bool) {
	p, ok := f[id]
	return p, ok
}

type fetcherFunc func(ctx context.Context, userID string) ([]domain.Address, error)

func (f fetcherFunc) FetchAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	return f(ctx, userID)
}

type placerFunc func(ctx context.Context, items []domain.OrderItem, address domain.Address) (string, error)

func (f placerFunc) PlaceOrder(ctx context.Context, items []domain.OrderItem, address domain.Address) (string, error) {
	return f(ctx, items, address)
}

var catalog = finderMap{
	"p1": {ID: "p1", Name: "Apples", OfferPrice: 100},
	"p2": {ID: "p2", Name: "Bread", OfferPrice: 40.5},
}

func addressFetcher(addresses ...domain.Address) fetcherFunc {
	return func(context.Context, string) ([]domain.Address, error) {
		return addresses, nil
	}
}

func okPlacer() placerFunc {
	return func(context.Context, []domain.OrderItem, domain.Address) (string, error) {
		return "Order Placed Successfully", nil
	}
}

func TestSession_CartMutations(t *testing.T) {
	s := New("s1", addressFetcher(), okPlacer())

	s.AddItem("p1")
	s.AddItem("p1")
	s.AddItem("p2")
	s.RemoveItem("p2")
	s.UpdateItem("p1", 3)

	assert.Equal(t, 3, s.CartCount())
	assert.Equal(t, 300.0, s.CartAmount(catalog))

	lines := s.CartLines(catalog)
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].Product.ID)
}

func TestSession_DefaultPaymentIsCOD(t *testing.T) {
	s := New("s1", addressFetcher(), okPlacer())

	assert.Equal(t, domain.PaymentCOD, s.Payment())

	s.SetPayment(domain.PaymentOnline)
	assert.Equal(t, domain.PaymentOnline, s.Payment())
}

func TestSession_SubmitOrderClearsCartOnSuccess(t *testing.T) {
	addr := domain.Address{ID: "a1", Street: "12 MG Road", City: "Pune", State: "MH", Country: "India"}
	var gotItems []domain.OrderItem
	var gotAddr domain.Address

	s := New("s1", addressFetcher(addr), placerFunc(func(_ context.Context, items []domain.OrderItem, a domain.Address) (string, error) {
		gotItems, gotAddr = items, a
		return "Order Placed Successfully", nil
	}))

	require.NoError(t, s.Addresses().Refresh(context.Background(), "u1"))
	s.AddItem("p1")
	s.AddItem("p1")
	s.AddItem("vanished")

	res, err := s.SubmitOrder(context.Background(), catalog)
	require.NoError(t, err)
	assert.Equal(t, "/my-orders", res.Redirect)
	assert.Equal(t, checkout.StateSucceeded, s.CheckoutState())
	assert.Equal(t, 0, s.CartCount())

	// Vanished products never reach the order service.
	assert.Equal(t, []domain.OrderItem{{ProductID: "p1", Quantity: 2}}, gotItems)
	assert.Equal(t, "a1", gotAddr.ID)
}

func TestSession_SubmitOrderFailureKeepsCart(t *testing.T) {
	addr := domain.Address{ID: "a1"}
	s := New("s1", addressFetcher(addr), placerFunc(func(context.Context, []domain.OrderItem, domain.Address) (string, error) {
		return "", &domain.TransportError{Service: "order", Err: errors.New("connection refused")}
	}))

	require.NoError(t, s.Addresses().Refresh(context.Background(), "u1"))
	s.AddItem("p1")

	_, err := s.SubmitOrder(context.Background(), catalog)
	require.Error(t, err)

	assert.Equal(t, 1, s.CartCount())
	assert.Equal(t, checkout.StateFailed, s.CheckoutState())
}

func TestSession_SubmitOrderWithoutAddress(t *testing.T) {
	s := New("s1", addressFetcher(), okPlacer())
	s.AddItem("p1")

	_, err := s.SubmitOrder(context.Background(), catalog)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "no address", verr.Reason)
	assert.Equal(t, 1, s.CartCount())
	assert.Equal(t, checkout.StateIdle, s.CheckoutState())
}

func TestSession_CartStaysUsableDuringSubmit(t *testing.T) {
	addr := domain.Address{ID: "a1"}
	entered := make(chan struct{})
	release := make(chan struct{})

	s := New("s1", addressFetcher(addr), placerFunc(func(context.Context, []domain.OrderItem, domain.Address) (string, error) {
		close(entered)
		<-release
		return "ok", nil
	}))

	require.NoError(t, s.Addresses().Refresh(context.Background(), "u1"))
	s.AddItem("p1")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := s.SubmitOrder(context.Background(), catalog)
		assert.NoError(t, err)
	}()

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("submission never reached the placer")
	}

	// Cart mutations proceed while the order request is in flight.
	s.AddItem("p2")
	assert.Equal(t, 2, s.CartCount())

	_, err := s.SubmitOrder(context.Background(), catalog)
	assert.ErrorIs(t, err, domain.ErrSubmitInFlight)

	close(release)
	<-done
}

func TestSession_ConcurrentMutationsAreSerialized(t *testing.T) {
	s := New("s1", addressFetcher(), okPlacer())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.AddItem("p1")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, s.CartCount())
}
