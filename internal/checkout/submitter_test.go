package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23prakashjha/Grocery-App/internal/domain"
)

type placerFunc func(ctx context.Context, items []domain.OrderItem, address domain.Address) (string, error)

func (f placerFunc) PlaceOrder(ctx context.Context, items []domain.OrderItem, address domain.Address) (string, error) {
	return f(ctx, items, address)
}

func validInput() SubmitInput {
	return SubmitInput{
		Address: &domain.Address{ID: "a1", Street: "12 MG Road", City: "Pune", State: "MH", Country: "India"},
		Items:   []domain.OrderItem{{ProductID: "p1", Quantity: 2}},
		Payment: domain.PaymentCOD,
	}
}

func TestSubmitter_Success(t *testing.T) {
	var gotItems []domain.OrderItem
	s := NewSubmitter(placerFunc(func(_ context.Context, items []domain.OrderItem, address domain.Address) (string, error) {
		gotItems = items
		assert.Equal(t, "a1", address.ID)
		return "Order Placed Successfully", nil
	}))

	res, err := s.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "Order Placed Successfully", res.Message)
	assert.Equal(t, "/my-orders", res.Redirect)
	assert.Equal(t, StateSucceeded, s.State())
	assert.Equal(t, []domain.OrderItem{{ProductID: "p1", Quantity: 2}}, gotItems)
}

func TestSubmitter_NoAddressFailsBeforeAnyNetworkCall(t *testing.T) {
	s := NewSubmitter(placerFunc(func(context.Context, []domain.OrderItem, domain.Address) (string, error) {
		t.Fatal("placer must not be called")
		return "", nil
	}))

	in := validInput()
	in.Address = nil

	_, err := s.Submit(context.Background(), in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "no address", verr.Reason)
	assert.Equal(t, StateIdle, s.State())
}

func TestSubmitter_EmptyCartFailsBeforeAnyNetworkCall(t *testing.T) {
	s := NewSubmitter(placerFunc(func(context.Context, []domain.OrderItem, domain.Address) (string, error) {
		t.Fatal("placer must not be called")
		return "", nil
	}))

	in := validInput()
	in.Items = nil

	_, err := s.Submit(context.Background(), in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "empty cart", verr.Reason)
	assert.Equal(t, StateIdle, s.State())
}

func TestSubmitter_AddressCheckedBeforeCart(t *testing.T) {
	s := NewSubmitter(placerFunc(func(context.Context, []domain.OrderItem, domain.Address) (string, error) {
		return "", nil
	}))

	_, err := s.Submit(context.Background(), SubmitInput{Payment: domain.PaymentCOD})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "no address", verr.Reason)
}

func TestSubmitter_OnlinePaymentUnsupported(t *testing.T) {
	s := NewSubmitter(placerFunc(func(context.Context, []domain.OrderItem, domain.Address) (string, error) {
		t.Fatal("placer must not be called")
		return "", nil
	}))

	in := validInput()
	in.Payment = domain.PaymentOnline

	_, err := s.Submit(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrOnlineNotSupported)
	assert.Equal(t, StateIdle, s.State())
}

func TestSubmitter_RejectsConcurrentSubmit(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	s := NewSubmitter(placerFunc(func(context.Context, []domain.OrderItem, domain.Address) (string, error) {
		close(entered)
		<-release
		return "ok", nil
	}))

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), validInput())
		done <- err
	}()

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("first submit never reached the placer")
	}

	_, err := s.Submit(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
}

func TestSubmitter_FailureIsRetryable(t *testing.T) {
	calls := 0
	s := NewSubmitter(placerFunc(func(context.Context, []domain.OrderItem, domain.Address) (string, error) {
		calls++
		if calls == 1 {
			return "", &domain.TransportError{Service: "order", Err: errors.New("connection refused")}
		}
		return "Order Placed Successfully", nil
	}))

	_, err := s.Submit(context.Background(), validInput())
	var terr *domain.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, StateFailed, s.State())

	res, err := s.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "Order Placed Successfully", res.Message)
	assert.Equal(t, StateSucceeded, s.State())
}

func TestSubmitter_RemoteRejectionSurfacesServerMessage(t *testing.T) {
	s := NewSubmitter(placerFunc(func(context.Context, []domain.OrderItem, domain.Address) (string, error) {
		return "", &domain.RemoteError{Service: "order", Message: "Insufficient stock"}
	}))

	_, err := s.Submit(context.Background(), validInput())

	var rerr *domain.RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "Insufficient stock", rerr.Message)
}
