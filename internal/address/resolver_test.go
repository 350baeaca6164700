package address

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23prakashjha/Grocery-App/internal/domain"
)

type fetcherFunc func(ctx context.Context, userID string) ([]domain.Address, error)

func (f fetcherFunc) FetchAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	return f(ctx, userID)
}

var sampleAddresses = []domain.Address{
	{ID: "a1", Street: "12 MG Road", City: "Pune", State: "MH", Country: "India"},
	{ID: "a2", Street: "4 Park Street", City: "Kolkata", State: "WB", Country: "India"},
}

func TestResolver_RefreshAutoSelectsFirst(t *testing.T) {
	r := NewResolver(fetcherFunc(func(_ context.Context, userID string) ([]domain.Address, error) {
		assert.Equal(t, "u1", userID)
		return sampleAddresses, nil
	}))

	require.NoError(t, r.Refresh(context.Background(), "u1"))

	sel, ok := r.Selected()
	require.True(t, ok)
	assert.Equal(t, "a1", sel.ID)
	assert.Len(t, r.Addresses(), 2)
}

func TestResolver_RefreshKeepsExistingSelection(t *testing.T) {
	r := NewResolver(fetcherFunc(func(context.Context, string) ([]domain.Address, error) {
		return sampleAddresses, nil
	}))

	r.Select(sampleAddresses[1])
	require.NoError(t, r.Refresh(context.Background(), "u1"))

	sel, ok := r.Selected()
	require.True(t, ok)
	assert.Equal(t, "a2", sel.ID)
}

func TestResolver_RefreshEmptyListLeavesNoSelection(t *testing.T) {
	r := NewResolver(fetcherFunc(func(context.Context, string) ([]domain.Address, error) {
		return nil, nil
	}))

	require.NoError(t, r.Refresh(context.Background(), "u1"))

	_, ok := r.Selected()
	assert.False(t, ok)
	assert.Empty(t, r.Addresses())
}

func TestResolver_RefreshFailureKeepsPreviousSnapshot(t *testing.T) {
	calls := 0
	r := NewResolver(fetcherFunc(func(context.Context, string) ([]domain.Address, error) {
		calls++
		if calls == 1 {
			return sampleAddresses, nil
		}
		return nil, errors.New("address service down")
	}))

	require.NoError(t, r.Refresh(context.Background(), "u1"))
	require.Error(t, r.Refresh(context.Background(), "u1"))

	sel, ok := r.Selected()
	require.True(t, ok)
	assert.Equal(t, "a1", sel.ID)
	assert.Len(t, r.Addresses(), 2)
}

func TestResolver_SelectByID(t *testing.T) {
	r := NewResolver(fetcherFunc(func(context.Context, string) ([]domain.Address, error) {
		return sampleAddresses, nil
	}))
	require.NoError(t, r.Refresh(context.Background(), "u1"))

	assert.True(t, r.SelectByID("a2"))
	sel, _ := r.Selected()
	assert.Equal(t, "a2", sel.ID)

	assert.False(t, r.SelectByID("missing"))
	sel, _ = r.Selected()
	assert.Equal(t, "a2", sel.ID)
}
