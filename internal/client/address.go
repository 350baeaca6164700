package client

import (
	"context"
	"net/url"

	"github.com/23prakashjha/Grocery-App/internal/domain"
)

// AddressClient fetches delivery addresses from the address service.
type AddressClient struct {
	baseURL string
	http    Doer
}

// NewAddressClient creates an address client for the given base URL.
func NewAddressClient(baseURL string, http Doer) *AddressClient {
	return &AddressClient{baseURL: baseURL, http: http}
}

type addressListEnvelope struct {
	Success   bool             `json:"success"`
	Addresses []domain.Address `json:"addresses"`
	Message   string           `json:"message"`
}

// FetchAddresses returns the addresses stored for userID.
func (c *AddressClient) FetchAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	u := c.baseURL + "/api/address/get?userId=" + url.QueryEscape(userID)

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, &domain.TransportError{Service: "address", Err: err}
	}

	var env addressListEnvelope
	if err := decodeEnvelope("address", resp, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &domain.RemoteError{Service: "address", Message: env.Message}
	}
	return env.Addresses, nil
}
