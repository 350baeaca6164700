package client

import (
	"context"
	"fmt"

	"github.com/23prakashjha/Grocery-App/internal/domain"
)

// CatalogClient fetches the product list from the catalog service.
type CatalogClient struct {
	baseURL string
	http    Doer
}

// NewCatalogClient creates a catalog client for the given base URL.
func NewCatalogClient(baseURL string, http Doer) *CatalogClient {
	return &CatalogClient{baseURL: baseURL, http: http}
}

type productListEnvelope struct {
	Success  bool             `json:"success"`
	Products []domain.Product `json:"products"`
	Message  string           `json:"message"`
}

// FetchProducts returns the full catalog snapshot.
func (c *CatalogClient) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	resp, err := c.http.Get(ctx, c.baseURL+"/api/products")
	if err != nil {
		return nil, &domain.TransportError{Service: "catalog", Err: err}
	}

	var env productListEnvelope
	if err := decodeEnvelope("catalog", resp, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &domain.RemoteError{Service: "catalog", Message: env.Message}
	}
	return env.Products, nil
}

// Ping checks catalog reachability for readiness probes.
func (c *CatalogClient) Ping(ctx context.Context) error {
	resp, err := c.http.Get(ctx, c.baseURL+"/api/products")
	if err != nil {
		return fmt.Errorf("catalog unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}
