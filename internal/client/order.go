package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/23prakashjha/Grocery-App/internal/domain"
)

// OrderClient places cash-on-delivery orders with the order service.
type OrderClient struct {
	baseURL string
	http    Doer
}

// NewOrderClient creates an order client for the given base URL.
func NewOrderClient(baseURL string, http Doer) *OrderClient {
	return &OrderClient{baseURL: baseURL, http: http}
}

type codOrderRequest struct {
	Items   []domain.OrderItem `json:"items"`
	Address string             `json:"address"`
}

type codOrderEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PlaceOrder submits a COD order and returns the server's confirmation
// message. A success=false envelope carries the server's rejection message
// through verbatim.
func (c *OrderClient) PlaceOrder(ctx context.Context, items []domain.OrderItem, address domain.Address) (string, error) {
	payload, err := json.Marshal(codOrderRequest{Items: items, Address: address.ID})
	if err != nil {
		return "", &domain.TransportError{Service: "order", Err: fmt.Errorf("encode request: %w", err)}
	}

	resp, err := c.http.Post(ctx, c.baseURL+"/api/order/cod", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", &domain.TransportError{Service: "order", Err: err}
	}

	var env codOrderEnvelope
	if err := decodeEnvelope("order", resp, &env); err != nil {
		return "", err
	}
	if !env.Success {
		return "", &domain.RemoteError{Service: "order", Message: env.Message}
	}
	return env.Message, nil
}
