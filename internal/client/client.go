// Package client holds thin HTTP clients for the downstream catalog, address
// and order services. Each client speaks the service's success-flag envelope
// and translates the three failure shapes the storefront distinguishes: a
// well-formed rejection becomes a RemoteError carrying the server's message
// verbatim, everything else becomes a TransportError.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/23prakashjha/Grocery-App/internal/domain"
)

// Doer is the subset of the HTTP client the downstream clients need. Both
// the plain retrying client and its circuit breaker wrapper satisfy it.
type Doer interface {
	Get(ctx context.Context, url string) (*http.Response, error)
	Post(ctx context.Context, url, contentType string, body io.Reader) (*http.Response, error)
}

const maxBodyBytes = 1 << 20

// decodeEnvelope reads and decodes a response body into out, which must
// embed the success-flag envelope. Decode failures are transport failures.
func decodeEnvelope(service string, resp *http.Response, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &domain.TransportError{Service: service, Err: fmt.Errorf("read response: %w", err)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &domain.TransportError{
			Service: service,
			Err:     fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err),
		}
	}
	return nil
}
