package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/23prakashjha/Grocery-App/internal/domain"
	"github.com/23prakashjha/Grocery-App/pkg/httpclient"
	"github.com/23prakashjha/Grocery-App/pkg/httputil"
)

// writeError maps the checkout error taxonomy onto HTTP statuses before
// handing anything else to the shared error writer. A remote rejection keeps
// the downstream service's message verbatim; transport failures get a
// generic message so infrastructure details never reach the shopper.
func writeError(w http.ResponseWriter, r *http.Request, err error, log *slog.Logger) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "VALIDATION_ERROR", Message: verr.Reason},
		})
		return
	}

	var rerr *domain.RemoteError
	if errors.As(err, &rerr) {
		httputil.WriteJSON(w, http.StatusBadGateway, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "UPSTREAM_REJECTED", Message: rerr.Message},
		})
		return
	}

	var terr *domain.TransportError
	if errors.As(err, &terr) || errors.Is(err, httpclient.ErrCircuitOpen) {
		log.Warn("downstream unavailable", slog.String("error", err.Error()))
		httputil.WriteJSON(w, http.StatusServiceUnavailable, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "UPSTREAM_UNAVAILABLE", Message: "service temporarily unavailable, try again"},
		})
		return
	}

	if errors.Is(err, domain.ErrSubmitInFlight) {
		httputil.WriteJSON(w, http.StatusConflict, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "SUBMIT_IN_FLIGHT", Message: err.Error()},
		})
		return
	}

	if errors.Is(err, domain.ErrOnlineNotSupported) {
		httputil.WriteJSON(w, http.StatusNotImplemented, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: err.Error()},
		})
		return
	}

	httputil.WriteError(w, r, err, log)
}
