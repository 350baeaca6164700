package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/23prakashjha/Grocery-App/internal/service"
	"github.com/23prakashjha/Grocery-App/pkg/httputil"
	"github.com/23prakashjha/Grocery-App/pkg/validator"
)

// CheckoutHandler handles the checkout endpoints.
type CheckoutHandler struct {
	service *service.Storefront
	logger  *slog.Logger
}

// NewCheckoutHandler creates a checkout HTTP handler.
func NewCheckoutHandler(svc *service.Storefront, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{service: svc, logger: logger}
}

// SetPaymentRequest is the JSON body for choosing a payment option.
type SetPaymentRequest struct {
	Payment string `json:"payment" validate:"required,oneof=COD Online"`
}

// GetCheckout handles GET /api/v1/checkout
func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetCheckout(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// SetPayment handles PUT /api/v1/checkout/payment
func (h *CheckoutHandler) SetPayment(w http.ResponseWriter, r *http.Request) {
	var req SetPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	view, err := h.service.SetPayment(r.Context(), sessionID(r), req.Payment)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// SubmitOrder handles POST /api/v1/checkout/order
func (h *CheckoutHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.SubmitOrder(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: res})
}
