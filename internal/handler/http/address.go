package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/23prakashjha/Grocery-App/internal/service"
	"github.com/23prakashjha/Grocery-App/pkg/httputil"
	"github.com/23prakashjha/Grocery-App/pkg/validator"
)

// AddressHandler handles the address endpoints.
type AddressHandler struct {
	service *service.Storefront
	logger  *slog.Logger
}

// NewAddressHandler creates an address HTTP handler.
func NewAddressHandler(svc *service.Storefront, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{service: svc, logger: logger}
}

// SelectAddressRequest is the JSON body for picking a delivery address.
type SelectAddressRequest struct {
	AddressID string `json:"address_id" validate:"required"`
}

// GetAddresses handles GET /api/v1/addresses
func (h *AddressHandler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetAddresses(r.Context(), sessionID(r), userID(r))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// SelectAddress handles PUT /api/v1/addresses/selected
func (h *AddressHandler) SelectAddress(w http.ResponseWriter, r *http.Request) {
	var req SelectAddressRequest
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

	view, err := h.service.SelectAddress(r.Context(), sessionID(r), req.AddressID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}
