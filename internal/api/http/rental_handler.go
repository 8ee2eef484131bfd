package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/service"

	"github.com/gorilla/mux"
)

// RentalHandler exposes the rental service over HTTP
type RentalHandler struct {
	rentalSvc service.RentalService
}

// NewRentalHandler creates a new rental handler
func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type checkoutPayload struct {
	ToolCode        string `json:"tool_code"`
	CheckOutDate    string `json:"check_out_date"` // yyyy-mm-dd
	RentalDays      int    `json:"rental_days"`
	DiscountPercent int    `json:"discount_percent"`
}

type checkinPayload struct {
	ToolCode string `json:"tool_code"`
}

type agreementResponse struct {
	Agreement *domain.RentalAgreement `json:"agreement"`
	Rendered  string                  `json:"rendered"`
}

type errorResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// HandleCheckout handles POST requests to price a rental transaction
func (h *RentalHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var payload checkoutPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Reason:  string(domain.FailureInvalidInput),
			Message: "request body must be valid JSON",
		})
		return
	}

	// A missing date stays zero so the service reports it as absent; a
	// malformed one is rejected here at the transport boundary.
	var checkOutDate time.Time
	if payload.CheckOutDate != "" {
		parsed, err := time.Parse("2006-01-02", payload.CheckOutDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Reason:  string(domain.FailureInvalidInput),
				Message: "check_out_date must be formatted yyyy-mm-dd",
			})
			return
		}
		checkOutDate = parsed
	}

	agreement, err := h.rentalSvc.Checkout(r.Context(), domain.CheckoutRequest{
		ToolCode:        payload.ToolCode,
		CheckOutDate:    checkOutDate,
		RentalDays:      payload.RentalDays,
		DiscountPercent: payload.DiscountPercent,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, agreementResponse{
		Agreement: agreement,
		Rendered:  agreement.PrettyPrint(),
	})
}

// HandleCheckin handles POST requests for tool returns
func (h *RentalHandler) HandleCheckin(w http.ResponseWriter, r *http.Request) {
	var payload checkinPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Reason:  string(domain.FailureInvalidInput),
			Message: "request body must be valid JSON",
		})
		return
	}

	err := h.rentalSvc.Checkin(r.Context(), domain.CheckinRequest{ToolCode: payload.ToolCode})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotSupported) {
		writeJSON(w, http.StatusNotImplemented, errorResponse{
			Reason:  "NOT_SUPPORTED",
			Message: "this operation is not supported yet",
		})
		return
	}

	var rentalErr *domain.RentalError
	if errors.As(err, &rentalErr) {
		writeJSON(w, statusForReason(rentalErr.Reason), errorResponse{
			Reason:  string(rentalErr.Reason),
			Message: rentalErr.Message,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Reason:  string(domain.FailureInternal),
		Message: "an unexpected error occurred",
	})
}

func statusForReason(reason domain.FailureReason) int {
	switch reason {
	case domain.FailureInvalidInput:
		return http.StatusBadRequest
	case domain.FailureToolNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// RegisterRentalRoutes registers the rental HTTP endpoints
func RegisterRentalRoutes(router *mux.Router, rentalSvc service.RentalService) {
	handler := NewRentalHandler(rentalSvc)
	router.Use(RequestID)
	router.HandleFunc("/api/v1/checkout", handler.HandleCheckout).Methods("POST")
	router.HandleFunc("/api/v1/checkin", handler.HandleCheckin).Methods("POST")
}
