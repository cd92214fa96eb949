package order

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"restaurant-ordering/internal/apperrors"
	"restaurant-ordering/internal/logger"
	"restaurant-ordering/internal/models"
)

const requestTimeout = 30 * time.Second

// Handler handles HTTP requests for the order service
type Handler struct {
	service *Service
	logger  *logger.Logger
	devMode bool
}

// NewHandler creates a new order handler. In development mode error responses
// carry a detail message; in production they do not leak internals.
func NewHandler(service *Service, log *logger.Logger, devMode bool) *Handler {
	return &Handler{
		service: service,
		logger:  log,
		devMode: devMode,
	}
}

// SubmitOrder handles POST /api/orders
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var sub models.OrderSubmission
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&sub); err != nil {
		h.logger.Error("validation_failed", "Failed to parse order submission", requestID, err, nil)
		h.writeError(w, http.StatusBadRequest, "Invalid JSON format", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	order, err := h.service.SubmitOrder(ctx, &sub, requestID)
	if err != nil {
		h.writeServiceError(w, "Failed to create order", err, requestID)
		return
	}

	h.writeJSON(w, http.StatusCreated, models.SubmitOrderResponse{
		Message:           "Order placed successfully",
		OrderID:           order.OrderID,
		EstimatedDelivery: order.EstimatedDelivery,
		Order:             order,
	})
}

// GetOrder handles GET /api/orders/{orderID}
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()
	orderID := chi.URLParam(r, "orderID")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	order, err := h.service.GetOrder(ctx, orderID, requestID)
	if err != nil {
		h.writeServiceError(w, "Failed to fetch order", err, requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PUT /api/orders/{orderID}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()
	orderID := chi.URLParam(r, "orderID")

	var req models.UpdateStatusRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse status update", requestID, err, nil)
		h.writeError(w, http.StatusBadRequest, "Invalid JSON format", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	order, err := h.service.UpdateStatus(ctx, orderID, req.Status, requestID)
	if err != nil {
		h.writeServiceError(w, "Failed to update order status", err, requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, models.UpdateStatusResponse{
		Message: "Order status updated successfully",
		Order:   order,
	})
}

// ListOrders handles GET /api/orders
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	filter := ListFilter{
		Status:   r.URL.Query().Get("status"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "limit"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	page, err := h.service.ListOrders(ctx, filter, requestID)
	if err != nil {
		h.writeServiceError(w, "Failed to fetch orders", err, requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, page)
}

// HealthCheck handles GET /api/health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if !h.service.HealthCheck(ctx) {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unavailable",
			"message":   "Restaurant API store is unreachable",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"message":   "Restaurant API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// writeServiceError maps service errors onto HTTP responses
func (h *Handler) writeServiceError(w http.ResponseWriter, message string, err error, requestID string) {
	switch {
	case apperrors.IsValidation(err):
		h.writeError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, apperrors.ErrOrderNotFound):
		h.writeError(w, http.StatusNotFound, "Order not found", nil)
	case errors.Is(err, apperrors.ErrOrderConflict):
		h.writeError(w, http.StatusConflict, "Order identifier conflict, please retry", nil)
	default:
		h.logger.Error("request_failed", message, requestID, err, nil)
		h.writeError(w, http.StatusInternalServerError, message, err)
	}
}

// writeError writes an error response in JSON format
func (h *Handler) writeError(w http.ResponseWriter, statusCode int, message string, detail error) {
	body := map[string]interface{}{
		"error": message,
	}
	if h.devMode && detail != nil {
		body["message"] = detail.Error()
	}
	h.writeJSON(w, statusCode, body)
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", "", err, nil)
	}
}

func queryInt(r *http.Request, key string) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
