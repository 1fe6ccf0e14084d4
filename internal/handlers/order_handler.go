package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/models"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/service"
)

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	UserID string             `json:"userId" validate:"required"`
	Items  []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Qty       int    `json:"qty" validate:"required,gt=0"`
}

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	validate     *validator.Validate
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validate:     validator.New(),
		log:          log,
	}
}

// CreateOrder handles POST /orders
// Returns 201 with the generated id, 404 if any referenced product does not
// exist, 422 for a malformed product id, 400 for an invalid body.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.log.Warn("order request validation failed", "error", err)
		WriteError(w, http.StatusBadRequest, validationMessage(err), h.log)
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{ProductID: item.ProductID, Qty: item.Qty})
	}

	id, err := h.orderService.CreateOrder(r.Context(), req.UserID, items)
	if err != nil {
		var notFound *service.ProductNotFoundError
		var invalidRef *service.InvalidReferenceError

		switch {
		case errors.As(err, &notFound):
			h.log.Info("order referenced unknown product", "product_id", notFound.ProductID)
			WriteError(w, http.StatusNotFound, fmt.Sprintf("Product %s not found", notFound.ProductID), h.log)
		case errors.As(err, &invalidRef):
			h.log.Warn("order referenced malformed product id", "product_id", invalidRef.ProductID)
			WriteError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid product id %s", invalidRef.ProductID), h.log)
		case errors.Is(err, service.ErrEmptyOrder):
			WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
		case errors.Is(err, service.ErrInvalidQuantity):
			WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
		default:
			h.log.Error("failed to create order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("order created", "order_id", id, "user_id", req.UserID, "items_count", len(items))
	WriteJSON(w, http.StatusCreated, map[string]string{"id": id}, h.log)
}

// ListOrders handles GET /orders/{userId}
// Returns the user's orders, most recent first, with denormalized product
// details on each item. An unknown user gets an empty page.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	limit, offset, err := parsePageParams(r)
	if err != nil {
		h.log.Warn("invalid pagination params", "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	page, err := h.orderService.ListOrders(r.Context(), userID, limit, offset)
	if err != nil {
		h.log.Error("failed to list orders", "user_id", userID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, page, h.log)
}
