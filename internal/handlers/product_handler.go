package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/models"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/service"
)

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name  string        `json:"name" validate:"required"`
	Price float64       `json:"price" validate:"gte=0"`
	Sizes []SizeRequest `json:"sizes" validate:"dive"`
}

type SizeRequest struct {
	Size     string `json:"size" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service  *service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateProduct handles POST /products
// Returns 201 with the generated id, or 400 for a malformed or invalid body.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode product request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.logger.Warn("product request validation failed", "error", err)
		WriteError(w, http.StatusBadRequest, validationMessage(err), h.logger)
		return
	}

	sizes := make([]models.Size, 0, len(req.Sizes))
	for _, s := range req.Sizes {
		sizes = append(sizes, models.Size{Size: s.Size, Quantity: s.Quantity})
	}

	id, err := h.service.CreateProduct(r.Context(), models.Product{
		Name:  req.Name,
		Price: req.Price,
		Sizes: sizes,
	})
	if err != nil {
		h.logger.Error("failed to create product", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	h.logger.Info("product created", "product_id", id, "name", req.Name)
	WriteJSON(w, http.StatusCreated, map[string]string{"id": id}, h.logger)
}

// ListProducts handles GET /products
// Supports name substring and size filters plus limit/offset pagination.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePageParams(r)
	if err != nil {
		h.logger.Warn("invalid pagination params", "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	page, err := h.service.ListProducts(r.Context(), service.ListProductsParams{
		Name:   r.URL.Query().Get("name"),
		Size:   r.URL.Query().Get("size"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, page, h.logger)
}
