package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/models"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/pagination"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// ProductNotFoundError reports an order item referencing a product id that
// resolved to nothing at order time.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// InvalidReferenceError reports an order item whose product id is not a
// well-formed store id.
type InvalidReferenceError struct {
	ProductID string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid product id %q", e.ProductID)
}

// ProductResolver resolves product ids in one batched lookup; missing ids
// are absent from the map.
type ProductResolver interface {
	GetManyByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error)
}

// OrderRepository interface for order data access
type OrderRepository interface {
	Insert(ctx context.Context, order models.Order) (primitive.ObjectID, error)
	ListByUser(ctx context.Context, userID string, limit, offset int64) ([]models.OrderView, error)
}

// OrderService handles order business logic
type OrderService struct {
	products ProductResolver
	orders   OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(products ProductResolver, orders OrderRepository) *OrderService {
	return &OrderService{
		products: products,
		orders:   orders,
	}
}

// CreateOrder prices and persists a new order, returning its generated id in
// hex form. Every referenced product is resolved in a single batched lookup
// and the total is computed from the prices live at that moment; if any id
// fails to resolve, nothing is written.
//
// There is no isolation between the price lookup and the insert: a product's
// price can change in between and the order keeps the looked-up price. That
// race is accepted for this domain, and this method is the single place to
// change if a stricter price-lock strategy is ever needed.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, items []models.OrderItem) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyOrder
	}

	// Parse every referenced id up front and collect the distinct set.
	parsed := make([]primitive.ObjectID, len(items))
	seen := make(map[primitive.ObjectID]struct{}, len(items))
	ids := make([]primitive.ObjectID, 0, len(items))

	for i, item := range items {
		if item.Qty <= 0 {
			return "", ErrInvalidQuantity
		}

		id, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return "", &InvalidReferenceError{ProductID: item.ProductID}
		}
		parsed[i] = id

		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	products, err := s.products.GetManyByID(ctx, ids)
	if err != nil {
		return "", err
	}

	var total float64
	for i, item := range items {
		product, ok := products[parsed[i]]
		if !ok {
			return "", &ProductNotFoundError{ProductID: item.ProductID}
		}
		total += product.Price * float64(item.Qty)
	}

	// All reads happened above; this single write is the only side effect.
	id, err := s.orders.Insert(ctx, models.Order{
		UserID: userID,
		Items:  items,
		Total:  total,
	})
	if err != nil {
		return "", err
	}

	return id.Hex(), nil
}

// ListOrders returns one page of a user's orders, most recent first, with
// each item carrying the display fields of its product. A user with no
// orders gets an empty page, not an error.
func (s *OrderService) ListOrders(ctx context.Context, userID string, limit, offset int64) (*models.OrderPage, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	views, err := s.orders.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.OrderSummary, 0, len(views))
	for _, view := range views {
		items := make([]models.OrderSummaryItem, 0, len(view.Items))
		for _, item := range view.Items {
			items = append(items, models.OrderSummaryItem{
				Qty: item.Qty,
				ProductDetails: models.ProductRef{
					ID:   item.ProductDetails.ID.Hex(),
					Name: item.ProductDetails.Name,
				},
			})
		}
		summaries = append(summaries, models.OrderSummary{
			ID:    view.ID.Hex(),
			Total: view.Total,
			Items: items,
		})
	}

	return &models.OrderPage{
		Data: summaries,
		Page: pagination.New(limit, offset, int64(len(summaries))),
	}, nil
}
