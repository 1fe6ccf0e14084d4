package service

import (
	"context"

	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/models"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/pagination"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/repository"
)

// Default and maximum page sizes for catalog listings.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// ListProductsParams are the query parameters for a catalog listing.
type ListProductsParams struct {
	Name   string
	Size   string
	Limit  int64
	Offset int64
}

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct stores a new product and returns its generated id in hex form.
func (s *ProductService) CreateProduct(ctx context.Context, product models.Product) (string, error) {
	id, err := s.repo.Insert(ctx, product)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// ListProducts returns one page of the catalog, projected to id/name/price.
// The name filter matches case-insensitively anywhere in the name; the size
// filter matches products with at least one size entry carrying that exact
// label. Zero or out-of-range limits fall back to the defaults.
func (s *ProductService) ListProducts(ctx context.Context, params ListProductsParams) (*models.ProductPage, error) {
	if params.Limit <= 0 {
		params.Limit = DefaultPageLimit
	}
	if params.Limit > MaxPageLimit {
		params.Limit = MaxPageLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	products, err := s.repo.Search(ctx, repository.ProductQuery{
		Name:   params.Name,
		Size:   params.Size,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, models.ProductSummary{
			ID:    p.ID.Hex(),
			Name:  p.Name,
			Price: p.Price,
		})
	}

	return &models.ProductPage{
		Data: summaries,
		Page: pagination.New(params.Limit, params.Offset, int64(len(summaries))),
	}, nil
}
