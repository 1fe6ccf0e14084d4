package service

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/models"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/repository"
)

// fakeProductRepository serves a fixed product slice, honoring skip/limit,
// and records the last query it received.
type fakeProductRepository struct {
	products  []models.Product
	lastQuery repository.ProductQuery
	err       error
}

func (f *fakeProductRepository) Insert(ctx context.Context, product models.Product) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeProductRepository) Search(ctx context.Context, query repository.ProductQuery) ([]models.Product, error) {
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}

	start := query.Offset
	if start > int64(len(f.products)) {
		start = int64(len(f.products))
	}
	end := start + query.Limit
	if end > int64(len(f.products)) {
		end = int64(len(f.products))
	}
	return f.products[start:end], nil
}

func (f *fakeProductRepository) GetManyByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	return nil, nil
}

func seedProducts(n int) []models.Product {
	products := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, models.Product{
			ID:    primitive.NewObjectID(),
			Name:  "Plain Shirt",
			Price: 9.99,
		})
	}
	return products
}

func TestProductService_CreateProduct(t *testing.T) {
	repo := &fakeProductRepository{}
	svc := NewProductService(repo)

	id, err := svc.CreateProduct(context.Background(), models.Product{
		Name:  "Blue Shirt",
		Price: 10,
		Sizes: []models.Size{{Size: "S", Quantity: 5}},
	})
	if err != nil {
		t.Fatalf("CreateProduct() unexpected error = %v", err)
	}

	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		t.Errorf("CreateProduct() id %q is not a valid hex id", id)
	}
}

func TestProductService_ListProducts_Pagination(t *testing.T) {
	// 15 matching products: a full first page then a partial second one.
	repo := &fakeProductRepository{products: seedProducts(15)}
	svc := NewProductService(repo)

	page, err := svc.ListProducts(context.Background(), ListProductsParams{Name: "shirt", Limit: 10, Offset: 0})
	if err != nil {
		t.Fatalf("ListProducts() unexpected error = %v", err)
	}

	if len(page.Data) != 10 {
		t.Fatalf("expected 10 products, got %d", len(page.Data))
	}
	if page.Page.Next == nil || *page.Page.Next != "10" {
		t.Errorf("next token = %v, want %q", page.Page.Next, "10")
	}
	if page.Page.Previous != nil {
		t.Errorf("expected no previous token, got %q", *page.Page.Previous)
	}

	page, err = svc.ListProducts(context.Background(), ListProductsParams{Name: "shirt", Limit: 10, Offset: 10})
	if err != nil {
		t.Fatalf("ListProducts() unexpected error = %v", err)
	}

	if len(page.Data) != 5 {
		t.Fatalf("expected 5 products, got %d", len(page.Data))
	}
	if page.Page.Next != nil {
		t.Errorf("expected no next token, got %q", *page.Page.Next)
	}
	if page.Page.Previous == nil || *page.Page.Previous != "0" {
		t.Errorf("previous token = %v, want %q", page.Page.Previous, "0")
	}
}

func TestProductService_ListProducts_Projection(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &fakeProductRepository{products: []models.Product{
		{ID: id, Name: "Blue Shirt", Price: 10, Sizes: []models.Size{{Size: "S", Quantity: 5}}},
	}}
	svc := NewProductService(repo)

	page, err := svc.ListProducts(context.Background(), ListProductsParams{})
	if err != nil {
		t.Fatalf("ListProducts() unexpected error = %v", err)
	}

	if len(page.Data) != 1 {
		t.Fatalf("expected 1 product, got %d", len(page.Data))
	}
	got := page.Data[0]
	if got.ID != id.Hex() {
		t.Errorf("product id = %q, want %q", got.ID, id.Hex())
	}
	if got.Name != "Blue Shirt" || got.Price != 10 {
		t.Errorf("unexpected summary: %+v", got)
	}
}

func TestProductService_ListProducts_Defaults(t *testing.T) {
	tests := []struct {
		name       string
		params     ListProductsParams
		wantLimit  int64
		wantOffset int64
	}{
		{
			name:       "zero values",
			params:     ListProductsParams{},
			wantLimit:  DefaultPageLimit,
			wantOffset: 0,
		},
		{
			name:       "limit above maximum",
			params:     ListProductsParams{Limit: 500},
			wantLimit:  MaxPageLimit,
			wantOffset: 0,
		},
		{
			name:       "negative offset",
			params:     ListProductsParams{Limit: 10, Offset: -3},
			wantLimit:  10,
			wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeProductRepository{}
			svc := NewProductService(repo)

			if _, err := svc.ListProducts(context.Background(), tt.params); err != nil {
				t.Fatalf("ListProducts() unexpected error = %v", err)
			}

			if repo.lastQuery.Limit != tt.wantLimit {
				t.Errorf("query limit = %d, want %d", repo.lastQuery.Limit, tt.wantLimit)
			}
			if repo.lastQuery.Offset != tt.wantOffset {
				t.Errorf("query offset = %d, want %d", repo.lastQuery.Offset, tt.wantOffset)
			}
		})
	}
}

func TestProductService_ListProducts_FiltersPassedThrough(t *testing.T) {
	repo := &fakeProductRepository{}
	svc := NewProductService(repo)

	_, err := svc.ListProducts(context.Background(), ListProductsParams{Name: "shirt", Size: "M", Limit: 20})
	if err != nil {
		t.Fatalf("ListProducts() unexpected error = %v", err)
	}

	if repo.lastQuery.Name != "shirt" {
		t.Errorf("query name = %q, want %q", repo.lastQuery.Name, "shirt")
	}
	if repo.lastQuery.Size != "M" {
		t.Errorf("query size = %q, want %q", repo.lastQuery.Size, "M")
	}
}
