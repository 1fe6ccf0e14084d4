package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/models"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/repository"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/service"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/pkg/logger"
)

// fakeProductRepo serves a fixed catalog, honoring skip/limit.
type fakeProductRepo struct {
	products []models.Product
}

func (f *fakeProductRepo) Insert(ctx context.Context, product models.Product) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	product.ID = id
	f.products = append(f.products, product)
	return id, nil
}

func (f *fakeProductRepo) Search(ctx context.Context, query repository.ProductQuery) ([]models.Product, error) {
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

func (f *fakeProductRepo) GetManyByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	found := make(map[primitive.ObjectID]models.Product)
	for _, p := range f.products {
		for _, id := range ids {
			if p.ID == id {
				found[id] = p
			}
		}
	}
	return found, nil
}

func newProductHandler(repo *fakeProductRepo) *ProductHandler {
	svc := service.NewProductService(repo)
	return NewProductHandler(svc, logger.New("error"))
}

func TestProductHandler_CreateProduct(t *testing.T) {
	handler := newProductHandler(&fakeProductRepo{})

	body, _ := json.Marshal(CreateProductRequest{
		Name:  "Blue Shirt",
		Price: 10,
		Sizes: []SizeRequest{{Size: "S", Quantity: 5}},
	})

	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateProduct(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if _, err := primitive.ObjectIDFromHex(response["id"]); err != nil {
		t.Errorf("response id %q is not a valid hex id", response["id"])
	}
}

func TestProductHandler_CreateProduct_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed json",
			body: "{not json",
		},
		{
			name: "missing name",
			body: `{"price": 10, "sizes": []}`,
		},
		{
			name: "negative price",
			body: `{"name": "Blue Shirt", "price": -1, "sizes": []}`,
		},
		{
			name: "size entry without label",
			body: `{"name": "Blue Shirt", "price": 10, "sizes": [{"quantity": 5}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newProductHandler(&fakeProductRepo{})

			req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.CreateProduct(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestProductHandler_ListProducts_Pagination(t *testing.T) {
	// 15 products: a full first page then a partial second one.
	repo := &fakeProductRepo{}
	for i := 0; i < 15; i++ {
		repo.products = append(repo.products, models.Product{
			ID:    primitive.NewObjectID(),
			Name:  "Plain Shirt",
			Price: 9.99,
		})
	}
	handler := newProductHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/products?name=shirt&limit=10&offset=0", nil)
	w := httptest.NewRecorder()
	handler.ListProducts(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var page models.ProductPage
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(page.Data) != 10 {
		t.Errorf("expected 10 products, got %d", len(page.Data))
	}
	if page.Page.Next == nil || *page.Page.Next != "10" {
		t.Errorf("next token = %v, want %q", page.Page.Next, "10")
	}
	if page.Page.Previous != nil {
		t.Errorf("expected null previous token, got %q", *page.Page.Previous)
	}

	req = httptest.NewRequest(http.MethodGet, "/products?name=shirt&limit=10&offset=10", nil)
	w = httptest.NewRecorder()
	handler.ListProducts(w, req)

	page = models.ProductPage{}
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(page.Data) != 5 {
		t.Errorf("expected 5 products, got %d", len(page.Data))
	}
	if page.Page.Next != nil {
		t.Errorf("expected null next token, got %q", *page.Page.Next)
	}
	if page.Page.Previous == nil || *page.Page.Previous != "0" {
		t.Errorf("previous token = %v, want %q", page.Page.Previous, "0")
	}
}

func TestProductHandler_ListProducts_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "limit zero", query: "limit=0"},
		{name: "limit above maximum", query: "limit=101"},
		{name: "limit not a number", query: "limit=ten"},
		{name: "negative offset", query: "offset=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newProductHandler(&fakeProductRepo{})

			req := httptest.NewRequest(http.MethodGet, "/products?"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.ListProducts(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}
