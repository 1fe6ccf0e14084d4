package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/models"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/store"
)

// ProductQuery describes a catalog search. Empty filter fields are ignored;
// when both are set they are ANDed.
type ProductQuery struct {
	Name   string // case-insensitive substring match on the product name
	Size   string // exact match against any size label of the product
	Limit  int64
	Offset int64
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Insert(ctx context.Context, product models.Product) (primitive.ObjectID, error)
	Search(ctx context.Context, query ProductQuery) ([]models.Product, error)
	GetManyByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error)
}

// MongoProductRepository implements ProductRepository over the store gateway.
type MongoProductRepository struct {
	gateway *store.Gateway
}

// NewMongoProductRepository creates a product repository backed by the
// products collection.
func NewMongoProductRepository(gateway *store.Gateway) *MongoProductRepository {
	return &MongoProductRepository{gateway: gateway}
}

// Insert stores a new product and returns its generated id.
func (r *MongoProductRepository) Insert(ctx context.Context, product models.Product) (primitive.ObjectID, error) {
	return r.gateway.InsertOne(ctx, store.ProductsCollection, product)
}

// Search returns the products matching the query, paginated by the query's
// skip/limit. Result order is store-default.
func (r *MongoProductRepository) Search(ctx context.Context, query ProductQuery) ([]models.Product, error) {
	filter := bson.M{}
	if query.Name != "" {
		filter["name"] = bson.M{"$regex": query.Name, "$options": "i"}
	}
	if query.Size != "" {
		filter["sizes.size"] = query.Size
	}

	products := []models.Product{}
	if err := r.gateway.Find(ctx, store.ProductsCollection, filter, query.Offset, query.Limit, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetManyByID resolves products in one batched lookup. Ids with no matching
// product are simply absent from the returned map.
func (r *MongoProductRepository) GetManyByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	products := []models.Product{}
	if err := r.gateway.FindByIDs(ctx, store.ProductsCollection, ids, &products); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}
