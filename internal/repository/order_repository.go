package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/models"
	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/store"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Insert(ctx context.Context, order models.Order) (primitive.ObjectID, error)
	ListByUser(ctx context.Context, userID string, limit, offset int64) ([]models.OrderView, error)
}

// MongoOrderRepository implements OrderRepository over the store gateway.
type MongoOrderRepository struct {
	gateway *store.Gateway
}

// NewMongoOrderRepository creates an order repository backed by the orders
// collection.
func NewMongoOrderRepository(gateway *store.Gateway) *MongoOrderRepository {
	return &MongoOrderRepository{gateway: gateway}
}

// Insert stores a new order and returns its generated id.
func (r *MongoOrderRepository) Insert(ctx context.Context, order models.Order) (primitive.ObjectID, error) {
	return r.gateway.InsertOne(ctx, store.OrdersCollection, order)
}

// ListByUser returns one page of a user's orders, most recent first, with
// each item joined to its product's display fields.
//
// Pagination is applied before the join so limit/offset count orders, not
// expanded item rows. The unwind stage carries the item's array index so the
// regrouped items keep their original order; without it $push order would
// depend on the store's grouping behavior. The join is an inner join: items
// whose product no longer exists are dropped from the output.
func (r *MongoOrderRepository) ListByUser(ctx context.Context, userID string, limit, offset int64) ([]models.OrderView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		{{Key: "$skip", Value: offset}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$unwind", Value: bson.M{
			"path":              "$items",
			"includeArrayIndex": "itemIndex",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"items.productObjectId": bson.M{"$toObjectId": "$items.productId"},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         store.ProductsCollection,
			"localField":   "items.productObjectId",
			"foreignField": "_id",
			"as":           "productDetails",
		}}},
		{{Key: "$unwind", Value: "$productDetails"}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_id", Value: -1},
			{Key: "itemIndex", Value: 1},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$_id",
			"total": bson.M{"$first": "$total"},
			"items": bson.M{"$push": bson.M{
				"qty": "$items.qty",
				"productDetails": bson.M{
					"_id":  "$productDetails._id",
					"name": "$productDetails.name",
				},
			}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
	}

	orders := []models.OrderView{}
	if err := r.gateway.Aggregate(ctx, store.OrdersCollection, pipeline, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
