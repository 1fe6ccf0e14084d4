package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by this service.
const (
	ProductsCollection = "products"
	OrdersCollection   = "orders"
)

// Connect opens a client against the given URI and verifies connectivity
// with a ping. The caller owns the client lifecycle and must call
// Disconnect on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to store: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping store: %w", err)
	}

	return client, nil
}

// Gateway is a thin handle over the document store. It exposes the handful
// of operations the repositories need and nothing else; no retries, every
// failure propagates to the caller.
type Gateway struct {
	db *mongo.Database
}

// NewGateway wraps a database handle. The client is injected rather than
// held as a package-level singleton so tests and shutdown control it.
func NewGateway(client *mongo.Client, database string) *Gateway {
	return &Gateway{db: client.Database(database)}
}

// InsertOne inserts a single document and returns its generated id.
func (g *Gateway) InsertOne(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	res, err := g.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", collection, err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return id, nil
}

// Find runs a filtered scan with skip/limit and decodes all results into out,
// which must be a pointer to a slice. Result order is whatever the store
// returns unless the filter implies one.
func (g *Gateway) Find(ctx context.Context, collection string, filter bson.M, skip, limit int64, out interface{}) error {
	opts := options.Find().SetSkip(skip).SetLimit(limit)

	cursor, err := g.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode results from %s: %w", collection, err)
	}
	return nil
}

// FindByIDs fetches all documents whose _id is in ids and decodes them into
// out. Missing ids simply do not appear in the results; that is the caller's
// concern, not an error at this layer.
func (g *Gateway) FindByIDs(ctx context.Context, collection string, ids []primitive.ObjectID, out interface{}) error {
	cursor, err := g.db.Collection(collection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return fmt.Errorf("find by ids in %s: %w", collection, err)
	}

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode results from %s: %w", collection, err)
	}
	return nil
}

// Aggregate runs an aggregation pipeline and decodes all results into out.
func (g *Gateway) Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := g.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregate on %s: %w", collection, err)
	}

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode results from %s: %w", collection, err)
	}
	return nil
}
