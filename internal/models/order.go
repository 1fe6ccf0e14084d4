package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/pagination"
)

// Order is the stored shape of a placed order. Items keep the product ids
// exactly as submitted (hex form); total is computed at creation time and
// never recomputed afterwards.
type Order struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID string             `bson:"userId"`
	Items  []OrderItem        `bson:"items"`
	Total  float64            `bson:"total"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID string `bson:"productId" json:"productId"`
	Qty       int    `bson:"qty" json:"qty"`
}

// OrderView is one order as produced by the listing aggregation, with each
// item joined to the display fields of its product.
type OrderView struct {
	ID    primitive.ObjectID `bson:"_id"`
	Total float64            `bson:"total"`
	Items []OrderViewItem    `bson:"items"`
}

type OrderViewItem struct {
	Qty            int            `bson:"qty"`
	ProductDetails ProductDetails `bson:"productDetails"`
}

// ProductDetails carries the denormalized display fields of a product.
type ProductDetails struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

// OrderSummary is the response shape for one order in GET /orders/{userId}.
type OrderSummary struct {
	ID    string             `json:"id"`
	Total float64            `json:"total"`
	Items []OrderSummaryItem `json:"items"`
}

type OrderSummaryItem struct {
	Qty            int        `json:"qty"`
	ProductDetails ProductRef `json:"productDetails"`
}

type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrderPage is the paginated response for GET /orders/{userId}.
type OrderPage struct {
	Data []OrderSummary  `json:"data"`
	Page pagination.Page `json:"page"`
}
