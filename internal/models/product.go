package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/pagination"
)

// Product is the stored shape of a catalog product.
// The id is generated by the store on insert.
type Product struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Sizes []Size             `bson:"sizes" json:"sizes"`
}

// Size is one size entry of a product (label plus stocked quantity).
type Size struct {
	Size     string `bson:"size" json:"size"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

// ProductSummary is the listing projection: id, name and price only.
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductPage is the paginated response for GET /products.
type ProductPage struct {
	Data []ProductSummary `json:"data"`
	Page pagination.Page  `json:"page"`
}
