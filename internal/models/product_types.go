package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a document in the 'products' collection.
// Stock is kept >= 0 at write time by the input validators; checkout
// settlement decrements it with a conditional update.
type Product struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Stock int                `bson:"stock" json:"stock"`
}
