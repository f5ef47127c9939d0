package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartLine is a document in the 'cartlines' collection: one pending
// (user, product, quantity) purchase intent. Lines for the same product are
// not merged; adding twice leaves two lines. The id is assigned by the
// application as a UUID string. UserID is an unowned reference and ProductID
// is not enforced referentially, so a line may outlive its product.
type CartLine struct {
	ID        string             `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}
