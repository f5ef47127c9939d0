package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values stored on a user document.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a document in the 'users' collection. Passwords are stored and
// compared in plaintext to keep the login contract of the original system;
// this is insecure and must not be copied into any new schema.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"password,omitempty"`
	Role     string             `bson:"role" json:"role"`
}
