package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/minimart/minimart-golang/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names in the storefront database.
const (
	ProductsCollection  = "products"
	UsersCollection     = "users"
	CartLinesCollection = "cartlines"
)

// MongoStore implements Store on top of a Mongo database handle.
type MongoStore struct {
	DB *mongo.Database
}

// NewMongoStore wraps an already-connected database handle.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{DB: db}
}

func (s *MongoStore) products() *mongo.Collection {
	return s.DB.Collection(ProductsCollection)
}

func (s *MongoStore) users() *mongo.Collection {
	return s.DB.Collection(UsersCollection)
}

func (s *MongoStore) cartLines() *mongo.Collection {
	return s.DB.Collection(CartLinesCollection)
}

// --- Products ---

func (s *MongoStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	cur, err := s.products().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoStore) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	err := s.products().FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoStore) CreateProduct(ctx context.Context, p *models.Product) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := s.products().InsertOne(ctx, p)
	return err
}

func (s *MongoStore) UpdateProduct(ctx context.Context, p *models.Product) error {
	res, err := s.products().UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{"$set": bson.M{
		"name":  p.Name,
		"price": p.Price,
		"stock": p.Stock,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct is an unconditional delete: removing a missing id succeeds.
func (s *MongoStore) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.products().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DecrementStock applies the decrement with the stock check in the update
// filter, so two settlements of the same product cannot both pass on the
// same units.
func (s *MongoStore) DecrementStock(ctx context.Context, id primitive.ObjectID, qty int) (bool, error) {
	res, err := s.products().UpdateOne(ctx,
		bson.M{"_id": id, "stock": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"stock": -qty}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// --- Users ---

// FindUser matches username and password exactly, in plaintext. That is the
// login contract of the original system, preserved as-is.
func (s *MongoStore) FindUser(ctx context.Context, username, password string) (*models.User, error) {
	var u models.User
	err := s.users().FindOne(ctx, bson.M{"username": username, "password": password}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	_, err := s.users().InsertOne(ctx, u)
	return err
}

// --- Cart lines ---

func (s *MongoStore) CartLines(ctx context.Context, userID string) ([]models.CartLine, error) {
	cur, err := s.cartLines().Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	lines := []models.CartLine{}
	if err := cur.All(ctx, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *MongoStore) AddCartLine(ctx context.Context, line *models.CartLine) error {
	if line.ID == "" {
		line.ID = uuid.NewString()
	}
	_, err := s.cartLines().InsertOne(ctx, line)
	return err
}

func (s *MongoStore) ClearCart(ctx context.Context, userID string) error {
	_, err := s.cartLines().DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
