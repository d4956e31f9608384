package repository

import (
	"context"

	"github.com/shopswift/product-service/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepo defines the store operations used by the product service.
type ProductRepo interface {
	Create(ctx context.Context, product *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	// UpdateByID applies the given $set fields and returns the updated
	// document, or mongo.ErrNoDocuments if no product matches.
	UpdateByID(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Product, error)
	// DeleteByID hard-deletes the product and reports how many documents
	// were removed.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	EnsureIndexes(ctx context.Context) error
}
