package controllers

import (
	"context"
	"time"

	"github.com/shopswift/product-service/models"
	"github.com/shopswift/product-service/services"
)

// DefaultContextTimeout bounds every store call made by a handler
const DefaultContextTimeout = 30 * time.Second

// ProductServiceAPI defines the interface for product service operations
type ProductServiceAPI interface {
	CreateProduct(ctx context.Context, params services.CreateProductParams) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, params services.UpdateProductParams) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
