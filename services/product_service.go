package services

import (
	"context"
	stderrors "errors"

	apperrors "github.com/shopswift/product-service/errors"
	"github.com/shopswift/product-service/models"
	"github.com/shopswift/product-service/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductService implements product operations on top of the repository,
// mapping store-level outcomes to application errors. A malformed hex id is
// indistinguishable from an unassigned one to callers: both are not-found.
type ProductService struct {
	repo repository.ProductRepo
}

func NewProductService(repo repository.ProductRepo) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) CreateProduct(ctx context.Context, params CreateProductParams) (*models.Product, error) {
	product := &models.Product{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound(id)
	}

	product, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound(id)
		}
		return nil, apperrors.NewInternal(err)
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (*models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound(id)
	}

	updates := bson.M{}
	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.Price != nil {
		updates["price"] = *params.Price
	}

	product, err := s.repo.UpdateByID(ctx, objectID, updates)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound(id)
		}
		return nil, apperrors.NewInternal(err)
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewNotFound(id)
	}

	deleted, err := s.repo.DeleteByID(ctx, objectID)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if deleted == 0 {
		return apperrors.NewNotFound(id)
	}
	return nil
}
