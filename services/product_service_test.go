package services

import (
	"context"
	stderrors "errors"
	"testing"

	apperrors "github.com/shopswift/product-service/errors"
	"github.com/shopswift/product-service/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeProductRepo struct {
	createCalled int
	createErr    error
	created      *models.Product

	findByIDCalled int
	findByIDResult *models.Product
	findByIDErr    error

	updateCalled  int
	updateUpdates bson.M
	updateResult  *models.Product
	updateErr     error

	deleteCalled int
	deleteCount  int64
	deleteErr    error
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	f.createCalled++
	f.created = product
	if f.createErr != nil {
		return f.createErr
	}
	product.ID = primitive.NewObjectID()
	return nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	return []models.Product{}, nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	f.findByIDCalled++
	return f.findByIDResult, f.findByIDErr
}

func (f *fakeProductRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Product, error) {
	f.updateCalled++
	f.updateUpdates = updates
	return f.updateResult, f.updateErr
}

func (f *fakeProductRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	f.deleteCalled++
	return f.deleteCount, f.deleteErr
}

func (f *fakeProductRepo) EnsureIndexes(ctx context.Context) error {
	return nil
}

func TestCreateProductPassesFields(t *testing.T) {
	repo := &fakeProductRepo{}
	service := NewProductService(repo)

	product, err := service.CreateProduct(context.Background(), CreateProductParams{
		Name:        "iPhone SE",
		Description: "Good phone",
		Price:       9001,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.createCalled != 1 {
		t.Fatalf("expected create to be called once, got %d", repo.createCalled)
	}
	if product.Name != "iPhone SE" || product.Description != "Good phone" || product.Price != 9001 {
		t.Fatalf("unexpected product: %+v", product)
	}
	if product.ID.IsZero() {
		t.Fatal("expected a generated id")
	}
}

func TestCreateProductStoreError(t *testing.T) {
	repo := &fakeProductRepo{createErr: stderrors.New("write failed")}
	service := NewProductService(repo)

	_, err := service.CreateProduct(context.Background(), CreateProductParams{Name: "x"})

	var internalErr *apperrors.InternalError
	if !stderrors.As(err, &internalErr) {
		t.Fatalf("expected InternalError, got %v", err)
	}
}

func TestGetProductMalformedID(t *testing.T) {
	repo := &fakeProductRepo{}
	service := NewProductService(repo)

	_, err := service.GetProduct(context.Background(), "not-a-hex-id")

	var notFoundErr *apperrors.NotFoundError
	if !stderrors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if repo.findByIDCalled != 0 {
		t.Fatalf("expected repo not to be queried for a malformed id, got %d calls", repo.findByIDCalled)
	}
}

func TestGetProductNoDocuments(t *testing.T) {
	repo := &fakeProductRepo{findByIDErr: mongo.ErrNoDocuments}
	service := NewProductService(repo)

	id := "6436b60c28268a437baf0b7e"
	_, err := service.GetProduct(context.Background(), id)

	var notFoundErr *apperrors.NotFoundError
	if !stderrors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFoundErr.ID != id {
		t.Fatalf("expected id %q in error, got %q", id, notFoundErr.ID)
	}
}

func TestUpdateProductOnlySuppliedFields(t *testing.T) {
	name := "Kelek"
	repo := &fakeProductRepo{
		updateResult: &models.Product{Name: name, Description: "Good phone", Price: 9001},
	}
	service := NewProductService(repo)

	product, err := service.UpdateProduct(context.Background(), "6436b60c28268a437baf0b7e", UpdateProductParams{
		Name: &name,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.updateUpdates) != 1 {
		t.Fatalf("expected exactly one $set field, got %v", repo.updateUpdates)
	}
	if repo.updateUpdates["name"] != "Kelek" {
		t.Fatalf("expected name in updates, got %v", repo.updateUpdates)
	}
	if product.Description != "Good phone" || product.Price != 9001 {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	repo := &fakeProductRepo{updateErr: mongo.ErrNoDocuments}
	service := NewProductService(repo)

	name := "Kelek"
	_, err := service.UpdateProduct(context.Background(), "6436b60c28268a437baf0b7e", UpdateProductParams{Name: &name})

	var notFoundErr *apperrors.NotFoundError
	if !stderrors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	repo := &fakeProductRepo{deleteCount: 1}
	service := NewProductService(repo)

	if err := service.DeleteProduct(context.Background(), "6436b60c28268a437baf0b7e"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteProductAlreadyDeleted(t *testing.T) {
	repo := &fakeProductRepo{deleteCount: 0}
	service := NewProductService(repo)

	err := service.DeleteProduct(context.Background(), "6436b60c28268a437baf0b7e")

	var notFoundErr *apperrors.NotFoundError
	if !stderrors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteProductMalformedID(t *testing.T) {
	repo := &fakeProductRepo{}
	service := NewProductService(repo)

	err := service.DeleteProduct(context.Background(), "zzz")

	var notFoundErr *apperrors.NotFoundError
	if !stderrors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if repo.deleteCalled != 0 {
		t.Fatalf("expected repo not to be called for a malformed id, got %d calls", repo.deleteCalled)
	}
}
