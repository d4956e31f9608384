package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/shopswift/product-service/errors"
	"go.uber.org/zap"
)

// ProductController exposes the product CRUD handlers. Handlers never write
// error bodies; they attach a typed error to the context and return, leaving
// translation to the shared errors middleware.
type ProductController struct {
	service   ProductServiceAPI
	validator *RequestValidator
}

func NewProductController(service ProductServiceAPI) *ProductController {
	return &ProductController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

// CreateProduct handles POST /products
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.NewValidation("invalid request body", err))
		return
	}

	params, err := pc.validator.ValidateCreate(req)
	if err != nil {
		c.Error(apperrors.NewValidation(err.Error(), nil))
		return
	}

	product, err := pc.service.CreateProduct(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		return
	}

	zap.L().Info("Product created", zap.String("id", product.ID.Hex()))
	c.JSON(http.StatusCreated, gin.H{"id": product.ID.Hex()})
}

// GetProducts handles GET /products
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, err := pc.service.ListProducts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductByID handles GET /products/:id
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := pc.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /products/:id
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.NewValidation("invalid request body", err))
		return
	}

	params, err := pc.validator.ValidateUpdate(req)
	if err != nil {
		c.Error(apperrors.NewValidation(err.Error(), nil))
		return
	}

	product, err := pc.service.UpdateProduct(c.Request.Context(), id, params)
	if err != nil {
		c.Error(err)
		return
	}

	zap.L().Info("Product updated", zap.String("id", id))
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := pc.service.DeleteProduct(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	zap.L().Info("Product deleted", zap.String("id", id))
	c.Status(http.StatusNoContent)
}
