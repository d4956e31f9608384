package controllers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopswift/product-service/services"
)

// CreateProductRequest defines the expected structure for creating a product.
// Pointer fields distinguish absent values from zero values, so price 0 is
// accepted while a missing price is rejected.
type CreateProductRequest struct {
	Name        *string  `json:"name" validate:"required,min=1"`
	Description *string  `json:"description" validate:"required,min=1"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}

// UpdateProductRequest defines the expected structure for a partial update.
// Every field is optional; supplied fields must still satisfy the schema.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

// RequestValidator handles all input validation
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// ValidateCreate validates a create payload and converts it to service params.
func (rv *RequestValidator) ValidateCreate(req CreateProductRequest) (services.CreateProductParams, error) {
	if err := rv.validate.Struct(req); err != nil {
		return services.CreateProductParams{}, fmt.Errorf("%s", summarize(err))
	}

	return services.CreateProductParams{
		Name:        *req.Name,
		Description: *req.Description,
		Price:       *req.Price,
	}, nil
}

// ValidateUpdate validates a partial update payload and converts it to
// service params.
func (rv *RequestValidator) ValidateUpdate(req UpdateProductRequest) (services.UpdateProductParams, error) {
	if err := rv.validate.Struct(req); err != nil {
		return services.UpdateProductParams{}, fmt.Errorf("%s", summarize(err))
	}

	return services.UpdateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}, nil
}

// summarize turns validator errors into a single client-facing message
// naming the violated fields.
func summarize(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request body"
	}

	var parts []string
	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must not be empty", field))
		case "gte":
			parts = append(parts, fmt.Sprintf("%s must be %s or greater", field, fieldErr.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(parts, "; ")
}
