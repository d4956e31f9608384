package services

// CreateProductParams is the validated payload for creating a product
type CreateProductParams struct {
	Name        string
	Description string
	Price       float64
}

// UpdateProductParams carries the fields supplied on a partial update.
// Nil means the field was absent and keeps its prior value.
type UpdateProductParams struct {
	Name        *string
	Description *string
	Price       *float64
}
