package request

// UpsertProductRequest creates a product or updates it in place when the name
// already exists in the catalog.
type UpsertProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// ProductFilterRequest holds query parameters for listing products.
type ProductFilterRequest struct {
	IncludeDeleted bool `form:"include_deleted"`
}
