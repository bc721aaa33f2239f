package request

// CartItemRequest is a single line of a sale commit request.
type CartItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required"`
}

// CommitSaleRequest is the payload for committing (and printing) a sale.
type CommitSaleRequest struct {
	Items []CartItemRequest `json:"items" binding:"required"`
}

// SetPaymentMethodRequest annotates a sale with how it was paid.
type SetPaymentMethodRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// SaleFilterRequest holds query parameters for listing sales.
type SaleFilterRequest struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}
