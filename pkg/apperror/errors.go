package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags an AppError with its error family so callers can react to the
// category without parsing messages.
type Kind string

const (
	KindInvalidInput         Kind = "invalid_input"
	KindProductNotFound      Kind = "product_not_found"
	KindDatabase             Kind = "database"
	KindPrinterNotConfigured Kind = "printer_not_configured"
	KindPrinter              Kind = "printer"
	KindSaleNotFound         Kind = "sale_not_found"
	KindConcurrency          Kind = "concurrency"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Kind: KindInvalidInput, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Kind: KindDatabase, Message: "Internal server error"}
)

// NewAppError creates a new application error
func NewAppError(code int, kind Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// NewEmptyCartError reports a sale commit attempted with no items.
func NewEmptyCartError() *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidInput,
		Message: "Cart is empty",
	}
}

// NewInvalidQuantityError reports a cart line whose quantity is not strictly positive.
func NewInvalidQuantityError(productID fmt.Stringer) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidInput,
		Message: fmt.Sprintf("Quantity must be a positive integer for product %s", productID),
	}
}

// NewInvalidPriceError reports a cart line carrying a negative price.
func NewInvalidPriceError(productID fmt.Stringer) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidInput,
		Message: fmt.Sprintf("Price must be non-negative for product %s", productID),
	}
}

// NewProductNotFoundError reports a cart line referencing a missing catalog product.
func NewProductNotFoundError(productID fmt.Stringer) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindProductNotFound,
		Message: fmt.Sprintf("Product %s not found", productID),
	}
}

// NewSaleNotFoundError reports a lookup/reprint of a nonexistent sale.
func NewSaleNotFoundError(saleID fmt.Stringer) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindSaleNotFound,
		Message: fmt.Sprintf("Sale %s not found", saleID),
	}
}

// NewDatabaseError wraps a storage-layer failure. The enclosing transaction
// is guaranteed rolled back by the time this error is constructed.
func NewDatabaseError(err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindDatabase,
		Message: "Database error: " + err.Error(),
	}
}

// NewPrinterNotConfiguredError reports that no printer device is bound.
func NewPrinterNotConfiguredError() *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindPrinterNotConfigured,
		Message: "No printer device is configured",
	}
}

// NewPrinterError wraps a transport/protocol failure during dispatch.
func NewPrinterError(err error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Kind:    KindPrinter,
		Message: "Printer error: " + err.Error(),
	}
}

// NewConcurrencyError reports a failed acquisition of the printer device lock.
// Fatal to the current operation only; the caller may retry manually.
func NewConcurrencyError() *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindConcurrency,
		Message: "Printer device is busy",
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindDatabase,
		Message: err.Error(),
	}
}
