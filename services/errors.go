package services

import (
	"errors"
	"fmt"
)

// Failure taxonomy. NotFound, Unauthorized and InvalidTransition stay
// distinct so callers can tell "doesn't exist" from "not yours" from
// "not now". Nothing here is retried.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCourierNotFound = errors.New("courier not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrPaymentNotFound = errors.New("salary payment not found")
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrUnauthorized: caller is not the order's assigned courier, or
	// not an admin.
	ErrUnauthorized = errors.New("not allowed")

	// Invalid transitions.
	ErrTooManyActiveOrders = errors.New("too many active orders")
	ErrOrderNotPending     = errors.New("order is not pending")
	ErrOrderNotWithCourier = errors.New("order is not with a courier")
	ErrOrderNotDelivered   = errors.New("order is not delivered yet")
	ErrPriceLocked         = errors.New("order price is locked")
	ErrPriceNotLocked      = errors.New("order price must be locked before delivery")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrEmptyOrder          = errors.New("order needs at least one item")
)

// InsufficientStockError names the product and what is left. Raised only
// on the bonus-item path; plain order creation has no stock guard.
type InsufficientStockError struct {
	ProductID uint
	Name      string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q (product %d): %d available",
		e.Name, e.ProductID, e.Available)
}
