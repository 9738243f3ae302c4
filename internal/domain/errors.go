package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrEmptyCart         = errors.New("your cart is empty")
	ErrInsufficientFunds = errors.New("insufficient balance in wallet")
	ErrOutOfStock        = errors.New("not enough stock")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
)

// OutOfStockError names the product whose stock could not cover a cart line.
type OutOfStockError struct {
	Product string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("Not enough stock for %s", e.Product)
}

func (e *OutOfStockError) Unwrap() error {
	return ErrOutOfStock
}

// ReasonError attaches a client-facing message to one of the sentinels above.
// errors.Is still matches the sentinel.
type ReasonError struct {
	Kind   error
	Reason string
}

// WithReason wraps kind with the message shown to the caller
func WithReason(kind error, reason string) error {
	return &ReasonError{Kind: kind, Reason: reason}
}

func (e *ReasonError) Error() string {
	return e.Reason
}

func (e *ReasonError) Unwrap() error {
	return e.Kind
}
