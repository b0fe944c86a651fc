package repository

import (
	"context"
	"time"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

type PlaceOrderInput struct {
	UserID          int
	PaymentMethod   domain.PaymentMethod
	ShippingAddress string
	PhoneNumber     string
	Notes           *string
}

type OrderRepository interface {
	// PlaceFromCart turns the user's cart into a PENDING, UNPAID order in one
	// transaction: stock is decremented and the cart emptied. It returns
	// domain.ErrCartEmpty or an error wrapping domain.ErrInsufficientStock.
	PlaceFromCart(ctx context.Context, in PlaceOrderInput) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Order, error)
	GetByID(ctx context.Context, id, userID int) (*domain.Order, error)
	// Cancel restores stock and marks the order CANCELLED. It returns
	// domain.ErrOrderNotCancellable unless the order is PENDING or CONFIRMED.
	Cancel(ctx context.Context, id, userID int) (*domain.Order, error)

	// CancelStale cancels up to limit PENDING, UNPAID orders placed before
	// cutoff, restoring their stock. Rows locked by another sweeper are
	// skipped. It returns the cancelled order ids.
	CancelStale(ctx context.Context, cutoff time.Time, limit int) ([]int, error)
}
