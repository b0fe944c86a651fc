package repository

import (
	"context"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

// CartRepository scopes every call to one user; lines of other users are
// reported as domain.ErrCartItemNotFound.
type CartRepository interface {
	List(ctx context.Context, userID int) ([]domain.CartItem, error)
	GetByID(ctx context.Context, id, userID int) (*domain.CartItem, error)
	// Add inserts a line or adds quantity to the existing line for the book.
	// It returns domain.ErrInsufficientStock, leaving the cart unchanged, when
	// the resulting quantity would exceed the book's stock.
	Add(ctx context.Context, userID, bookID, quantity int) (*domain.CartItem, error)
	SetQuantity(ctx context.Context, id, userID, quantity int) (*domain.CartItem, error)
	Delete(ctx context.Context, id, userID int) error
	Clear(ctx context.Context, userID int) error
}
