package domain

import (
	"errors"
	"time"
)

var (
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
)

type CartItem struct {
	ID       int       `json:"cartItemId"`
	UserID   int       `json:"userId"`
	Book     Book      `json:"book"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

func (c CartItem) LineTotal() float64 {
	return c.Book.Price * float64(c.Quantity)
}

// StockError reports which book ran out while placing an order.
type StockError struct {
	Title string
}

func (e *StockError) Error() string {
	return "insufficient stock for book: " + e.Title
}

func (e *StockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
