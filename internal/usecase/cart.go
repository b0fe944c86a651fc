package usecase

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/repository"
)

type CartUsecase struct {
	cart  repository.CartRepository
	books repository.BookRepository
}

func NewCartUsecase(cart repository.CartRepository, books repository.BookRepository) *CartUsecase {
	return &CartUsecase{cart: cart, books: books}
}

func (u *CartUsecase) List(ctx context.Context, userID int) ([]domain.CartItem, error) {
	items, err := u.cart.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	return items, nil
}

// Add merges quantity into the existing line for the book, if any. The
// merged quantity may not exceed the book's stock; the repository enforces
// that atomically with the write.
func (u *CartUsecase) Add(ctx context.Context, userID, bookID, quantity int) (*domain.CartItem, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	book, err := u.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	if quantity > book.StockQuantity {
		return nil, domain.ErrInsufficientStock
	}

	item, err := u.cart.Add(ctx, userID, bookID, quantity)
	if err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	return item, nil
}

func (u *CartUsecase) Update(ctx context.Context, userID, cartItemID, quantity int) (*domain.CartItem, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	item, err := u.cart.GetByID(ctx, cartItemID, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart line: %w", err)
	}
	if quantity > item.Book.StockQuantity {
		return nil, domain.ErrInsufficientStock
	}

	updated, err := u.cart.SetQuantity(ctx, cartItemID, userID, quantity)
	if err != nil {
		return nil, fmt.Errorf("update cart line: %w", err)
	}
	return updated, nil
}

func (u *CartUsecase) Remove(ctx context.Context, userID, cartItemID int) error {
	if err := u.cart.Delete(ctx, cartItemID, userID); err != nil {
		return fmt.Errorf("remove cart line: %w", err)
	}
	return nil
}

func (u *CartUsecase) Clear(ctx context.Context, userID int) error {
	if err := u.cart.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
