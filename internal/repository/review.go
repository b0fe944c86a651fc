package repository

import (
	"context"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

type ReviewRepository interface {
	// ListByBook returns the newest review first.
	ListByBook(ctx context.Context, bookID int) ([]domain.Review, error)
	Stats(ctx context.Context, bookID int) (*domain.ReviewStats, error)
	// Create returns domain.ErrAlreadyReviewed when the user already reviewed the book.
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
}
