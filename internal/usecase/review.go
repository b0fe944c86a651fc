package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/repository"
)

type ReviewUsecase struct {
	reviews repository.ReviewRepository
	books   repository.BookRepository
}

func NewReviewUsecase(reviews repository.ReviewRepository, books repository.BookRepository) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, books: books}
}

type CreateReviewInput struct {
	UserID  int
	BookID  int
	Rating  int
	Comment string
}

func (u *ReviewUsecase) ListByBook(ctx context.Context, bookID int) ([]domain.Review, error) {
	if _, err := u.books.GetByID(ctx, bookID); err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	reviews, err := u.reviews.ListByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (u *ReviewUsecase) Stats(ctx context.Context, bookID int) (*domain.ReviewStats, error) {
	if _, err := u.books.GetByID(ctx, bookID); err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	stats, err := u.reviews.Stats(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("review stats: %w", err)
	}
	return stats, nil
}

// Create stores one review per user and book.
func (u *ReviewUsecase) Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error) {
	if in.Rating < domain.MinRating || in.Rating > domain.MaxRating {
		return nil, domain.ErrInvalidRating
	}
	if _, err := u.books.GetByID(ctx, in.BookID); err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	review, err := u.reviews.Create(ctx, &domain.Review{
		BookID:  in.BookID,
		UserID:  in.UserID,
		Rating:  in.Rating,
		Comment: strings.TrimSpace(in.Comment),
	})
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}
