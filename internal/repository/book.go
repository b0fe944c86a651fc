package repository

import (
	"context"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

// BookRepository only ever returns active books.
type BookRepository interface {
	List(ctx context.Context) ([]domain.Book, error)
	Newest(ctx context.Context, limit int) ([]domain.Book, error)
	// Search matches keyword against title, author and ISBN, case-insensitively.
	Search(ctx context.Context, keyword string) ([]domain.Book, error)
	ListByCategory(ctx context.Context, categoryID int) ([]domain.Book, error)
	GetByID(ctx context.Context, id int) (*domain.Book, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int) (*domain.Category, error)
}
