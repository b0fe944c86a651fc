package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/repository"
)

const newestBooksLimit = 10

type CatalogUsecase struct {
	books      repository.BookRepository
	categories repository.CategoryRepository
}

func NewCatalogUsecase(books repository.BookRepository, categories repository.CategoryRepository) *CatalogUsecase {
	return &CatalogUsecase{books: books, categories: categories}
}

func (u *CatalogUsecase) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := u.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (u *CatalogUsecase) NewestBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := u.books.Newest(ctx, newestBooksLimit)
	if err != nil {
		return nil, fmt.Errorf("newest books: %w", err)
	}
	return books, nil
}

// Search returns the full list for a blank keyword.
func (u *CatalogUsecase) Search(ctx context.Context, keyword string) ([]domain.Book, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return u.ListBooks(ctx)
	}
	books, err := u.books.Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return books, nil
}

func (u *CatalogUsecase) BooksByCategory(ctx context.Context, categoryID int) ([]domain.Book, error) {
	if _, err := u.categories.GetByID(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	books, err := u.books.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list books by category: %w", err)
	}
	return books, nil
}

func (u *CatalogUsecase) GetBook(ctx context.Context, id int) (*domain.Book, error) {
	book, err := u.books.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cats, err := u.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (u *CatalogUsecase) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	cat, err := u.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return cat, nil
}
