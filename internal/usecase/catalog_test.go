package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/usecase"
)

func TestCatalog_SearchBlankListsAll(t *testing.T) {
	var listed, searched bool
	books := &fakeBookRepo{
		list: func(context.Context) ([]domain.Book, error) {
			listed = true
			return []domain.Book{{ID: 1}}, nil
		},
		search: func(context.Context, string) ([]domain.Book, error) {
			searched = true
			return nil, nil
		},
	}
	uc := usecase.NewCatalogUsecase(books, &fakeCategoryRepo{})

	if _, err := uc.Search(context.Background(), "  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !listed || searched {
		t.Errorf("listed=%v searched=%v, want true/false", listed, searched)
	}
}

func TestCatalog_NewestUsesLimit(t *testing.T) {
	var gotLimit int
	books := &fakeBookRepo{
		newest: func(_ context.Context, limit int) ([]domain.Book, error) {
			gotLimit = limit
			return []domain.Book{}, nil
		},
	}
	if _, err := usecase.NewCatalogUsecase(books, &fakeCategoryRepo{}).NewestBooks(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotLimit != 10 {
		t.Errorf("limit = %d, want 10", gotLimit)
	}
}

func TestCatalog_BooksByUnknownCategory(t *testing.T) {
	cats := &fakeCategoryRepo{
		getByID: func(context.Context, int) (*domain.Category, error) { return nil, domain.ErrCategoryNotFound },
	}
	_, err := usecase.NewCatalogUsecase(&fakeBookRepo{}, cats).BooksByCategory(context.Background(), 99)
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("want ErrCategoryNotFound, got %v", err)
	}
}

func TestCatalog_GetBookNotFound(t *testing.T) {
	books := &fakeBookRepo{
		getByID: func(context.Context, int) (*domain.Book, error) { return nil, domain.ErrBookNotFound },
	}
	_, err := usecase.NewCatalogUsecase(books, &fakeCategoryRepo{}).GetBook(context.Background(), 5)
	if !errors.Is(err, domain.ErrBookNotFound) {
		t.Errorf("want ErrBookNotFound, got %v", err)
	}
}
