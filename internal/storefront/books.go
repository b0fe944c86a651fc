package storefront

import (
	"context"

	"github.com/ErlanBelekov/bookstore/internal/api"
	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/resource"
)

type BookRepository struct {
	api *api.BookAPI
}

func NewBookRepository(client *api.Client) *BookRepository {
	return &BookRepository{api: client.Books()}
}

func (r *BookRepository) AllBooks(ctx context.Context) resource.Resource[[]domain.Book] {
	books, err := r.api.All(ctx)
	return result(books, err, msgBooksFailed)
}

func (r *BookRepository) NewBooks(ctx context.Context) resource.Resource[[]domain.Book] {
	books, err := r.api.New(ctx)
	return result(books, err, msgBooksFailed)
}

func (r *BookRepository) BookByID(ctx context.Context, id int) resource.Resource[domain.Book] {
	book, err := r.api.ByID(ctx, id)
	return result(book, err, msgBookFailed)
}

func (r *BookRepository) Search(ctx context.Context, keyword string) resource.Resource[[]domain.Book] {
	books, err := r.api.Search(ctx, keyword)
	return result(books, err, msgSearchFailed)
}

func (r *BookRepository) ByCategory(ctx context.Context, categoryID int) resource.Resource[[]domain.Book] {
	books, err := r.api.ByCategory(ctx, categoryID)
	return result(books, err, msgByCategoryFailed)
}

func (r *BookRepository) Categories(ctx context.Context) resource.Resource[[]domain.Category] {
	cats, err := r.api.Categories(ctx)
	return result(cats, err, msgCategoriesFailed)
}

func (r *BookRepository) Category(ctx context.Context, id int) resource.Resource[domain.Category] {
	cat, err := r.api.Category(ctx, id)
	return result(cat, err, msgCategoryFailed)
}
