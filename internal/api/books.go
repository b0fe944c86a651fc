package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

type BookAPI struct {
	c *Client
}

func (b *BookAPI) All(ctx context.Context) ([]domain.Book, error) {
	return fetch[[]domain.Book](ctx, b.c, http.MethodGet, "/api/books", nil, nil)
}

func (b *BookAPI) New(ctx context.Context) ([]domain.Book, error) {
	return fetch[[]domain.Book](ctx, b.c, http.MethodGet, "/api/books/new", nil, nil)
}

func (b *BookAPI) ByID(ctx context.Context, id int) (domain.Book, error) {
	return fetch[domain.Book](ctx, b.c, http.MethodGet, "/api/books/"+strconv.Itoa(id), nil, nil)
}

func (b *BookAPI) Search(ctx context.Context, keyword string) ([]domain.Book, error) {
	q := url.Values{"keyword": {keyword}}
	return fetch[[]domain.Book](ctx, b.c, http.MethodGet, "/api/books/search", q, nil)
}

func (b *BookAPI) ByCategory(ctx context.Context, categoryID int) ([]domain.Book, error) {
	return fetch[[]domain.Book](ctx, b.c, http.MethodGet, "/api/books/category/"+strconv.Itoa(categoryID), nil, nil)
}

func (b *BookAPI) Categories(ctx context.Context) ([]domain.Category, error) {
	return fetch[[]domain.Category](ctx, b.c, http.MethodGet, "/api/categories", nil, nil)
}

func (b *BookAPI) Category(ctx context.Context, id int) (domain.Category, error) {
	return fetch[domain.Category](ctx, b.c, http.MethodGet, "/api/categories/"+strconv.Itoa(id), nil, nil)
}
