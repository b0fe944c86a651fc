// Package viewmodel holds per-screen state for the storefront. Every trigger
// publishes Loading and then exactly one terminal resource on its State.
// Triggers block until the call completes; run them in a goroutine for
// background execution. Concurrent triggers on the same holder are not
// coordinated and the last write wins.
package viewmodel

import (
	"context"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/resource"
	"github.com/ErlanBelekov/bookstore/internal/session"
	"github.com/ErlanBelekov/bookstore/internal/storefront"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) resource.Resource[domain.AuthResult]
	Register(ctx context.Context, in storefront.RegisterInput) resource.Resource[domain.AuthResult]
	Logout() error
	Profile() (session.Profile, bool)
}

type CatalogService interface {
	AllBooks(ctx context.Context) resource.Resource[[]domain.Book]
	BookByID(ctx context.Context, id int) resource.Resource[domain.Book]
	Search(ctx context.Context, keyword string) resource.Resource[[]domain.Book]
	ByCategory(ctx context.Context, categoryID int) resource.Resource[[]domain.Book]
	Categories(ctx context.Context) resource.Resource[[]domain.Category]
}

type CartService interface {
	Items(ctx context.Context) resource.Resource[[]domain.CartItem]
	Add(ctx context.Context, bookID, quantity int) resource.Resource[string]
	Update(ctx context.Context, cartItemID, quantity int) resource.Resource[domain.CartItem]
	Remove(ctx context.Context, cartItemID int) resource.Resource[string]
	Clear(ctx context.Context) resource.Resource[string]
}

type OrderService interface {
	All(ctx context.Context) resource.Resource[[]domain.Order]
	ByID(ctx context.Context, id int) resource.Resource[domain.Order]
	Create(ctx context.Context, in storefront.CreateOrderInput) resource.Resource[domain.Order]
	Cancel(ctx context.Context, id int) resource.Resource[domain.Order]
}

type ReviewService interface {
	ByBook(ctx context.Context, bookID int) resource.Resource[[]domain.Review]
	Stats(ctx context.Context, bookID int) resource.Resource[domain.ReviewStats]
	Create(ctx context.Context, bookID, rating int, comment string) resource.Resource[domain.Review]
}

var (
	_ AuthService    = (*storefront.AuthRepository)(nil)
	_ CatalogService = (*storefront.BookRepository)(nil)
	_ CartService    = (*storefront.CartRepository)(nil)
	_ OrderService   = (*storefront.OrderRepository)(nil)
	_ ReviewService  = (*storefront.ReviewRepository)(nil)
)
