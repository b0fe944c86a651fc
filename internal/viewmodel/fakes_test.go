package viewmodel

import (
	"context"
	"sync"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/resource"
	"github.com/ErlanBelekov/bookstore/internal/session"
	"github.com/ErlanBelekov/bookstore/internal/storefront"
)

// events records what a State publishes: "loading", "success", "idle" or
// "error: <message>".
type events struct {
	mu   sync.Mutex
	seen []string
}

func (e *events) list() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.seen...)
}

func watch[T any](s *resource.State[T]) *events {
	e := &events{}
	s.Observe(func(r resource.Resource[T], ok bool) {
		e.mu.Lock()
		defer e.mu.Unlock()
		switch {
		case !ok:
			e.seen = append(e.seen, "idle")
		case r.IsError():
			e.seen = append(e.seen, "error: "+r.Message())
		default:
			e.seen = append(e.seen, r.Status().String())
		}
	})
	return e
}

type fakeAuth struct {
	loginFn    func(ctx context.Context, email, password string) resource.Resource[domain.AuthResult]
	registerFn func(ctx context.Context, in storefront.RegisterInput) resource.Resource[domain.AuthResult]
	logoutFn   func() error
	profileFn  func() (session.Profile, bool)
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) resource.Resource[domain.AuthResult] {
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuth) Register(ctx context.Context, in storefront.RegisterInput) resource.Resource[domain.AuthResult] {
	return f.registerFn(ctx, in)
}

func (f *fakeAuth) Logout() error { return f.logoutFn() }

func (f *fakeAuth) Profile() (session.Profile, bool) { return f.profileFn() }

type fakeCatalog struct {
	allFn        func(ctx context.Context) resource.Resource[[]domain.Book]
	byIDFn       func(ctx context.Context, id int) resource.Resource[domain.Book]
	searchFn     func(ctx context.Context, keyword string) resource.Resource[[]domain.Book]
	byCategoryFn func(ctx context.Context, id int) resource.Resource[[]domain.Book]
	categoriesFn func(ctx context.Context) resource.Resource[[]domain.Category]
}

func (f *fakeCatalog) AllBooks(ctx context.Context) resource.Resource[[]domain.Book] {
	return f.allFn(ctx)
}

func (f *fakeCatalog) BookByID(ctx context.Context, id int) resource.Resource[domain.Book] {
	return f.byIDFn(ctx, id)
}

func (f *fakeCatalog) Search(ctx context.Context, keyword string) resource.Resource[[]domain.Book] {
	return f.searchFn(ctx, keyword)
}

func (f *fakeCatalog) ByCategory(ctx context.Context, id int) resource.Resource[[]domain.Book] {
	return f.byCategoryFn(ctx, id)
}

func (f *fakeCatalog) Categories(ctx context.Context) resource.Resource[[]domain.Category] {
	return f.categoriesFn(ctx)
}

type fakeCart struct {
	itemsFn  func(ctx context.Context) resource.Resource[[]domain.CartItem]
	addFn    func(ctx context.Context, bookID, qty int) resource.Resource[string]
	updateFn func(ctx context.Context, id, qty int) resource.Resource[domain.CartItem]
	removeFn func(ctx context.Context, id int) resource.Resource[string]
	clearFn  func(ctx context.Context) resource.Resource[string]
}

func (f *fakeCart) Items(ctx context.Context) resource.Resource[[]domain.CartItem] {
	return f.itemsFn(ctx)
}

func (f *fakeCart) Add(ctx context.Context, bookID, qty int) resource.Resource[string] {
	return f.addFn(ctx, bookID, qty)
}

func (f *fakeCart) Update(ctx context.Context, id, qty int) resource.Resource[domain.CartItem] {
	return f.updateFn(ctx, id, qty)
}

func (f *fakeCart) Remove(ctx context.Context, id int) resource.Resource[string] {
	return f.removeFn(ctx, id)
}

func (f *fakeCart) Clear(ctx context.Context) resource.Resource[string] {
	return f.clearFn(ctx)
}

type fakeOrders struct {
	allFn    func(ctx context.Context) resource.Resource[[]domain.Order]
	byIDFn   func(ctx context.Context, id int) resource.Resource[domain.Order]
	createFn func(ctx context.Context, in storefront.CreateOrderInput) resource.Resource[domain.Order]
	cancelFn func(ctx context.Context, id int) resource.Resource[domain.Order]
}

func (f *fakeOrders) All(ctx context.Context) resource.Resource[[]domain.Order] {
	return f.allFn(ctx)
}

func (f *fakeOrders) ByID(ctx context.Context, id int) resource.Resource[domain.Order] {
	return f.byIDFn(ctx, id)
}

func (f *fakeOrders) Create(ctx context.Context, in storefront.CreateOrderInput) resource.Resource[domain.Order] {
	return f.createFn(ctx, in)
}

func (f *fakeOrders) Cancel(ctx context.Context, id int) resource.Resource[domain.Order] {
	return f.cancelFn(ctx, id)
}

type fakeReviews struct {
	byBookFn func(ctx context.Context, bookID int) resource.Resource[[]domain.Review]
	statsFn  func(ctx context.Context, bookID int) resource.Resource[domain.ReviewStats]
	createFn func(ctx context.Context, bookID, rating int, comment string) resource.Resource[domain.Review]
}

func (f *fakeReviews) ByBook(ctx context.Context, bookID int) resource.Resource[[]domain.Review] {
	return f.byBookFn(ctx, bookID)
}

func (f *fakeReviews) Stats(ctx context.Context, bookID int) resource.Resource[domain.ReviewStats] {
	return f.statsFn(ctx, bookID)
}

func (f *fakeReviews) Create(ctx context.Context, bookID, rating int, comment string) resource.Resource[domain.Review] {
	return f.createFn(ctx, bookID, rating, comment)
}
