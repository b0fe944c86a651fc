package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/usecase"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeAuthUsecase implements the unexported authUsecaser interface via method matching.
type fakeAuthUsecase struct {
	register func(ctx context.Context, in usecase.RegisterInput) (*domain.AuthResult, error)
	login    func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	me       func(ctx context.Context, userID int) (*domain.User, error)
}

func (f *fakeAuthUsecase) Register(ctx context.Context, in usecase.RegisterInput) (*domain.AuthResult, error) {
	return f.register(ctx, in)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	return f.login(ctx, email, password)
}

func (f *fakeAuthUsecase) Me(ctx context.Context, userID int) (*domain.User, error) {
	return f.me(ctx, userID)
}

type fakeCatalog struct {
	listBooks       func(ctx context.Context) ([]domain.Book, error)
	search          func(ctx context.Context, keyword string) ([]domain.Book, error)
	booksByCategory func(ctx context.Context, id int) ([]domain.Book, error)
	getBook         func(ctx context.Context, id int) (*domain.Book, error)
	listCategories  func(ctx context.Context) ([]domain.Category, error)
}

func (f *fakeCatalog) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return f.listBooks(ctx)
}

func (f *fakeCatalog) NewestBooks(ctx context.Context) ([]domain.Book, error) {
	return f.listBooks(ctx)
}

func (f *fakeCatalog) Search(ctx context.Context, keyword string) ([]domain.Book, error) {
	return f.search(ctx, keyword)
}

func (f *fakeCatalog) BooksByCategory(ctx context.Context, id int) ([]domain.Book, error) {
	return f.booksByCategory(ctx, id)
}

func (f *fakeCatalog) GetBook(ctx context.Context, id int) (*domain.Book, error) {
	return f.getBook(ctx, id)
}

func (f *fakeCatalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return f.listCategories(ctx)
}

func (f *fakeCatalog) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	return nil, domain.ErrCategoryNotFound
}

type fakeCart struct {
	list   func(ctx context.Context, userID int) ([]domain.CartItem, error)
	add    func(ctx context.Context, userID, bookID, qty int) (*domain.CartItem, error)
	update func(ctx context.Context, userID, id, qty int) (*domain.CartItem, error)
	remove func(ctx context.Context, userID, id int) error
	clear  func(ctx context.Context, userID int) error
}

func (f *fakeCart) List(ctx context.Context, userID int) ([]domain.CartItem, error) {
	return f.list(ctx, userID)
}

func (f *fakeCart) Add(ctx context.Context, userID, bookID, qty int) (*domain.CartItem, error) {
	return f.add(ctx, userID, bookID, qty)
}

func (f *fakeCart) Update(ctx context.Context, userID, id, qty int) (*domain.CartItem, error) {
	return f.update(ctx, userID, id, qty)
}

func (f *fakeCart) Remove(ctx context.Context, userID, id int) error {
	return f.remove(ctx, userID, id)
}

func (f *fakeCart) Clear(ctx context.Context, userID int) error { return f.clear(ctx, userID) }

type fakeOrders struct {
	create func(ctx context.Context, in usecase.CreateOrderInput) (*domain.Order, error)
	list   func(ctx context.Context, userID int) ([]domain.Order, error)
	get    func(ctx context.Context, userID, id int) (*domain.Order, error)
	cancel func(ctx context.Context, userID, id int) (*domain.Order, error)
}

func (f *fakeOrders) Create(ctx context.Context, in usecase.CreateOrderInput) (*domain.Order, error) {
	return f.create(ctx, in)
}

func (f *fakeOrders) List(ctx context.Context, userID int) ([]domain.Order, error) {
	return f.list(ctx, userID)
}

func (f *fakeOrders) Get(ctx context.Context, userID, id int) (*domain.Order, error) {
	return f.get(ctx, userID, id)
}

func (f *fakeOrders) Cancel(ctx context.Context, userID, id int) (*domain.Order, error) {
	return f.cancel(ctx, userID, id)
}

type fakeReviews struct {
	listByBook func(ctx context.Context, bookID int) ([]domain.Review, error)
	stats      func(ctx context.Context, bookID int) (*domain.ReviewStats, error)
	create     func(ctx context.Context, in usecase.CreateReviewInput) (*domain.Review, error)
}

func (f *fakeReviews) ListByBook(ctx context.Context, bookID int) ([]domain.Review, error) {
	return f.listByBook(ctx, bookID)
}

func (f *fakeReviews) Stats(ctx context.Context, bookID int) (*domain.ReviewStats, error) {
	return f.stats(ctx, bookID)
}

func (f *fakeReviews) Create(ctx context.Context, in usecase.CreateReviewInput) (*domain.Review, error) {
	return f.create(ctx, in)
}

// asUser stands in for the Auth middleware.
func asUser(id int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", id)
		c.Next()
	}
}

type body struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r http.Handler, method, path, payload string) (int, body) {
	t.Helper()
	var rd io.Reader
	if payload != "" {
		rd = strings.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, rd)
	if payload != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var b body
	if err := json.Unmarshal(w.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return w.Code, b
}
