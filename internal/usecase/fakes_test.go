package usecase_test

import (
	"context"
	"time"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/repository"
)

type fakeUserRepo struct {
	create      func(ctx context.Context, u *domain.User) (*domain.User, error)
	findByEmail func(ctx context.Context, email string) (*domain.User, error)
	findByID    func(ctx context.Context, id int) (*domain.User, error)
}

func (r *fakeUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return r.create(ctx, u)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return r.findByID(ctx, id)
}

type fakeBookRepo struct {
	list           func(ctx context.Context) ([]domain.Book, error)
	newest         func(ctx context.Context, limit int) ([]domain.Book, error)
	search         func(ctx context.Context, keyword string) ([]domain.Book, error)
	listByCategory func(ctx context.Context, categoryID int) ([]domain.Book, error)
	getByID        func(ctx context.Context, id int) (*domain.Book, error)
}

func (r *fakeBookRepo) List(ctx context.Context) ([]domain.Book, error) { return r.list(ctx) }

func (r *fakeBookRepo) Newest(ctx context.Context, limit int) ([]domain.Book, error) {
	return r.newest(ctx, limit)
}

func (r *fakeBookRepo) Search(ctx context.Context, keyword string) ([]domain.Book, error) {
	return r.search(ctx, keyword)
}

func (r *fakeBookRepo) ListByCategory(ctx context.Context, categoryID int) ([]domain.Book, error) {
	return r.listByCategory(ctx, categoryID)
}

func (r *fakeBookRepo) GetByID(ctx context.Context, id int) (*domain.Book, error) {
	return r.getByID(ctx, id)
}

type fakeCategoryRepo struct {
	list    func(ctx context.Context) ([]domain.Category, error)
	getByID func(ctx context.Context, id int) (*domain.Category, error)
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]domain.Category, error) { return r.list(ctx) }

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	return r.getByID(ctx, id)
}

type fakeCartRepo struct {
	list        func(ctx context.Context, userID int) ([]domain.CartItem, error)
	getByID     func(ctx context.Context, id, userID int) (*domain.CartItem, error)
	add         func(ctx context.Context, userID, bookID, quantity int) (*domain.CartItem, error)
	setQuantity func(ctx context.Context, id, userID, quantity int) (*domain.CartItem, error)
	delete      func(ctx context.Context, id, userID int) error
	clear       func(ctx context.Context, userID int) error
}

func (r *fakeCartRepo) List(ctx context.Context, userID int) ([]domain.CartItem, error) {
	return r.list(ctx, userID)
}

func (r *fakeCartRepo) GetByID(ctx context.Context, id, userID int) (*domain.CartItem, error) {
	return r.getByID(ctx, id, userID)
}

func (r *fakeCartRepo) Add(ctx context.Context, userID, bookID, quantity int) (*domain.CartItem, error) {
	return r.add(ctx, userID, bookID, quantity)
}

func (r *fakeCartRepo) SetQuantity(ctx context.Context, id, userID, quantity int) (*domain.CartItem, error) {
	return r.setQuantity(ctx, id, userID, quantity)
}

func (r *fakeCartRepo) Delete(ctx context.Context, id, userID int) error {
	return r.delete(ctx, id, userID)
}

func (r *fakeCartRepo) Clear(ctx context.Context, userID int) error { return r.clear(ctx, userID) }

type fakeOrderRepo struct {
	placeFromCart func(ctx context.Context, in repository.PlaceOrderInput) (*domain.Order, error)
	listByUser    func(ctx context.Context, userID int) ([]domain.Order, error)
	getByID       func(ctx context.Context, id, userID int) (*domain.Order, error)
	cancel        func(ctx context.Context, id, userID int) (*domain.Order, error)
	cancelStale   func(ctx context.Context, cutoff time.Time, limit int) ([]int, error)
}

func (r *fakeOrderRepo) PlaceFromCart(ctx context.Context, in repository.PlaceOrderInput) (*domain.Order, error) {
	return r.placeFromCart(ctx, in)
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID int) ([]domain.Order, error) {
	return r.listByUser(ctx, userID)
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id, userID int) (*domain.Order, error) {
	return r.getByID(ctx, id, userID)
}

func (r *fakeOrderRepo) Cancel(ctx context.Context, id, userID int) (*domain.Order, error) {
	return r.cancel(ctx, id, userID)
}

func (r *fakeOrderRepo) CancelStale(ctx context.Context, cutoff time.Time, limit int) ([]int, error) {
	return r.cancelStale(ctx, cutoff, limit)
}

type fakeEmailSender struct {
	send func(ctx context.Context, to, subject, body string) error
}

func (s *fakeEmailSender) Send(ctx context.Context, to, subject, body string) error {
	return s.send(ctx, to, subject, body)
}

type fakeReviewRepo struct {
	listByBook func(ctx context.Context, bookID int) ([]domain.Review, error)
	stats      func(ctx context.Context, bookID int) (*domain.ReviewStats, error)
	create     func(ctx context.Context, rv *domain.Review) (*domain.Review, error)
}

func (r *fakeReviewRepo) ListByBook(ctx context.Context, bookID int) ([]domain.Review, error) {
	return r.listByBook(ctx, bookID)
}

func (r *fakeReviewRepo) Stats(ctx context.Context, bookID int) (*domain.ReviewStats, error) {
	return r.stats(ctx, bookID)
}

func (r *fakeReviewRepo) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	return r.create(ctx, rv)
}
