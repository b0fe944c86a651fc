package viewmodel_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/repository"
)

// memDB backs the in-memory repositories the end-to-end tests run the real
// router against.
type memDB struct {
	mu         sync.Mutex
	nextID     int
	users      map[int]*domain.User
	categories map[int]domain.Category
	books      map[int]*domain.Book
	cart       map[int]*domain.CartItem
	orders     map[int]*domain.Order
	reviews    map[int]*domain.Review

	failCartAdd bool
}

func newMemDB() *memDB {
	return &memDB{
		nextID:     100,
		users:      map[int]*domain.User{},
		categories: map[int]domain.Category{},
		books:      map[int]*domain.Book{},
		cart:       map[int]*domain.CartItem{},
		orders:     map[int]*domain.Order{},
		reviews:    map[int]*domain.Review{},
	}
}

func (db *memDB) id() int {
	db.nextID++
	return db.nextID
}

func (db *memDB) addBook(b domain.Book) {
	db.mu.Lock()
	defer db.mu.Unlock()
	b.IsActive = true
	b.CategoryName = db.categories[b.CategoryID].Name
	db.books[b.ID] = &b
}

func (db *memDB) stock(bookID int) int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.books[bookID].StockQuantity
}

// rated returns b with its review summary filled in. Callers hold db.mu.
func (db *memDB) rated(b domain.Book) domain.Book {
	s := db.statsLocked(b.ID)
	b.AverageRating, b.ReviewCount = s.AverageRating, s.TotalReviews
	return b
}

func (db *memDB) statsLocked(bookID int) domain.ReviewStats {
	s := domain.ReviewStats{BookID: bookID}
	sum := 0
	for _, rv := range db.reviews {
		if rv.BookID == bookID {
			sum += rv.Rating
			s.TotalReviews++
		}
	}
	if s.TotalReviews > 0 {
		s.AverageRating = float64(sum) / float64(s.TotalReviews)
	}
	return s
}

type memUsers struct{ db *memDB }

func (r memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.users {
		if existing.Email == u.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	created := *u
	created.ID = r.db.id()
	r.db.users[created.ID] = &created
	out := created
	return &out, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r memUsers) FindByID(_ context.Context, id int) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

type memBooks struct{ db *memDB }

func (r memBooks) filter(keep func(domain.Book) bool) []domain.Book {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.Book
	for _, b := range r.db.books {
		if b.IsActive && keep(*b) {
			out = append(out, r.db.rated(*b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r memBooks) List(context.Context) ([]domain.Book, error) {
	return r.filter(func(domain.Book) bool { return true }), nil
}

func (r memBooks) Newest(_ context.Context, limit int) ([]domain.Book, error) {
	books := r.filter(func(domain.Book) bool { return true })
	sort.Slice(books, func(i, j int) bool { return books[i].ID > books[j].ID })
	if len(books) > limit {
		books = books[:limit]
	}
	return books, nil
}

func (r memBooks) Search(_ context.Context, keyword string) ([]domain.Book, error) {
	kw := strings.ToLower(keyword)
	return r.filter(func(b domain.Book) bool {
		return strings.Contains(strings.ToLower(b.Title), kw) || strings.Contains(strings.ToLower(b.Author), kw)
	}), nil
}

func (r memBooks) ListByCategory(_ context.Context, categoryID int) ([]domain.Book, error) {
	return r.filter(func(b domain.Book) bool { return b.CategoryID == categoryID }), nil
}

func (r memBooks) GetByID(_ context.Context, id int) (*domain.Book, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b, ok := r.db.books[id]
	if !ok || !b.IsActive {
		return nil, domain.ErrBookNotFound
	}
	out := r.db.rated(*b)
	return &out, nil
}

type memCategories struct{ db *memDB }

func (r memCategories) List(context.Context) ([]domain.Category, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.Category
	for _, c := range r.db.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memCategories) GetByID(_ context.Context, id int) (*domain.Category, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

type memCart struct{ db *memDB }

// line returns a copy of the cart line with its book refreshed. Callers hold
// the lock.
func (r memCart) line(it *domain.CartItem) domain.CartItem {
	out := *it
	out.Book = *r.db.books[it.Book.ID]
	return out
}

func (r memCart) List(_ context.Context, userID int) ([]domain.CartItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.CartItem
	for _, it := range r.db.cart {
		if it.UserID == userID {
			out = append(out, r.line(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memCart) GetByID(_ context.Context, id, userID int) (*domain.CartItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it, ok := r.db.cart[id]
	if !ok || it.UserID != userID {
		return nil, domain.ErrCartItemNotFound
	}
	out := r.line(it)
	return &out, nil
}

func (r memCart) Add(_ context.Context, userID, bookID, quantity int) (*domain.CartItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failCartAdd {
		return nil, errors.New("connection reset by peer")
	}
	stock := r.db.books[bookID].StockQuantity
	for _, it := range r.db.cart {
		if it.UserID == userID && it.Book.ID == bookID {
			if it.Quantity+quantity > stock {
				return nil, domain.ErrInsufficientStock
			}
			it.Quantity += quantity
			out := r.line(it)
			return &out, nil
		}
	}
	if quantity > stock {
		return nil, domain.ErrInsufficientStock
	}
	it := &domain.CartItem{ID: r.db.id(), UserID: userID, Book: domain.Book{ID: bookID}, Quantity: quantity, AddedAt: time.Now()}
	r.db.cart[it.ID] = it
	out := r.line(it)
	return &out, nil
}

func (r memCart) SetQuantity(_ context.Context, id, userID, quantity int) (*domain.CartItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it, ok := r.db.cart[id]
	if !ok || it.UserID != userID {
		return nil, domain.ErrCartItemNotFound
	}
	it.Quantity = quantity
	out := r.line(it)
	return &out, nil
}

func (r memCart) Delete(_ context.Context, id, userID int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it, ok := r.db.cart[id]
	if !ok || it.UserID != userID {
		return domain.ErrCartItemNotFound
	}
	delete(r.db.cart, id)
	return nil
}

func (r memCart) Clear(_ context.Context, userID int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for id, it := range r.db.cart {
		if it.UserID == userID {
			delete(r.db.cart, id)
		}
	}
	return nil
}

type memOrders struct{ db *memDB }

func (r memOrders) PlaceFromCart(_ context.Context, in repository.PlaceOrderInput) (*domain.Order, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var lines []*domain.CartItem
	for _, it := range r.db.cart {
		if it.UserID == in.UserID {
			lines = append(lines, it)
		}
	}
	if len(lines) == 0 {
		return nil, domain.ErrCartEmpty
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	for _, it := range lines {
		if b := r.db.books[it.Book.ID]; b.StockQuantity < it.Quantity {
			return nil, &domain.StockError{Title: b.Title}
		}
	}

	order := &domain.Order{
		ID:              r.db.id(),
		UserID:          in.UserID,
		OrderDate:       domain.Millis(time.Now()),
		Status:          domain.OrderPending,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   domain.PaymentUnpaid,
		ShippingAddress: in.ShippingAddress,
		PhoneNumber:     in.PhoneNumber,
		Notes:           in.Notes,
	}
	for _, it := range lines {
		b := r.db.books[it.Book.ID]
		b.StockQuantity -= it.Quantity
		sub := b.Price * float64(it.Quantity)
		order.Items = append(order.Items, domain.OrderItem{
			ID: r.db.id(), OrderID: order.ID, Book: *b,
			Quantity: it.Quantity, PriceAtPurchase: b.Price, Subtotal: sub,
		})
		order.TotalAmount += sub
		delete(r.db.cart, it.ID)
	}
	r.db.orders[order.ID] = order
	out := *order
	return &out, nil
}

func (r memOrders) ListByUser(_ context.Context, userID int) ([]domain.Order, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.Order
	for _, o := range r.db.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r memOrders) GetByID(_ context.Context, id, userID int) (*domain.Order, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	o, ok := r.db.orders[id]
	if !ok || o.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	out := *o
	return &out, nil
}

func (r memOrders) Cancel(_ context.Context, id, userID int) (*domain.Order, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	o, ok := r.db.orders[id]
	if !ok || o.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	if !o.Status.Cancellable() {
		return nil, domain.ErrOrderNotCancellable
	}
	for _, it := range o.Items {
		r.db.books[it.Book.ID].StockQuantity += it.Quantity
	}
	o.Status = domain.OrderCancelled
	out := *o
	return &out, nil
}

func (r memOrders) CancelStale(context.Context, time.Time, int) ([]int, error) {
	return nil, nil
}

type memReviews struct{ db *memDB }

func (r memReviews) ListByBook(_ context.Context, bookID int) ([]domain.Review, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []domain.Review{}
	for _, rv := range r.db.reviews {
		if rv.BookID == bookID {
			out = append(out, *rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r memReviews) Stats(_ context.Context, bookID int) (*domain.ReviewStats, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s := r.db.statsLocked(bookID)
	return &s, nil
}

func (r memReviews) Create(_ context.Context, rv *domain.Review) (*domain.Review, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.reviews {
		if existing.UserID == rv.UserID && existing.BookID == rv.BookID {
			return nil, domain.ErrAlreadyReviewed
		}
	}
	created := *rv
	created.ID = r.db.id()
	created.CreatedAt = time.Now()
	if u, ok := r.db.users[rv.UserID]; ok {
		created.UserName = u.FullName
	}
	r.db.reviews[created.ID] = &created
	out := created
	return &out, nil
}
