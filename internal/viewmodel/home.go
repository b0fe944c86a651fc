package viewmodel

import (
	"context"
	"strings"
	"sync"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/resource"
)

// Home is the catalog screen: a book list that can be searched or narrowed
// to one category, plus the category list.
type Home struct {
	catalog    CatalogService
	Books      *resource.State[[]domain.Book]
	Categories *resource.State[[]domain.Category]

	mu       sync.Mutex
	category int
}

func NewHome(catalog CatalogService) *Home {
	return &Home{
		catalog:    catalog,
		Books:      resource.NewLoadingState[[]domain.Book](),
		Categories: resource.NewLoadingState[[]domain.Category](),
	}
}

func (vm *Home) LoadBooks(ctx context.Context) resource.Resource[[]domain.Book] {
	return resource.Run(ctx, vm.Books, vm.catalog.AllBooks)
}

func (vm *Home) LoadCategories(ctx context.Context) resource.Resource[[]domain.Category] {
	return resource.Run(ctx, vm.Categories, vm.catalog.Categories)
}

// Search replaces the book list with matches for keyword. A blank keyword
// reloads the full list.
func (vm *Home) Search(ctx context.Context, keyword string) resource.Resource[[]domain.Book] {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return vm.LoadBooks(ctx)
	}
	return resource.Run(ctx, vm.Books, func(ctx context.Context) resource.Resource[[]domain.Book] {
		return vm.catalog.Search(ctx, keyword)
	})
}

// FilterByCategory selects a category and loads its books. Zero clears the
// selection and reloads the full list.
func (vm *Home) FilterByCategory(ctx context.Context, categoryID int) resource.Resource[[]domain.Book] {
	vm.mu.Lock()
	vm.category = categoryID
	vm.mu.Unlock()

	if categoryID == 0 {
		return vm.LoadBooks(ctx)
	}
	return resource.Run(ctx, vm.Books, func(ctx context.Context) resource.Resource[[]domain.Book] {
		return vm.catalog.ByCategory(ctx, categoryID)
	})
}

// SelectedCategory returns the category chosen by FilterByCategory.
func (vm *Home) SelectedCategory() (int, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.category, vm.category != 0
}

func (vm *Home) Refresh(ctx context.Context) {
	vm.LoadBooks(ctx)
	vm.LoadCategories(ctx)
}

// ErrRatingOutOfRange is published by SubmitReview without calling the
// server.
const ErrRatingOutOfRange FormError = "Rating must be between 1 and 5"

// BookDetail is the book screen: the book, its reviews with their summary,
// and the add-to-cart and write-a-review actions.
type BookDetail struct {
	catalog     CatalogService
	cart        CartService
	reviews     ReviewService
	Book        *resource.State[domain.Book]
	AddToCart   *resource.State[string]
	Reviews     *resource.State[[]domain.Review]
	ReviewStats *resource.State[domain.ReviewStats]
	PostReview  *resource.State[domain.Review]
}

func NewBookDetail(catalog CatalogService, cart CartService, reviews ReviewService) *BookDetail {
	return &BookDetail{
		catalog:     catalog,
		cart:        cart,
		reviews:     reviews,
		Book:        resource.NewLoadingState[domain.Book](),
		AddToCart:   resource.NewState[string](),
		Reviews:     resource.NewLoadingState[[]domain.Review](),
		ReviewStats: resource.NewLoadingState[domain.ReviewStats](),
		PostReview:  resource.NewState[domain.Review](),
	}
}

func (vm *BookDetail) LoadBook(ctx context.Context, bookID int) resource.Resource[domain.Book] {
	return resource.Run(ctx, vm.Book, func(ctx context.Context) resource.Resource[domain.Book] {
		return vm.catalog.BookByID(ctx, bookID)
	})
}

func (vm *BookDetail) Add(ctx context.Context, bookID, quantity int) resource.Resource[string] {
	return resource.Run(ctx, vm.AddToCart, func(ctx context.Context) resource.Resource[string] {
		return vm.cart.Add(ctx, bookID, quantity)
	})
}

func (vm *BookDetail) ResetAddToCart() { vm.AddToCart.Reset() }

func (vm *BookDetail) LoadReviews(ctx context.Context, bookID int) resource.Resource[[]domain.Review] {
	return resource.Run(ctx, vm.Reviews, func(ctx context.Context) resource.Resource[[]domain.Review] {
		return vm.reviews.ByBook(ctx, bookID)
	})
}

func (vm *BookDetail) LoadReviewStats(ctx context.Context, bookID int) resource.Resource[domain.ReviewStats] {
	return resource.Run(ctx, vm.ReviewStats, func(ctx context.Context) resource.Resource[domain.ReviewStats] {
		return vm.reviews.Stats(ctx, bookID)
	})
}

// SubmitReview posts a review and, on success, reloads the reviews and
// their summary.
func (vm *BookDetail) SubmitReview(ctx context.Context, bookID, rating int, comment string) resource.Resource[domain.Review] {
	res := resource.Run(ctx, vm.PostReview, func(ctx context.Context) resource.Resource[domain.Review] {
		if rating < domain.MinRating || rating > domain.MaxRating {
			return resource.Error[domain.Review](ErrRatingOutOfRange.Error())
		}
		return vm.reviews.Create(ctx, bookID, rating, comment)
	})
	if res.IsSuccess() {
		vm.LoadReviews(ctx, bookID)
		vm.LoadReviewStats(ctx, bookID)
	}
	return res
}

func (vm *BookDetail) ResetPostReview() { vm.PostReview.Reset() }
