package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/gin-gonic/gin"
)

type catalogUsecaser interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
	NewestBooks(ctx context.Context) ([]domain.Book, error)
	Search(ctx context.Context, keyword string) ([]domain.Book, error)
	BooksByCategory(ctx context.Context, categoryID int) ([]domain.Book, error)
	GetBook(ctx context.Context, id int) (*domain.Book, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int) (*domain.Category, error)
}

type BookHandler struct {
	catalog catalogUsecaser
	logger  *slog.Logger
}

func NewBookHandler(catalog catalogUsecaser, logger *slog.Logger) *BookHandler {
	return &BookHandler{catalog: catalog, logger: logger.With("component", "book_handler")}
}

// GET /api/books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.catalog.ListBooks(c.Request.Context())
	h.books(c, "list books", "Books retrieved successfully", books, err)
}

// GET /api/books/new
func (h *BookHandler) Newest(c *gin.Context) {
	books, err := h.catalog.NewestBooks(c.Request.Context())
	h.books(c, "list new books", "New books retrieved", books, err)
}

// GET /api/books/search?keyword=
func (h *BookHandler) Search(c *gin.Context) {
	books, err := h.catalog.Search(c.Request.Context(), c.Query("keyword"))
	h.books(c, "search books", "Search results", books, err)
}

// GET /api/books/category/:categoryId
func (h *BookHandler) ByCategory(c *gin.Context) {
	id, ok := paramID(c, "categoryId")
	if !ok {
		return
	}
	books, err := h.catalog.BooksByCategory(c.Request.Context(), id)
	h.books(c, "list books by category", "Books retrieved successfully", books, err)
}

// GET /api/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	book, err := h.catalog.GetBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			fail(c, http.StatusNotFound, errBookNotFound)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get book", "book_id", id, "error", err)
		fail(c, http.StatusInternalServerError, errInternalServer)
		return
	}

	respond(c, http.StatusOK, "Book found", book)
}

// GET /api/categories
func (h *BookHandler) Categories(c *gin.Context) {
	cats, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list categories", "error", err)
		fail(c, http.StatusInternalServerError, errInternalServer)
		return
	}
	respond(c, http.StatusOK, "Categories retrieved successfully", nonNil(cats))
}

// GET /api/categories/:id
func (h *BookHandler) Category(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	cat, err := h.catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			fail(c, http.StatusNotFound, errCategoryNotFound)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get category", "category_id", id, "error", err)
		fail(c, http.StatusInternalServerError, errInternalServer)
		return
	}

	respond(c, http.StatusOK, "Category found", cat)
}

func (h *BookHandler) books(c *gin.Context, op, message string, books []domain.Book, err error) {
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			fail(c, http.StatusNotFound, errCategoryNotFound)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), op, "error", err)
		fail(c, http.StatusInternalServerError, errInternalServer)
		return
	}
	respond(c, http.StatusOK, message, nonNil(books))
}
