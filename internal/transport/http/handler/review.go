package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/usecase"
	"github.com/gin-gonic/gin"
)

type reviewUsecaser interface {
	ListByBook(ctx context.Context, bookID int) ([]domain.Review, error)
	Stats(ctx context.Context, bookID int) (*domain.ReviewStats, error)
	Create(ctx context.Context, in usecase.CreateReviewInput) (*domain.Review, error)
}

type ReviewHandler struct {
	reviews reviewUsecaser
	logger  *slog.Logger
}

func NewReviewHandler(reviews reviewUsecaser, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, logger: logger.With("component", "review_handler")}
}

type createReviewRequest struct {
	BookID  int    `json:"bookId"  binding:"required,min=1"`
	Rating  int    `json:"rating"  binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

// GET /api/reviews/book/:bookId
func (h *ReviewHandler) ListByBook(c *gin.Context) {
	bookID, ok := paramID(c, "bookId")
	if !ok {
		return
	}

	reviews, err := h.reviews.ListByBook(c.Request.Context(), bookID)
	if err != nil {
		h.reviewError(c, "list reviews", err)
		return
	}
	respond(c, http.StatusOK, "Reviews retrieved successfully", nonNil(reviews))
}

// GET /api/reviews/book/:bookId/stats
func (h *ReviewHandler) Stats(c *gin.Context) {
	bookID, ok := paramID(c, "bookId")
	if !ok {
		return
	}

	stats, err := h.reviews.Stats(c.Request.Context(), bookID)
	if err != nil {
		h.reviewError(c, "review stats", err)
		return
	}
	respond(c, http.StatusOK, "Review stats retrieved", stats)
}

// POST /api/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	review, err := h.reviews.Create(c.Request.Context(), usecase.CreateReviewInput{
		UserID:  userID(c),
		BookID:  req.BookID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		h.reviewError(c, "create review", err)
		return
	}
	respond(c, http.StatusCreated, "Review created successfully", review)
}

func (h *ReviewHandler) reviewError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrBookNotFound):
		fail(c, http.StatusNotFound, errBookNotFound)
	case errors.Is(err, domain.ErrAlreadyReviewed):
		fail(c, http.StatusConflict, errAlreadyReviewed)
	case errors.Is(err, domain.ErrInvalidRating):
		fail(c, http.StatusBadRequest, errInvalidRating)
	default:
		h.logger.ErrorContext(c.Request.Context(), op, "error", err)
		fail(c, http.StatusInternalServerError, errInternalServer)
	}
}
