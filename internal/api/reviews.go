package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

type CreateReviewRequest struct {
	BookID  int    `json:"bookId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type ReviewAPI struct {
	c *Client
}

func (a *ReviewAPI) ByBook(ctx context.Context, bookID int) ([]domain.Review, error) {
	return fetch[[]domain.Review](ctx, a.c, http.MethodGet, "/api/reviews/book/"+strconv.Itoa(bookID), nil, nil)
}

func (a *ReviewAPI) Stats(ctx context.Context, bookID int) (domain.ReviewStats, error) {
	return fetch[domain.ReviewStats](ctx, a.c, http.MethodGet, "/api/reviews/book/"+strconv.Itoa(bookID)+"/stats", nil, nil)
}

func (a *ReviewAPI) Create(ctx context.Context, req CreateReviewRequest) (domain.Review, error) {
	return fetch[domain.Review](ctx, a.c, http.MethodPost, "/api/reviews", nil, req)
}
