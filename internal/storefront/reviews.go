package storefront

import (
	"context"
	"strings"

	"github.com/ErlanBelekov/bookstore/internal/api"
	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/resource"
)

type ReviewRepository struct {
	api *api.ReviewAPI
}

func NewReviewRepository(client *api.Client) *ReviewRepository {
	return &ReviewRepository{api: client.Reviews()}
}

func (r *ReviewRepository) ByBook(ctx context.Context, bookID int) resource.Resource[[]domain.Review] {
	reviews, err := r.api.ByBook(ctx, bookID)
	return result(reviews, err, msgReviewsFailed)
}

func (r *ReviewRepository) Stats(ctx context.Context, bookID int) resource.Resource[domain.ReviewStats] {
	stats, err := r.api.Stats(ctx, bookID)
	return result(stats, err, msgReviewStatsFailed)
}

func (r *ReviewRepository) Create(ctx context.Context, bookID, rating int, comment string) resource.Resource[domain.Review] {
	review, err := r.api.Create(ctx, api.CreateReviewRequest{
		BookID:  bookID,
		Rating:  rating,
		Comment: strings.TrimSpace(comment),
	})
	return result(review, err, msgReviewFailed)
}
