package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) ListByBook(ctx context.Context, bookID int) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT rv.id, rv.book_id, rv.user_id, u.full_name, rv.rating, rv.comment, rv.created_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.book_id = $1
		ORDER BY rv.created_at DESC, rv.id DESC`, bookID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Stats(ctx context.Context, bookID int) (*domain.ReviewStats, error) {
	s := domain.ReviewStats{BookID: bookID}
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*)::int
		FROM reviews
		WHERE book_id = $1`, bookID).Scan(&s.AverageRating, &s.TotalReviews)
	if err != nil {
		return nil, fmt.Errorf("review stats: %w", err)
	}
	return &s, nil
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	row := r.pool.QueryRow(ctx, `
		WITH ins AS (
			INSERT INTO reviews (book_id, user_id, rating, comment)
			VALUES ($1, $2, $3, $4)
			RETURNING id, book_id, user_id, rating, comment, created_at
		)
		SELECT ins.id, ins.book_id, ins.user_id, u.full_name, ins.rating, ins.comment, ins.created_at
		FROM ins
		JOIN users u ON u.id = ins.user_id`,
		rv.BookID, rv.UserID, rv.Rating, rv.Comment)

	created, err := scanReview(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, domain.ErrAlreadyReviewed
			case "23503":
				return nil, domain.ErrBookNotFound
			}
		}
		return nil, err
	}
	return created, nil
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var rv domain.Review
	err := row.Scan(&rv.ID, &rv.BookID, &rv.UserID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan review: %w", err)
	}
	return &rv, nil
}
