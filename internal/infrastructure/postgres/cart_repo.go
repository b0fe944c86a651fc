package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

const cartItemSelect = `SELECT ci.id, ci.user_id, ci.quantity, ci.added_at, ` + bookColumns + `
	FROM cart_items ci
	JOIN books b ON b.id = ci.book_id
	JOIN categories c ON c.id = b.category_id `

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

func (r *CartRepository) List(ctx context.Context, userID int) ([]domain.CartItem, error) {
	rows, err := r.pool.Query(ctx, cartItemSelect+`WHERE ci.user_id = $1 ORDER BY ci.added_at ASC, ci.id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		it, err := scanCartItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

func (r *CartRepository) GetByID(ctx context.Context, id, userID int) (*domain.CartItem, error) {
	return r.get(ctx, r.pool, id, userID)
}

func (r *CartRepository) Add(ctx context.Context, userID, bookID, quantity int) (*domain.CartItem, error) {
	// Both branches check stock in the same statement, so concurrent adds
	// for one line cannot together exceed it: the conflicting insert waits
	// for the first to commit and re-evaluates the guard on the merged row.
	var id int
	err := r.pool.QueryRow(ctx, `
		INSERT INTO cart_items (user_id, book_id, quantity)
		SELECT $1, b.id, $3
		FROM   books b
		WHERE  b.id = $2 AND b.stock_quantity >= $3
		ON CONFLICT (user_id, book_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		WHERE cart_items.quantity + EXCLUDED.quantity <=
		      (SELECT stock_quantity FROM books WHERE id = EXCLUDED.book_id)
		RETURNING id`, userID, bookID, quantity).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInsufficientStock
		}
		return nil, fmt.Errorf("add cart item: %w", err)
	}
	return r.get(ctx, r.pool, id, userID)
}

func (r *CartRepository) SetQuantity(ctx context.Context, id, userID, quantity int) (*domain.CartItem, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE cart_items SET quantity = $3 WHERE id = $1 AND user_id = $2`,
		id, userID, quantity)
	if err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrCartItemNotFound
	}
	return r.get(ctx, r.pool, id, userID)
}

func (r *CartRepository) Delete(ctx context.Context, id, userID int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID int) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (r *CartRepository) get(ctx context.Context, q querier, id, userID int) (*domain.CartItem, error) {
	row := q.QueryRow(ctx, cartItemSelect+`WHERE ci.id = $1 AND ci.user_id = $2`, id, userID)
	return scanCartItem(row)
}

func scanCartItem(row rowScanner) (*domain.CartItem, error) {
	var it domain.CartItem
	dest := append([]any{&it.ID, &it.UserID, &it.Quantity, &it.AddedAt}, bookFields(&it.Book)...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("scan cart item: %w", err)
	}
	return &it, nil
}
