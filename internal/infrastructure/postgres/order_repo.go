package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/repository"
)

const orderColumns = `id, user_id, order_date, total_amount::float8, status, payment_method,
	payment_status, shipping_address, phone_number, notes`

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

type cartLine struct {
	bookID   int
	quantity int
	title    string
	price    float64
	stock    int
}

func (r *OrderRepository) PlaceFromCart(ctx context.Context, in repository.PlaceOrderInput) (*domain.Order, error) {
	var orderID int

	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		// Lock the books in id order so concurrent checkouts cannot deadlock
		// or oversell.
		rows, err := tx.Query(ctx, `
			SELECT ci.book_id, ci.quantity, b.title, b.price::float8, b.stock_quantity
			FROM cart_items ci
			JOIN books b ON b.id = ci.book_id
			WHERE ci.user_id = $1
			ORDER BY ci.book_id
			FOR UPDATE OF b`, in.UserID)
		if err != nil {
			return fmt.Errorf("lock cart books: %w", err)
		}
		lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (cartLine, error) {
			var l cartLine
			err := row.Scan(&l.bookID, &l.quantity, &l.title, &l.price, &l.stock)
			return l, err
		})
		if err != nil {
			return fmt.Errorf("scan cart lines: %w", err)
		}
		if len(lines) == 0 {
			return domain.ErrCartEmpty
		}

		var total float64
		for _, l := range lines {
			if l.quantity > l.stock {
				return &domain.StockError{Title: l.title}
			}
			total += l.price * float64(l.quantity)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO orders (user_id, total_amount, status, payment_method, payment_status,
			                    shipping_address, phone_number, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			in.UserID, total, domain.OrderPending, in.PaymentMethod, domain.PaymentUnpaid,
			in.ShippingAddress, in.PhoneNumber, in.Notes,
		).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		batch := &pgx.Batch{}
		for _, l := range lines {
			batch.Queue(`
				INSERT INTO order_items (order_id, book_id, quantity, price_at_purchase, subtotal)
				VALUES ($1, $2, $3, $4, $5)`,
				orderID, l.bookID, l.quantity, l.price, l.price*float64(l.quantity))
			batch.Queue(`UPDATE books SET stock_quantity = stock_quantity - $2 WHERE id = $1`,
				l.bookID, l.quantity)
		}
		batch.Queue(`DELETE FROM cart_items WHERE user_id = $1`, in.UserID)
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("write order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, orderID, in.UserID)
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY order_date DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	if err := loadItems(ctx, r.pool, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id, userID int) (*domain.Order, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 AND user_id = $2`, id, userID)
	o, err := scanOrder(row)
	if err != nil {
		return nil, err
	}

	orders := []domain.Order{*o}
	if err := loadItems(ctx, r.pool, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *OrderRepository) Cancel(ctx context.Context, id, userID int) (*domain.Order, error) {
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		var status domain.OrderStatus
		err := tx.QueryRow(ctx,
			`SELECT status FROM orders WHERE id = $1 AND user_id = $2 FOR UPDATE`,
			id, userID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrOrderNotFound
			}
			return fmt.Errorf("lock order: %w", err)
		}
		if !status.Cancellable() {
			return domain.ErrOrderNotCancellable
		}
		return cancelOrders(ctx, tx, []int{id})
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id, userID)
}

func (r *OrderRepository) CancelStale(ctx context.Context, cutoff time.Time, limit int) ([]int, error) {
	var ids []int

	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		// SKIP LOCKED leaves orders that a customer is cancelling right now
		// (or another sweeper holds) for the next cycle.
		rows, err := tx.Query(ctx, `
			SELECT id FROM orders
			WHERE  status         = $1
			  AND  payment_status = $2
			  AND  order_date     < $3
			ORDER BY order_date ASC
			LIMIT $4
			FOR UPDATE SKIP LOCKED`,
			domain.OrderPending, domain.PaymentUnpaid, cutoff, limit)
		if err != nil {
			return fmt.Errorf("claim stale orders: %w", err)
		}
		ids, err = pgx.CollectRows(rows, pgx.RowTo[int])
		if err != nil {
			return fmt.Errorf("scan stale orders: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}
		return cancelOrders(ctx, tx, ids)
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// cancelOrders restores stock for every item of the given locked orders and
// marks them cancelled. Paid orders are flagged for refund.
func cancelOrders(ctx context.Context, tx pgx.Tx, ids []int) error {
	_, err := tx.Exec(ctx, `
		UPDATE books b
		SET    stock_quantity = b.stock_quantity + s.quantity
		FROM (
			SELECT book_id, SUM(quantity) AS quantity
			FROM   order_items
			WHERE  order_id = ANY($1)
			GROUP BY book_id
		) s
		WHERE b.id = s.book_id`, ids)
	if err != nil {
		return fmt.Errorf("restore stock: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE orders
		SET    status         = $2,
		       payment_status = CASE WHEN payment_status = $3 THEN $4 ELSE payment_status END,
		       updated_at     = NOW()
		WHERE id = ANY($1)`,
		ids, domain.OrderCancelled, domain.PaymentPaid, domain.PaymentRefunded)
	if err != nil {
		return fmt.Errorf("mark cancelled: %w", err)
	}
	return nil
}

// loadItems fills Items for every order with one query.
func loadItems(ctx context.Context, q querier, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int, len(orders))
	byID := make(map[int]*domain.Order, len(orders))
	for i := range orders {
		orders[i].Items = []domain.OrderItem{}
		ids[i] = orders[i].ID
		byID[orders[i].ID] = &orders[i]
	}

	rows, err := q.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.quantity, oi.price_at_purchase::float8, oi.subtotal::float8,
		       `+bookColumns+`
		FROM order_items oi
		JOIN books b ON b.id = oi.book_id
		JOIN categories c ON c.id = b.category_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id ASC`, ids)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.OrderItem
		dest := append([]any{&it.ID, &it.OrderID, &it.Quantity, &it.PriceAtPurchase, &it.Subtotal},
			bookFields(&it.Book)...)
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		if o := byID[it.OrderID]; o != nil {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		o         domain.Order
		orderDate time.Time
	)
	err := row.Scan(
		&o.ID, &o.UserID, &orderDate, &o.TotalAmount, &o.Status, &o.PaymentMethod,
		&o.PaymentStatus, &o.ShippingAddress, &o.PhoneNumber, &o.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	o.OrderDate = domain.Millis(orderDate)
	return &o, nil
}
