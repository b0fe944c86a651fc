package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

// bookColumns expects books aliased as b and categories as c. The rating
// columns are correlated so the constant works with any FROM clause.
const bookColumns = `b.id, b.title, b.author, b.category_id, c.name, b.description,
	b.price::float8, b.stock_quantity, b.isbn, b.publisher, b.publication_year,
	b.pages, b.language, b.cover_image_url, b.is_active, b.created_at,
	(SELECT COALESCE(AVG(rv.rating), 0)::float8 FROM reviews rv WHERE rv.book_id = b.id),
	(SELECT COUNT(*)::int FROM reviews rv WHERE rv.book_id = b.id)`

const bookFrom = ` FROM books b JOIN categories c ON c.id = b.category_id `

type BookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

func (r *BookRepository) List(ctx context.Context) ([]domain.Book, error) {
	return r.query(ctx, `SELECT `+bookColumns+bookFrom+`
		WHERE b.is_active
		ORDER BY b.title ASC, b.id ASC`)
}

func (r *BookRepository) Newest(ctx context.Context, limit int) ([]domain.Book, error) {
	return r.query(ctx, `SELECT `+bookColumns+bookFrom+`
		WHERE b.is_active
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $1`, limit)
}

func (r *BookRepository) Search(ctx context.Context, keyword string) ([]domain.Book, error) {
	return r.query(ctx, `SELECT `+bookColumns+bookFrom+`
		WHERE b.is_active
		  AND (b.title ILIKE '%' || $1 || '%'
		    OR b.author ILIKE '%' || $1 || '%'
		    OR b.isbn = $1)
		ORDER BY b.title ASC, b.id ASC`, keyword)
}

func (r *BookRepository) ListByCategory(ctx context.Context, categoryID int) ([]domain.Book, error) {
	return r.query(ctx, `SELECT `+bookColumns+bookFrom+`
		WHERE b.is_active AND b.category_id = $1
		ORDER BY b.title ASC, b.id ASC`, categoryID)
}

func (r *BookRepository) GetByID(ctx context.Context, id int) (*domain.Book, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookColumns+bookFrom+`WHERE b.id = $1 AND b.is_active`, id)

	var b domain.Book
	if err := row.Scan(bookFields(&b)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("scan book: %w", err)
	}
	return &b, nil
}

func (r *BookRepository) query(ctx context.Context, sql string, args ...any) ([]domain.Book, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	books := []domain.Book{}
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(bookFields(&b)...); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// bookFields returns scan targets in bookColumns order.
func bookFields(b *domain.Book) []any {
	return []any{
		&b.ID, &b.Title, &b.Author, &b.CategoryID, &b.CategoryName, &b.Description,
		&b.Price, &b.StockQuantity, &b.ISBN, &b.Publisher, &b.PublicationYear,
		&b.Pages, &b.Language, &b.CoverImageURL, &b.IsActive, &b.CreatedAt,
		&b.AverageRating, &b.ReviewCount,
	}
}

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	cats := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		cats = append(cats, *c)
	}
	return cats, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, name, description FROM categories WHERE id = $1`, id)
	return scanCategory(row)
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}
	return &c, nil
}
