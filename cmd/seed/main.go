// seed creates the schema and inserts categories, books, a demo customer
// and their reviews into the local dev database. Prices are in dong.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/ErlanBelekov/bookstore/internal/infrastructure/postgres"
)

const (
	seedEmail    = "reader@bookstore.local"
	seedPassword = "password123"
)

type categorySpec struct {
	name        string
	description string
}

type bookSpec struct {
	title    string
	author   string
	category string
	price    float64
	stock    int
	isbn     string
	year     int
	pages    int
}

var categories = []categorySpec{
	{"Fiction", "Novels and short stories"},
	{"Science", "Popular science and natural history"},
	{"Programming", "Software engineering and computer science"},
	{"History", "World and regional history"},
}

var books = []bookSpec{
	{"Dune", "Frank Herbert", "Fiction", 189000, 25, "9780441172719", 1965, 412},
	{"The Left Hand of Darkness", "Ursula K. Le Guin", "Fiction", 155000, 12, "9780441478125", 1969, 304},
	{"Beloved", "Toni Morrison", "Fiction", 168000, 8, "9781400033416", 1987, 324},
	{"A Brief History of Time", "Stephen Hawking", "Science", 210000, 15, "9780553380163", 1988, 212},
	{"The Selfish Gene", "Richard Dawkins", "Science", 199000, 10, "9780198788607", 1976, 496},
	{"The Go Programming Language", "Alan Donovan, Brian Kernighan", "Programming", 590000, 6, "9780134190440", 2015, 380},
	{"Designing Data-Intensive Applications", "Martin Kleppmann", "Programming", 650000, 9, "9781449373320", 2017, 616},
	{"Structure and Interpretation of Computer Programs", "Harold Abelson, Gerald Sussman", "Programming", 720000, 3, "9780262510875", 1996, 657},
	{"SPQR", "Mary Beard", "History", 265000, 7, "9781631492228", 2015, 608},
	{"The Silk Roads", "Peter Frankopan", "History", 245000, 1, "9781101912379", 2015, 656},
}

type reviewSpec struct {
	isbn    string
	rating  int
	comment string
}

// Written by the demo customer.
var reviews = []reviewSpec{
	{"9780441172719", 5, "Still the best world-building in the genre."},
	{"9780134190440", 4, "Clear and thorough, a little dated in places."},
	{"9781449373320", 5, ""},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	categoryIDs := make(map[string]int, len(categories))
	for _, c := range categories {
		var id int
		err := pool.QueryRow(ctx, `
			INSERT INTO categories (name, description)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
			RETURNING id`,
			c.name, c.description,
		).Scan(&id)
		if err != nil {
			log.Fatalf("upsert category %s: %v", c.name, err)
		}
		categoryIDs[c.name] = id
	}

	// Insert books, skip any that already exist (idempotent re-runs)
	var inserted, skipped int
	for _, b := range books {
		tag, err := pool.Exec(ctx, `
			INSERT INTO books (
				title, author, category_id, price, stock_quantity,
				isbn, publication_year, pages, language
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'English')
			ON CONFLICT (isbn) WHERE isbn <> '' DO NOTHING`,
			b.title, b.author, categoryIDs[b.category], b.price, b.stock,
			b.isbn, b.year, b.pages,
		)
		if err != nil {
			log.Fatalf("insert book %s: %v", b.title, err)
		}
		if tag.RowsAffected() == 0 {
			skipped++
		} else {
			inserted++
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var userID int
	err = pool.QueryRow(ctx, `
		INSERT INTO users (full_name, email, password_hash, phone_number, address)
		VALUES ('Demo Reader', $1, $2, '0901234567', '1 Library Lane')
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = NOW()
		RETURNING id`,
		seedEmail, string(hash),
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	var reviewed int
	for _, rv := range reviews {
		tag, err := pool.Exec(ctx, `
			INSERT INTO reviews (book_id, user_id, rating, comment)
			SELECT id, $2, $3, $4 FROM books WHERE isbn = $1
			ON CONFLICT (user_id, book_id) DO NOTHING`,
			rv.isbn, userID, rv.rating, rv.comment,
		)
		if err != nil {
			log.Fatalf("insert review for %s: %v", rv.isbn, err)
		}
		reviewed += int(tag.RowsAffected())
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Categories:    %d\n", len(categoryIDs))
	fmt.Printf("  Books created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Printf("  User:          %s / %s (id %d)\n", seedEmail, seedPassword, userID)
	fmt.Printf("  Reviews added: %d\n", reviewed)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — sign in with the storefront CLI:")
	fmt.Println()
	fmt.Printf("    go run ./cmd/storefront login --email %s\n", seedEmail)
	fmt.Println()
	fmt.Println("  Step 2 — browse and fill the cart:")
	fmt.Println()
	fmt.Println("    go run ./cmd/storefront books list")
	fmt.Println("    go run ./cmd/storefront books reviews 1")
	fmt.Println("    go run ./cmd/storefront cart add 1 --quantity 2")
	fmt.Println()
	fmt.Println("  Step 3 — check out and review the order:")
	fmt.Println()
	fmt.Println("    go run ./cmd/storefront checkout --address '1 Library Lane' --phone 0901234567 --payment COD")
	fmt.Println("    go run ./cmd/storefront orders list")
}
