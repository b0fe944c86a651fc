package domain

import (
	"errors"
	"time"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type Category struct {
	ID          int    `json:"categoryId"`
	Name        string `json:"categoryName"`
	Description string `json:"description"`
}

type Book struct {
	ID              int       `json:"bookId"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	CategoryID      int       `json:"categoryId"`
	CategoryName    string    `json:"categoryName"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	StockQuantity   int       `json:"stockQuantity"`
	ISBN            string    `json:"isbn"`
	Publisher       string    `json:"publisher"`
	PublicationYear int       `json:"publicationYear"`
	Pages           int       `json:"pages"`
	Language        string    `json:"language"`
	CoverImageURL   string    `json:"coverImageUrl"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	AverageRating   float64   `json:"averageRating"`
	ReviewCount     int       `json:"reviewCount"`
}
