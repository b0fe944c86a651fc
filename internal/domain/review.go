package domain

import (
	"errors"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrAlreadyReviewed = errors.New("book already reviewed by user")
	ErrInvalidRating   = errors.New("rating out of range")
)

type Review struct {
	ID        int       `json:"reviewId"`
	BookID    int       `json:"bookId"`
	UserID    int       `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewStats summarises the reviews of one book. AverageRating is zero
// when there are no reviews.
type ReviewStats struct {
	BookID        int     `json:"bookId"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}
