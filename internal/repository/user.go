package repository

import (
	"context"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

// Usecases depend on these interfaces rather than on Postgres, so tests can
// pass hand-written fakes.
type UserRepository interface {
	// Create returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
}
