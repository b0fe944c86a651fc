package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/repository"
)

const (
	defaultJWTTTL = 24 * time.Hour
	tokenType     = "Bearer"
)

type AuthUsecase struct {
	users    repository.UserRepository
	jwtKey   []byte
	jwtTTL   time.Duration
	hashCost int
}

func NewAuthUsecase(users repository.UserRepository, jwtKey []byte, jwtTTL time.Duration) *AuthUsecase {
	if jwtTTL <= 0 {
		jwtTTL = defaultJWTTTL
	}
	return &AuthUsecase{
		users:    users,
		jwtKey:   jwtKey,
		jwtTTL:   jwtTTL,
		hashCost: bcrypt.DefaultCost,
	}
}

// WithHashCost overrides the bcrypt cost; tests use bcrypt.MinCost.
func (u *AuthUsecase) WithHashCost(cost int) *AuthUsecase {
	u.hashCost = cost
	return u
}

type RegisterInput struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
}

// Register creates a CUSTOMER account and signs it in.
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*domain.AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, &domain.User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Address:      strings.TrimSpace(in.Address),
		Role:         domain.RoleCustomer,
		IsActive:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return u.signIn(user)
}

// Login checks the credentials. Unknown emails, inactive accounts and wrong
// passwords all yield domain.ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return u.signIn(user)
}

func (u *AuthUsecase) Me(ctx context.Context, userID int) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (u *AuthUsecase) signIn(user *domain.User) (*domain.AuthResult, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.Itoa(user.ID),
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(u.jwtTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(u.jwtKey)
	if err != nil {
		return nil, fmt.Errorf("sign jwt: %w", err)
	}
	return &domain.AuthResult{Token: signed, TokenType: tokenType, User: *user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
