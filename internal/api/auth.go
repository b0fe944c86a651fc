package api

import (
	"context"
	"net/http"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type AuthAPI struct {
	c *Client
}

// POST /api/auth/login
func (a *AuthAPI) Login(ctx context.Context, req LoginRequest) (domain.AuthResult, error) {
	return fetch[domain.AuthResult](ctx, a.c, http.MethodPost, "/api/auth/login", nil, req)
}

// POST /api/auth/register
func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) (domain.AuthResult, error) {
	return fetch[domain.AuthResult](ctx, a.c, http.MethodPost, "/api/auth/register", nil, req)
}

// GET /api/auth/me
func (a *AuthAPI) Me(ctx context.Context) (domain.User, error) {
	return fetch[domain.User](ctx, a.c, http.MethodGet, "/api/auth/me", nil, nil)
}
