package storefront

import (
	"context"
	"strings"

	"github.com/ErlanBelekov/bookstore/internal/api"
	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/resource"
	"github.com/ErlanBelekov/bookstore/internal/session"
)

type RegisterInput struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
}

type AuthRepository struct {
	api   *api.AuthAPI
	store session.Store
}

func NewAuthRepository(client *api.Client, store session.Store) *AuthRepository {
	return &AuthRepository{api: client.Auth(), store: store}
}

// Login authenticates and, on success, saves the token and profile.
func (r *AuthRepository) Login(ctx context.Context, email, password string) resource.Resource[domain.AuthResult] {
	res, err := r.api.Login(ctx, api.LoginRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return resource.Error[domain.AuthResult](errorMessage(err, msgLoginFailed))
	}
	return r.saveSession(res)
}

// Register creates an account and signs the new user in.
func (r *AuthRepository) Register(ctx context.Context, in RegisterInput) resource.Resource[domain.AuthResult] {
	res, err := r.api.Register(ctx, api.RegisterRequest{
		FullName:    strings.TrimSpace(in.FullName),
		Email:       strings.TrimSpace(in.Email),
		Password:    in.Password,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
	})
	if err != nil {
		return resource.Error[domain.AuthResult](errorMessage(err, msgRegisterFailed))
	}
	return r.saveSession(res)
}

func (r *AuthRepository) saveSession(res domain.AuthResult) resource.Resource[domain.AuthResult] {
	if res.Token == "" {
		return resource.Error[domain.AuthResult](api.EmptyResponseMessage)
	}
	if err := r.store.Save(res.Token, ProfileOf(res.User)); err != nil {
		return resource.Error[domain.AuthResult](err.Error())
	}
	return resource.Success(res)
}

// Me fetches the signed-in user from the server.
func (r *AuthRepository) Me(ctx context.Context) resource.Resource[domain.User] {
	u, err := r.api.Me(ctx)
	return result(u, err, msgProfileFailed)
}

func (r *AuthRepository) Logout() error {
	return r.store.Clear()
}

func (r *AuthRepository) IsLoggedIn() bool {
	return r.store.Token() != ""
}

// Profile returns the locally stored profile of the signed-in user.
func (r *AuthRepository) Profile() (session.Profile, bool) {
	return r.store.Profile()
}

func ProfileOf(u domain.User) session.Profile {
	return session.Profile{
		UserID:   u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
