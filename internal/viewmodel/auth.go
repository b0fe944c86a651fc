package viewmodel

import (
	"context"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/resource"
	"github.com/ErlanBelekov/bookstore/internal/storefront"
)

type Login struct {
	auth  AuthService
	State *resource.State[domain.AuthResult]
}

func NewLogin(auth AuthService) *Login {
	return &Login{auth: auth, State: resource.NewState[domain.AuthResult]()}
}

func (vm *Login) Login(ctx context.Context, email, password string) resource.Resource[domain.AuthResult] {
	return resource.Run(ctx, vm.State, func(ctx context.Context) resource.Resource[domain.AuthResult] {
		return vm.auth.Login(ctx, email, password)
	})
}

func (vm *Login) Reset() { vm.State.Reset() }

type Register struct {
	auth  AuthService
	State *resource.State[domain.AuthResult]
}

func NewRegister(auth AuthService) *Register {
	return &Register{auth: auth, State: resource.NewState[domain.AuthResult]()}
}

func (vm *Register) Register(ctx context.Context, in storefront.RegisterInput) resource.Resource[domain.AuthResult] {
	return resource.Run(ctx, vm.State, func(ctx context.Context) resource.Resource[domain.AuthResult] {
		return vm.auth.Register(ctx, in)
	})
}

func (vm *Register) Reset() { vm.State.Reset() }
