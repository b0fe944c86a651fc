package viewmodel

import (
	"context"

	"github.com/ErlanBelekov/bookstore/internal/resource"
)

const (
	defaultFullName = "User"
	defaultRole     = "CUSTOMER"
	msgLogoutFailed = "Logout failed"
)

type UserInfo struct {
	UserID   int
	Email    string
	FullName string
	Role     string
}

type Profile struct {
	auth   AuthService
	Logout *resource.State[struct{}]
}

func NewProfile(auth AuthService) *Profile {
	return &Profile{auth: auth, Logout: resource.NewState[struct{}]()}
}

// Info reads the signed-in user from the token holder. ok is false when no
// user id or email is stored.
func (vm *Profile) Info() (UserInfo, bool) {
	p, ok := vm.auth.Profile()
	if !ok || p.UserID == 0 || p.Email == "" {
		return UserInfo{}, false
	}

	info := UserInfo{UserID: p.UserID, Email: p.Email, FullName: p.FullName, Role: p.Role}
	if info.FullName == "" {
		info.FullName = defaultFullName
	}
	if info.Role == "" {
		info.Role = defaultRole
	}
	return info, true
}

// SignOut clears the stored session.
func (vm *Profile) SignOut(ctx context.Context) resource.Resource[struct{}] {
	return resource.Run(ctx, vm.Logout, func(context.Context) resource.Resource[struct{}] {
		if err := vm.auth.Logout(); err != nil {
			msg := err.Error()
			if msg == "" {
				msg = msgLogoutFailed
			}
			return resource.Error[struct{}](msg)
		}
		return resource.Success(struct{}{})
	})
}

func (vm *Profile) ResetLogout() { vm.Logout.Reset() }
