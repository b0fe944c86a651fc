package viewmodel

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/resource"
	"github.com/ErlanBelekov/bookstore/internal/storefront"
)

const minPhoneLength = 10

// FormError is a checkout validation failure; its text is shown as-is.
type FormError string

func (e FormError) Error() string { return string(e) }

const (
	ErrAddressRequired FormError = "Please enter shipping address"
	ErrPhoneRequired   FormError = "Please enter phone number"
	ErrPhoneTooShort   FormError = "Phone number must be at least 10 digits"
	ErrPaymentRequired FormError = "Please select payment method"
)

type Checkout struct {
	orders      OrderService
	CreateOrder *resource.State[domain.Order]
}

func NewCheckout(orders OrderService) *Checkout {
	return &Checkout{orders: orders, CreateOrder: resource.NewState[domain.Order]()}
}

func (vm *Checkout) PlaceOrder(ctx context.Context, in storefront.CreateOrderInput) resource.Resource[domain.Order] {
	return resource.Run(ctx, vm.CreateOrder, func(ctx context.Context) resource.Resource[domain.Order] {
		return vm.orders.Create(ctx, in)
	})
}

func (vm *Checkout) Reset() { vm.CreateOrder.Reset() }

// ValidateForm checks the checkout form in display order and returns the
// first failure, or nil.
func (vm *Checkout) ValidateForm(address, phone, paymentMethod string) error {
	switch {
	case strings.TrimSpace(address) == "":
		return ErrAddressRequired
	case strings.TrimSpace(phone) == "":
		return ErrPhoneRequired
	case utf8.RuneCountInString(phone) < minPhoneLength:
		return ErrPhoneTooShort
	case strings.TrimSpace(paymentMethod) == "":
		return ErrPaymentRequired
	}
	return nil
}
