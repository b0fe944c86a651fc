package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/repository"
	"github.com/ErlanBelekov/bookstore/internal/usecase"
)

var customer = &domain.User{ID: 7, FullName: "Ann", Email: "ann@example.com"}

func usersWithCustomer() *fakeUserRepo {
	return &fakeUserRepo{
		findByID: func(context.Context, int) (*domain.User, error) { return customer, nil },
	}
}

func placed(in repository.PlaceOrderInput) *domain.Order {
	return &domain.Order{
		ID:              100,
		UserID:          in.UserID,
		Status:          domain.OrderPending,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   domain.PaymentUnpaid,
		ShippingAddress: in.ShippingAddress,
		PhoneNumber:     in.PhoneNumber,
		Notes:           in.Notes,
		TotalAmount:     20,
	}
}

func TestCreateOrder_SendsConfirmation(t *testing.T) {
	var got repository.PlaceOrderInput
	orders := &fakeOrderRepo{
		placeFromCart: func(_ context.Context, in repository.PlaceOrderInput) (*domain.Order, error) {
			got = in
			return placed(in), nil
		},
	}
	var sentTo string
	sender := &fakeEmailSender{
		send: func(_ context.Context, to, subject, _ string) error {
			sentTo = to
			return nil
		},
	}
	blank := "   "
	uc := usecase.NewOrderUsecase(orders, usersWithCustomer(), sender, slog.Default())

	order, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		UserID:          7,
		ShippingAddress: " 1 Main St ",
		PhoneNumber:     "0123456789",
		PaymentMethod:   "momo",
		Notes:           &blank,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.OrderPending || order.PaymentStatus != domain.PaymentUnpaid {
		t.Errorf("order = %+v", order)
	}
	if got.PaymentMethod != domain.PaymentMoMo || got.ShippingAddress != "1 Main St" || got.Notes != nil {
		t.Errorf("repo input = %+v", got)
	}
	if sentTo != customer.Email {
		t.Errorf("confirmation sent to %q", sentTo)
	}
}

func TestCreateOrder_EmailFailureDoesNotFailOrder(t *testing.T) {
	orders := &fakeOrderRepo{
		placeFromCart: func(_ context.Context, in repository.PlaceOrderInput) (*domain.Order, error) {
			return placed(in), nil
		},
	}
	sender := &fakeEmailSender{
		send: func(context.Context, string, string, string) error { return errors.New("smtp unavailable") },
	}
	uc := usecase.NewOrderUsecase(orders, usersWithCustomer(), sender, slog.Default())

	if _, err := uc.Create(context.Background(), usecase.CreateOrderInput{UserID: 7, PaymentMethod: "COD"}); err != nil {
		t.Fatalf("email failure must not fail the order: %v", err)
	}
}

func TestCreateOrder_Errors(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		repoErr  error
		wantErr  error
		wantCall bool
	}{
		{"invalid payment", "CASH", nil, domain.ErrInvalidPaymentMethod, false},
		{"empty cart", "COD", domain.ErrCartEmpty, domain.ErrCartEmpty, true},
		{"out of stock", "VNPAY", &domain.StockError{Title: "Dune"}, domain.ErrInsufficientStock, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			orders := &fakeOrderRepo{
				placeFromCart: func(context.Context, repository.PlaceOrderInput) (*domain.Order, error) {
					called = true
					return nil, tt.repoErr
				},
			}
			uc := usecase.NewOrderUsecase(orders, usersWithCustomer(), &fakeEmailSender{}, slog.Default())

			_, err := uc.Create(context.Background(), usecase.CreateOrderInput{UserID: 7, PaymentMethod: tt.method})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
			if called != tt.wantCall {
				t.Errorf("repo called = %v, want %v", called, tt.wantCall)
			}
		})
	}
}

func TestCancelOrder_NotCancellable(t *testing.T) {
	orders := &fakeOrderRepo{
		cancel: func(context.Context, int, int) (*domain.Order, error) {
			return nil, domain.ErrOrderNotCancellable
		},
	}
	uc := usecase.NewOrderUsecase(orders, usersWithCustomer(), &fakeEmailSender{}, slog.Default())

	_, err := uc.Cancel(context.Background(), 7, 1)
	if !errors.Is(err, domain.ErrOrderNotCancellable) {
		t.Errorf("want ErrOrderNotCancellable, got %v", err)
	}
}

func TestGetOrder_OtherUser(t *testing.T) {
	orders := &fakeOrderRepo{
		getByID: func(_ context.Context, id, userID int) (*domain.Order, error) {
			if userID != 7 {
				return nil, domain.ErrOrderNotFound
			}
			return &domain.Order{ID: id, UserID: userID}, nil
		},
	}
	uc := usecase.NewOrderUsecase(orders, usersWithCustomer(), &fakeEmailSender{}, slog.Default())

	if _, err := uc.Get(context.Background(), 8, 1); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("want ErrOrderNotFound, got %v", err)
	}
}
