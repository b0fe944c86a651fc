package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/email"
	"github.com/ErlanBelekov/bookstore/internal/metrics"
	"github.com/ErlanBelekov/bookstore/internal/repository"
)

type OrderUsecase struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	email  email.Sender
	logger *slog.Logger
}

func NewOrderUsecase(orders repository.OrderRepository, users repository.UserRepository, sender email.Sender, logger *slog.Logger) *OrderUsecase {
	return &OrderUsecase{
		orders: orders,
		users:  users,
		email:  sender,
		logger: logger.With("component", "order_usecase"),
	}
}

type CreateOrderInput struct {
	UserID          int
	ShippingAddress string
	PhoneNumber     string
	PaymentMethod   string
	Notes           *string
}

// Create places an order from the user's cart and emails a confirmation.
// A failed email is logged and never fails the order.
func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	method, err := domain.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var notes *string
	if in.Notes != nil {
		if n := strings.TrimSpace(*in.Notes); n != "" {
			notes = &n
		}
	}

	order, err := u.orders.PlaceFromCart(ctx, repository.PlaceOrderInput{
		UserID:          in.UserID,
		PaymentMethod:   method,
		ShippingAddress: strings.TrimSpace(in.ShippingAddress),
		PhoneNumber:     strings.TrimSpace(in.PhoneNumber),
		Notes:           notes,
	})
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	metrics.OrdersPlacedTotal.WithLabelValues(string(order.PaymentMethod)).Inc()
	metrics.OrderValue.Observe(order.TotalAmount)

	u.sendConfirmation(ctx, order)
	return order, nil
}

func (u *OrderUsecase) sendConfirmation(ctx context.Context, order *domain.Order) {
	user, err := u.users.FindByID(ctx, order.UserID)
	if err != nil {
		metrics.EmailFailuresTotal.Inc()
		u.logger.ErrorContext(ctx, "order confirmation: find user", "order_id", order.ID, "error", err)
		return
	}

	subject, body, err := email.OrderConfirmation(user, order)
	if err == nil {
		err = u.email.Send(ctx, user.Email, subject, body)
	}
	if err != nil {
		metrics.EmailFailuresTotal.Inc()
		u.logger.ErrorContext(ctx, "order confirmation", "order_id", order.ID, "error", err)
	}
}

// List returns the user's orders, newest first.
func (u *OrderUsecase) List(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (u *OrderUsecase) Get(ctx context.Context, userID, orderID int) (*domain.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID, userID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (u *OrderUsecase) Cancel(ctx context.Context, userID, orderID int) (*domain.Order, error) {
	order, err := u.orders.Cancel(ctx, orderID, userID)
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	metrics.OrdersCancelledTotal.WithLabelValues("customer").Inc()
	return order, nil
}
