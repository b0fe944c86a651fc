package storefront

import (
	"context"
	"strings"

	"github.com/ErlanBelekov/bookstore/internal/api"
	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/resource"
)

type CreateOrderInput struct {
	ShippingAddress string
	PhoneNumber     string
	PaymentMethod   domain.PaymentMethod
	// Notes is optional; blank notes are not sent.
	Notes string
}

type OrderRepository struct {
	api *api.OrderAPI
}

func NewOrderRepository(client *api.Client) *OrderRepository {
	return &OrderRepository{api: client.Orders()}
}

func (r *OrderRepository) All(ctx context.Context) resource.Resource[[]domain.Order] {
	orders, err := r.api.All(ctx)
	return result(orders, err, msgOrdersFailed)
}

func (r *OrderRepository) ByID(ctx context.Context, id int) resource.Resource[domain.Order] {
	order, err := r.api.ByID(ctx, id)
	return result(order, err, msgOrderFailed)
}

func (r *OrderRepository) Create(ctx context.Context, in CreateOrderInput) resource.Resource[domain.Order] {
	req := api.CreateOrderRequest{
		ShippingAddress: strings.TrimSpace(in.ShippingAddress),
		PhoneNumber:     strings.TrimSpace(in.PhoneNumber),
		PaymentMethod:   string(in.PaymentMethod),
	}
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		req.Notes = &notes
	}

	order, err := r.api.Create(ctx, req)
	return result(order, err, msgCreateOrderFailed)
}

func (r *OrderRepository) Cancel(ctx context.Context, id int) resource.Resource[domain.Order] {
	order, err := r.api.Cancel(ctx, id)
	return result(order, err, msgCancelOrderFailed)
}
