package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

type CreateOrderRequest struct {
	ShippingAddress string  `json:"shippingAddress"`
	PhoneNumber     string  `json:"phoneNumber"`
	PaymentMethod   string  `json:"paymentMethod"`
	Notes           *string `json:"notes,omitempty"`
}

type OrderAPI struct {
	c *Client
}

func (o *OrderAPI) All(ctx context.Context) ([]domain.Order, error) {
	return fetch[[]domain.Order](ctx, o.c, http.MethodGet, "/api/orders", nil, nil)
}

func (o *OrderAPI) ByID(ctx context.Context, id int) (domain.Order, error) {
	return fetch[domain.Order](ctx, o.c, http.MethodGet, "/api/orders/"+strconv.Itoa(id), nil, nil)
}

func (o *OrderAPI) Create(ctx context.Context, req CreateOrderRequest) (domain.Order, error) {
	return fetch[domain.Order](ctx, o.c, http.MethodPost, "/api/orders", nil, req)
}

func (o *OrderAPI) Cancel(ctx context.Context, id int) (domain.Order, error) {
	return fetch[domain.Order](ctx, o.c, http.MethodPut, "/api/orders/"+strconv.Itoa(id)+"/cancel", nil, nil)
}
