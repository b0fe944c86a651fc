package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

type AddToCartRequest struct {
	BookID   int `json:"bookId"`
	Quantity int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartAPI struct {
	c *Client
}

func (a *CartAPI) Items(ctx context.Context) ([]domain.CartItem, error) {
	return fetch[[]domain.CartItem](ctx, a.c, http.MethodGet, "/api/cart", nil, nil)
}

func (a *CartAPI) Add(ctx context.Context, req AddToCartRequest) (domain.CartItem, error) {
	return fetch[domain.CartItem](ctx, a.c, http.MethodPost, "/api/cart", nil, req)
}

func (a *CartAPI) Update(ctx context.Context, cartItemID int, req UpdateCartItemRequest) (domain.CartItem, error) {
	return fetch[domain.CartItem](ctx, a.c, http.MethodPut, "/api/cart/"+strconv.Itoa(cartItemID), nil, req)
}

// Remove returns the server's confirmation message.
func (a *CartAPI) Remove(ctx context.Context, cartItemID int) (string, error) {
	return send(ctx, a.c, http.MethodDelete, "/api/cart/"+strconv.Itoa(cartItemID))
}

// Clear returns the server's confirmation message.
func (a *CartAPI) Clear(ctx context.Context) (string, error) {
	return send(ctx, a.c, http.MethodDelete, "/api/cart")
}
