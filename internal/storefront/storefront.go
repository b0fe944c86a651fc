// Package storefront translates each REST call into exactly one terminal
// resource.Resource. Shims never retry, cache or merge results.
package storefront

import (
	"errors"

	"github.com/ErlanBelekov/bookstore/internal/api"
	"github.com/ErlanBelekov/bookstore/internal/resource"
)

// Fallback messages used when a failed response carries neither a server
// message nor a status text.
const (
	msgLoginFailed       = "Login failed"
	msgRegisterFailed    = "Registration failed"
	msgProfileFailed     = "Failed to load profile"
	msgBooksFailed       = "Failed to fetch books"
	msgBookFailed        = "Failed to fetch book details"
	msgSearchFailed      = "Search failed"
	msgByCategoryFailed  = "Failed to fetch books by category"
	msgCategoriesFailed  = "Failed to fetch categories"
	msgCartFailed        = "Failed to load cart"
	msgAddToCartFailed   = "Failed to add to cart"
	msgUpdateCartFailed  = "Failed to update cart"
	msgRemoveItemFailed  = "Failed to remove item"
	msgClearCartFailed   = "Failed to clear cart"
	msgOrdersFailed      = "Failed to load orders"
	msgOrderFailed       = "Failed to load order"
	msgCreateOrderFailed = "Failed to create order"
	msgCancelOrderFailed = "Failed to cancel order"
	msgReviewsFailed     = "Failed to load reviews"
	msgReviewStatsFailed = "Failed to load review stats"
	msgReviewFailed      = "Failed to submit review"
	msgCategoryFailed    = "Failed to fetch category"
)

// Success messages for operations without a payload.
const (
	MsgAddedToCart = "Added to cart successfully"
	MsgItemRemoved = "Item removed from cart"
	MsgCartCleared = "Cart cleared successfully"
)

// errorMessage picks the display text for err: the server's message, then
// the status text, then fallback. Transport failures use their own text.
func errorMessage(err error, fallback string) string {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.Status != "" {
			return apiErr.Status
		}
		return fallback
	case errors.Is(err, api.ErrEmptyResponse):
		return api.EmptyResponseMessage
	default:
		if msg := err.Error(); msg != "" {
			return msg
		}
		return resource.DefaultErrorMessage
	}
}

// result converts a binding's (value, error) pair into a terminal Resource.
func result[T any](v T, err error, fallback string) resource.Resource[T] {
	if err != nil {
		return resource.Error[T](errorMessage(err, fallback))
	}
	return resource.Success(v)
}
