package storefront

import (
	"context"

	"github.com/ErlanBelekov/bookstore/internal/api"
	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/resource"
)

type CartRepository struct {
	api *api.CartAPI
}

func NewCartRepository(client *api.Client) *CartRepository {
	return &CartRepository{api: client.Cart()}
}

func (r *CartRepository) Items(ctx context.Context) resource.Resource[[]domain.CartItem] {
	items, err := r.api.Items(ctx)
	return result(items, err, msgCartFailed)
}

// Add puts quantity copies of a book into the cart. The server merges the
// quantity into an existing line for the same book.
func (r *CartRepository) Add(ctx context.Context, bookID, quantity int) resource.Resource[string] {
	_, err := r.api.Add(ctx, api.AddToCartRequest{BookID: bookID, Quantity: quantity})
	return result(MsgAddedToCart, err, msgAddToCartFailed)
}

func (r *CartRepository) Update(ctx context.Context, cartItemID, quantity int) resource.Resource[domain.CartItem] {
	item, err := r.api.Update(ctx, cartItemID, api.UpdateCartItemRequest{Quantity: quantity})
	return result(item, err, msgUpdateCartFailed)
}

func (r *CartRepository) Remove(ctx context.Context, cartItemID int) resource.Resource[string] {
	_, err := r.api.Remove(ctx, cartItemID)
	return result(MsgItemRemoved, err, msgRemoveItemFailed)
}

func (r *CartRepository) Clear(ctx context.Context) resource.Resource[string] {
	_, err := r.api.Clear(ctx)
	return result(MsgCartCleared, err, msgClearCartFailed)
}
