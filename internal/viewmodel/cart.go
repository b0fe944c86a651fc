package viewmodel

import (
	"context"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/resource"
)

// Cart reloads Items after every successful mutation.
type Cart struct {
	cart   CartService
	Items  *resource.State[[]domain.CartItem]
	Update *resource.State[domain.CartItem]
	Remove *resource.State[string]
	Clear  *resource.State[string]
}

func NewCart(cart CartService) *Cart {
	return &Cart{
		cart:   cart,
		Items:  resource.NewLoadingState[[]domain.CartItem](),
		Update: resource.NewState[domain.CartItem](),
		Remove: resource.NewState[string](),
		Clear:  resource.NewState[string](),
	}
}

func (vm *Cart) Load(ctx context.Context) resource.Resource[[]domain.CartItem] {
	return resource.Run(ctx, vm.Items, vm.cart.Items)
}

func (vm *Cart) UpdateQuantity(ctx context.Context, cartItemID, quantity int) resource.Resource[domain.CartItem] {
	res := resource.Run(ctx, vm.Update, func(ctx context.Context) resource.Resource[domain.CartItem] {
		return vm.cart.Update(ctx, cartItemID, quantity)
	})
	if res.IsSuccess() {
		vm.Load(ctx)
	}
	return res
}

func (vm *Cart) RemoveItem(ctx context.Context, cartItemID int) resource.Resource[string] {
	res := resource.Run(ctx, vm.Remove, func(ctx context.Context) resource.Resource[string] {
		return vm.cart.Remove(ctx, cartItemID)
	})
	if res.IsSuccess() {
		vm.Load(ctx)
	}
	return res
}

func (vm *Cart) ClearCart(ctx context.Context) resource.Resource[string] {
	res := resource.Run(ctx, vm.Clear, vm.cart.Clear)
	if res.IsSuccess() {
		vm.Load(ctx)
	}
	return res
}

// TotalAmount sums price × quantity over the last loaded items; 0 unless
// Items holds a Success.
func (vm *Cart) TotalAmount() float64 {
	var total float64
	for _, it := range vm.loaded() {
		total += it.LineTotal()
	}
	return total
}

func (vm *Cart) TotalItemCount() int {
	var n int
	for _, it := range vm.loaded() {
		n += it.Quantity
	}
	return n
}

func (vm *Cart) loaded() []domain.CartItem {
	r, ok := vm.Items.Get()
	if !ok {
		return nil
	}
	items, _ := r.Data()
	return items
}

func (vm *Cart) ResetUpdate() { vm.Update.Reset() }
func (vm *Cart) ResetRemove() { vm.Remove.Reset() }
func (vm *Cart) ResetClear()  { vm.Clear.Reset() }
