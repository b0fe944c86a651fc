package viewmodel

import (
	"context"
	"sync"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/resource"
)

type Orders struct {
	orders OrderService
	Orders *resource.State[[]domain.Order]

	mu     sync.Mutex
	status domain.OrderStatus
}

func NewOrders(orders OrderService) *Orders {
	return &Orders{orders: orders, Orders: resource.NewLoadingState[[]domain.Order]()}
}

func (vm *Orders) Load(ctx context.Context) resource.Resource[[]domain.Order] {
	return resource.Run(ctx, vm.Orders, vm.orders.All)
}

func (vm *Orders) Refresh(ctx context.Context) resource.Resource[[]domain.Order] {
	return vm.Load(ctx)
}

// FilterByStatus narrows FilteredOrders to one status; "" shows all.
func (vm *Orders) FilterByStatus(status domain.OrderStatus) {
	vm.mu.Lock()
	vm.status = status
	vm.mu.Unlock()
}

func (vm *Orders) Filter() domain.OrderStatus {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.status
}

// FilteredOrders applies the status filter to the last loaded list. ok is
// false unless Orders holds a Success.
func (vm *Orders) FilteredOrders() ([]domain.Order, bool) {
	r, set := vm.Orders.Get()
	if !set {
		return nil, false
	}
	all, ok := r.Data()
	if !ok {
		return nil, false
	}

	status := vm.Filter()
	if status == "" {
		return all, true
	}
	out := make([]domain.Order, 0, len(all))
	for _, o := range all {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, true
}

type OrderDetail struct {
	orders OrderService
	Order  *resource.State[domain.Order]
	Cancel *resource.State[domain.Order]
}

func NewOrderDetail(orders OrderService) *OrderDetail {
	return &OrderDetail{
		orders: orders,
		Order:  resource.NewLoadingState[domain.Order](),
		Cancel: resource.NewState[domain.Order](),
	}
}

func (vm *OrderDetail) Load(ctx context.Context, orderID int) resource.Resource[domain.Order] {
	return resource.Run(ctx, vm.Order, func(ctx context.Context) resource.Resource[domain.Order] {
		return vm.orders.ByID(ctx, orderID)
	})
}

// CancelOrder cancels and, on success, reloads the order.
func (vm *OrderDetail) CancelOrder(ctx context.Context, orderID int) resource.Resource[domain.Order] {
	res := resource.Run(ctx, vm.Cancel, func(ctx context.Context) resource.Resource[domain.Order] {
		return vm.orders.Cancel(ctx, orderID)
	})
	if res.IsSuccess() {
		vm.Load(ctx, orderID)
	}
	return res
}

// CanCancel reports whether the loaded order is still cancellable.
func (vm *OrderDetail) CanCancel() bool {
	r, ok := vm.Order.Get()
	if !ok {
		return false
	}
	order, ok := r.Data()
	return ok && order.Status.Cancellable()
}

func (vm *OrderDetail) ResetCancel() { vm.Cancel.Reset() }
