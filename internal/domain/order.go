package domain

import (
	"errors"
	"strings"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderNotCancellable  = errors.New("cannot cancel order in current status")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// Cancellable reports whether an order in this status may still be cancelled.
func (s OrderStatus) Cancellable() bool {
	return s == OrderPending || s == OrderConfirmed
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return st, nil
	}
	return "", ErrInvalidOrderStatus
}

type PaymentMethod string

const (
	PaymentCOD   PaymentMethod = "COD"
	PaymentVNPay PaymentMethod = "VNPAY"
	PaymentMoMo  PaymentMethod = "MOMO"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s))); m {
	case PaymentCOD, PaymentVNPay, PaymentMoMo:
		return m, nil
	}
	return "", ErrInvalidPaymentMethod
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type Order struct {
	ID              int           `json:"orderId"`
	UserID          int           `json:"userId"`
	OrderDate       Millis        `json:"orderDate"`
	TotalAmount     float64       `json:"totalAmount"`
	Status          OrderStatus   `json:"status"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	ShippingAddress string        `json:"shippingAddress"`
	PhoneNumber     string        `json:"phoneNumber"`
	Notes           *string       `json:"notes"`
	Items           []OrderItem   `json:"orderItems"`
}

type OrderItem struct {
	ID              int     `json:"orderItemId"`
	OrderID         int     `json:"orderId"`
	Book            Book    `json:"book"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
	Subtotal        float64 `json:"subtotal"`
}
