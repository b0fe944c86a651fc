package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/usecase"
	"github.com/gin-gonic/gin"
)

type orderUsecaser interface {
	Create(ctx context.Context, in usecase.CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context, userID int) ([]domain.Order, error)
	Get(ctx context.Context, userID, orderID int) (*domain.Order, error)
	Cancel(ctx context.Context, userID, orderID int) (*domain.Order, error)
}

type OrderHandler struct {
	orders orderUsecaser
	logger *slog.Logger
}

func NewOrderHandler(orders orderUsecaser, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, logger: logger.With("component", "order_handler")}
}

type createOrderRequest struct {
	ShippingAddress string  `json:"shippingAddress" binding:"required,max=500"`
	PhoneNumber     string  `json:"phoneNumber"     binding:"required,min=10,max=20"`
	PaymentMethod   string  `json:"paymentMethod"   binding:"required"`
	Notes           *string `json:"notes"           binding:"omitempty,max=1000"`
}

// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.orders.Create(c.Request.Context(), usecase.CreateOrderInput{
		UserID:          userID(c),
		ShippingAddress: req.ShippingAddress,
		PhoneNumber:     req.PhoneNumber,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		var stockErr *domain.StockError
		switch {
		case errors.As(err, &stockErr):
			fail(c, http.StatusBadRequest, "Insufficient stock for book: "+stockErr.Title)
		case errors.Is(err, domain.ErrCartEmpty):
			fail(c, http.StatusBadRequest, errCartEmpty)
		case errors.Is(err, domain.ErrInvalidPaymentMethod):
			fail(c, http.StatusBadRequest, errInvalidPayment)
		default:
			h.logger.ErrorContext(c.Request.Context(), "create order", "error", err)
			fail(c, http.StatusInternalServerError, errInternalServer)
		}
		return
	}

	respond(c, http.StatusOK, "Order created successfully", order)
}

// GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), userID(c))
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list orders", "error", err)
		fail(c, http.StatusInternalServerError, errInternalServer)
		return
	}
	respond(c, http.StatusOK, "Orders retrieved successfully", nonNil(orders))
}

// GET /api/orders/:id
// Orders of other users are reported as not found.
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			fail(c, http.StatusNotFound, errOrderNotFound)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get order", "order_id", id, "error", err)
		fail(c, http.StatusInternalServerError, errInternalServer)
		return
	}
	respond(c, http.StatusOK, "Order found", order)
}

// PUT /api/orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.Cancel(c.Request.Context(), userID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			fail(c, http.StatusNotFound, errOrderNotFound)
		case errors.Is(err, domain.ErrOrderNotCancellable):
			fail(c, http.StatusConflict, errOrderNotCancelable)
		default:
			h.logger.ErrorContext(c.Request.Context(), "cancel order", "order_id", id, "error", err)
			fail(c, http.StatusInternalServerError, errInternalServer)
		}
		return
	}
	respond(c, http.StatusOK, "Order cancelled successfully", order)
}
