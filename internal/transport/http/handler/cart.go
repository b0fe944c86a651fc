package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/gin-gonic/gin"
)

type cartUsecaser interface {
	List(ctx context.Context, userID int) ([]domain.CartItem, error)
	Add(ctx context.Context, userID, bookID, quantity int) (*domain.CartItem, error)
	Update(ctx context.Context, userID, cartItemID, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, userID, cartItemID int) error
	Clear(ctx context.Context, userID int) error
}

type CartHandler struct {
	cart   cartUsecaser
	logger *slog.Logger
}

func NewCartHandler(cart cartUsecaser, logger *slog.Logger) *CartHandler {
	return &CartHandler{cart: cart, logger: logger.With("component", "cart_handler")}
}

type addToCartRequest struct {
	BookID   int `json:"bookId"   binding:"required,min=1"`
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GET /api/cart
func (h *CartHandler) List(c *gin.Context) {
	items, err := h.cart.List(c.Request.Context(), userID(c))
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list cart", "error", err)
		fail(c, http.StatusInternalServerError, errInternalServer)
		return
	}
	respond(c, http.StatusOK, "Cart retrieved successfully", nonNil(items))
}

// POST /api/cart
func (h *CartHandler) Add(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.cart.Add(c.Request.Context(), userID(c), req.BookID, req.Quantity)
	if err != nil {
		h.cartError(c, "add to cart", err)
		return
	}
	respond(c, http.StatusOK, "Item added to cart", item)
}

// PUT /api/cart/:id
func (h *CartHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.cart.Update(c.Request.Context(), userID(c), id, req.Quantity)
	if err != nil {
		h.cartError(c, "update cart item", err)
		return
	}
	respond(c, http.StatusOK, "Cart updated", item)
}

// DELETE /api/cart/:id
func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.cart.Remove(c.Request.Context(), userID(c), id); err != nil {
		h.cartError(c, "remove cart item", err)
		return
	}
	respond(c, http.StatusOK, "Item removed from cart", nil)
}

// DELETE /api/cart
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context(), userID(c)); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "clear cart", "error", err)
		fail(c, http.StatusInternalServerError, errInternalServer)
		return
	}
	respond(c, http.StatusOK, "Cart cleared", nil)
}

func (h *CartHandler) cartError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		fail(c, http.StatusBadRequest, errInvalidQuantity)
	case errors.Is(err, domain.ErrInsufficientStock):
		fail(c, http.StatusBadRequest, errInsufficientStock)
	case errors.Is(err, domain.ErrBookNotFound):
		fail(c, http.StatusNotFound, errBookNotFound)
	case errors.Is(err, domain.ErrCartItemNotFound):
		fail(c, http.StatusNotFound, errCartItemNotFound)
	default:
		h.logger.ErrorContext(c.Request.Context(), op, "error", err)
		fail(c, http.StatusInternalServerError, errInternalServer)
	}
}
