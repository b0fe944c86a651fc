package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/transport/http/handler"
	"github.com/ErlanBelekov/bookstore/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	Books  *handler.BookHandler
	Cart   *handler.CartHandler
	Order  *handler.OrderHandler
	Review *handler.ReviewHandler
}

// UserLookup is what the router needs to reject tokens of deactivated users.
type UserLookup interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

func NewRouter(logger *slog.Logger, h Handlers, users UserLookup, jwtKey []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found", "data": nil})
	})

	authMW := middleware.Auth(jwtKey)
	activeUser := middleware.ActiveUser(users, logger)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.GET("/me", authMW, activeUser, h.Auth.Me)

	books := api.Group("/books")
	books.GET("", h.Books.List)
	books.GET("/new", h.Books.Newest)
	books.GET("/search", h.Books.Search)
	books.GET("/category/:categoryId", h.Books.ByCategory)
	books.GET("/:id", h.Books.GetByID)

	categories := api.Group("/categories")
	categories.GET("", h.Books.Categories)
	categories.GET("/:id", h.Books.Category)

	reviews := api.Group("/reviews")
	reviews.GET("/book/:bookId", h.Review.ListByBook)
	reviews.GET("/book/:bookId/stats", h.Review.Stats)
	reviews.POST("", authMW, activeUser, h.Review.Create)

	// Protected cart routes
	cart := api.Group("/cart", authMW, activeUser)
	cart.GET("", h.Cart.List)
	cart.POST("", h.Cart.Add)
	cart.DELETE("", h.Cart.Clear)
	cart.PUT("/:id", h.Cart.Update)
	cart.DELETE("/:id", h.Cart.Remove)

	// Protected order routes
	orders := api.Group("/orders", authMW, activeUser)
	orders.GET("", h.Order.List)
	orders.POST("", h.Order.Create)
	orders.GET("/:id", h.Order.GetByID)
	orders.PUT("/:id/cancel", h.Order.Cancel)

	return r
}
