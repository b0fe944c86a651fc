package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/gin-gonic/gin"
)

type userFinder interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// ActiveUser runs after Auth. A token whose user was deleted or deactivated
// after it was issued is rejected with 401.
func ActiveUser(users userFinder, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.FindByID(c.Request.Context(), c.GetInt("userID"))
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				unauthorized(c)
				return
			}
			logger.ErrorContext(c.Request.Context(), "active user lookup", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"success": false, "message": "Internal server error", "data": nil})
			return
		}
		if !user.IsActive {
			unauthorized(c)
			return
		}
		c.Next()
	}
}
