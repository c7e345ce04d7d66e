package middleware

import (
	"context"
	"errors"
	"net/http"

	"slotbook/models"
	"slotbook/services/user"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PrincipalContextKey is the gin context key holding the authenticated models.Principal.
const PrincipalContextKey = "principal"

type principalCtxKey struct{}

// AuthMiddleware rejects requests without a valid bearer token and attaches
// the resolved principal to both the gin and the request context.
func AuthMiddleware(userService user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := utils.ExtractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		principal, err := userService.VerifyToken(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, user.ErrTokenExpired):
				utils.JSONError(c, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, user.ErrTokenNotFound):
				utils.JSONError(c, http.StatusUnauthorized, "Invalid token")
			default:
				utils.GetLogger().Error("Token verification failed", zap.Error(err))
				utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		c.Set(PrincipalContextKey, *principal)
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), *principal))
		c.Next()
	}
}

// GetPrincipal returns the principal set by AuthMiddleware.
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	v, exists := c.Get(PrincipalContextKey)
	if !exists {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}

func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(models.Principal)
	return p, ok
}
