package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"unigather-backend/internal/auth"
	"unigather-backend/internal/models"
)

const ctxUserKey = "current_user"

// AuthMiddleware resolves the acting user from the bearer token before any
// controller call. The actor row is loaded from the database, not taken from
// the claims, so role checks always see current state. Any failure aborts
// with 401 and no handler runs.
func (a *API) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			jsonError(c, http.StatusUnauthorized, "missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			jsonError(c, http.StatusUnauthorized, "invalid token format")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := auth.ParseToken(tokenString, a.cfg.JWTSecret)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "token expired"
			}
			jsonError(c, http.StatusUnauthorized, msg)
			c.Abort()
			return
		}

		user, err := a.users.GetByID(userID)
		if err != nil {
			handleError(c, err)
			c.Abort()
			return
		}
		if user == nil {
			jsonError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// currentUser returns the actor set by AuthMiddleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ctxUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
