// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/domain/session"
	"github.com/your-org/sneakstore-backend/internal/pkg/auth"
)

// resolveSession builds the per-request session holder from the
// Authorization header. The holder always leaves the resolving state
// before any guard decision is taken.
func resolveSession(c *gin.Context, jwtManager *auth.JWTManager) *session.Holder {
	holder := session.NewHolder()

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		holder.Resolve(nil)
		return holder
	}

	tokenString := auth.ExtractTokenFromHeader(authHeader)
	if tokenString == "" {
		holder.Resolve(nil)
		return holder
	}

	claims, err := jwtManager.ValidateAccessToken(tokenString)
	if err != nil {
		holder.Resolve(nil)
		return holder
	}

	holder.Resolve(&session.Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
	})
	return holder
}

// AuthMiddleware guards routes that require a signed-in user. Anonymous
// requests are turned away with the sign-in message and the path they
// were trying to reach, so the client can come back after signing in.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		holder := resolveSession(c, jwtManager)

		result := session.Guard(holder, c.Request.URL.Path)
		if result.Decision != session.DecisionAllow {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "not_authenticated",
					"message": result.Message,
				},
				"redirect_to": result.RedirectTo,
				"return_to":   result.ReturnTo,
			})
			c.Abort()
			return
		}

		_, id := holder.Snapshot()
		c.Set("user_id", id.UserID)
		c.Set("user_email", id.Email)
		c.Set("session_holder", holder)

		c.Next()
	}
}

// OptionalAuthMiddleware resolves the session without guarding. Routes
// behind it serve both guests and signed-in users.
func OptionalAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		holder := resolveSession(c, jwtManager)

		state, id := holder.Snapshot()
		if state == session.StateAuthenticated {
			c.Set("user_id", id.UserID)
			c.Set("user_email", id.Email)
		}
		c.Set("session_holder", holder)

		c.Next()
	}
}

// GetUserIDFromContext extracts user ID from gin context
func GetUserIDFromContext(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetUserEmailFromContext extracts user email from gin context
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("user_email")
	if !exists {
		return "", false
	}
	return email.(string), true
}
