package middleware

import (
	"net/http"
	"strings"

	"crewboard_backend/internal/auth"
	"crewboard_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid Bearer token and stores the
// claims in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", claims.ProfileID)
		c.Set("kind", claims.Kind)
		c.Set("isAdmin", claims.IsAdmin)
		c.Next()
	}
}

// OptionalAuthMiddleware populates the claims when a valid token is present
// but lets anonymous requests through. Used on public routes whose responses
// widen for the owner.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := auth.ParseToken(tokenStr); err == nil {
				c.Set("userID", claims.ProfileID)
				c.Set("kind", claims.Kind)
				c.Set("isAdmin", claims.IsAdmin)
			}
		}
		c.Next()
	}
}

// RequireKind restricts a route to one account kind.
func RequireKind(requiredKind models.ProfileKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		kindVal, exists := c.Get("kind")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no account kind"})
			return
		}

		kind, ok := kindVal.(models.ProfileKind)
		if !ok {
			kindStr, isString := kindVal.(string)
			if !isString {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid account kind"})
				return
			}
			kind = models.ProfileKind(kindStr)
		}

		if kind != requiredKind {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// RequireAdmin restricts a route to admin accounts.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get("isAdmin")
		isAdmin, ok := val.(bool)
		if !exists || !ok || !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: admin only"})
			return
		}
		c.Next()
	}
}

// GetUserID extracts the profile id from the context, empty when anonymous.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
