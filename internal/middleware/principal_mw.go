package middleware

import (
	"net/http"
	"strings"

	"foodist_api/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	// PrincipalKey is the gin context key holding the authenticated
	// principal name (username/email).
	PrincipalKey = "authPrincipal"
)

// PrincipalMiddleware resolves the caller's principal from a bearer JWT
// and stores it in the gin context. It never rejects a request: a
// missing or invalid token simply leaves the request anonymous, so
// downstream stages decide whether a principal is required.
func PrincipalMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
				claims, err := jwtUtil.ValidateToken(parts[1])
				if err == nil {
					c.Set(PrincipalKey, claims.Username)
				}
			}
		}
		c.Next()
	}
}

// RequirePrincipal aborts with 401 unless an upstream middleware has
// resolved a principal for the request.
func RequirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(PrincipalKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// Principal returns the resolved principal name for the request, if any
func Principal(c *gin.Context) (string, bool) {
	val, exists := c.Get(PrincipalKey)
	if !exists {
		return "", false
	}
	username, ok := val.(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
