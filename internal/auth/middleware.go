package auth

import (
	"net/http"
	"strings"

	"projextpal-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

// Middleware provides JWT authentication and role gates for gin routes.
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequireRole returns a gate admitting only callers whose role is in the set.
// It assumes RequireAuth ran earlier in the chain.
func (m *Middleware) RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		if !allowed[claims.Role] {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin admits only super admins.
func (m *Middleware) RequireSuperAdmin() gin.HandlerFunc {
	return m.RequireRole(models.RoleSuperAdmin)
}

// RequireAdmin admits admins and super admins.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(models.RoleSuperAdmin, models.RoleAdmin)
}

// GetClaims is a helper function to extract full auth claims from context
func GetClaims(c *gin.Context) (*Claims, bool) {
	v, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

// GetScope extracts the caller's tenant scope from the gin context.
func GetScope(c *gin.Context) (TenantScope, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return TenantScope{}, false
	}
	return ScopeFromClaims(claims), true
}
