package middleware

import (
	"net/http"

	"lovebae-backend/models"
	"lovebae-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func extractAdminClaims(c *gin.Context) (jwt.MapClaims, bool) {
	tokenString, err := c.Cookie(utils.AdminTokenCookie)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No authentication token found"})
		c.Abort()
		return nil, false
	}

	claims, err := utils.DecodeAdminToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
		c.Abort()
		return nil, false
	}

	return claims, true
}

// AdminAuth guards the back-office routes. The admin JWT travels in an
// HttpOnly cookie set at login, not in an Authorization header.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractAdminClaims(c)
		if !ok {
			return
		}

		role, exists := claims["role"]
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			c.Abort()
			return
		}

		roleStr, _ := role.(string)
		if models.AdminRole(roleStr) != models.RoleAdmin && models.AdminRole(roleStr) != models.RoleSuperAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: admin role required"})
			c.Abort()
			return
		}

		c.Set("admin_id", claims["sub"])
		c.Set("role", roleStr)
		c.Next()
	}
}
