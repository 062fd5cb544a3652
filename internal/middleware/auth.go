package middleware

import (
	"net/http"
	"strings"

	"smpj_backend/internal/auth"
	"smpj_backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthRequired validates the bearer token and loads the user it names.
// Token validation alone does not prove the account still exists, so the
// lookup happens here; both failures come back as the same 401.
func AuthRequired(tokens *auth.Manager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}
		tok := strings.TrimPrefix(h, "Bearer ")

		username, err := tokens.Validate(tok)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		var u models.User
		if err := db.Where("username = ?", username).First(&u).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("user", u)
		c.Set("username", u.Username)
		c.Set("role", u.Role)
		c.Next()
	}
}

// RequireRoles gates a route group to the given whitelist. Runs after
// AuthRequired.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, ok := c.Get("role")
		role, cast := roleAny.(models.Role)
		if !ok || !cast || !auth.RoleAllowed(role, allowed...) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser pulls the authenticated user set by AuthRequired.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userAny, ok := c.Get("user")
	if !ok {
		return models.User{}, false
	}
	u, ok := userAny.(models.User)
	return u, ok
}
