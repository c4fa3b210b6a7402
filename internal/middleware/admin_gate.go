package middleware

import (
	"net/http"
	"strings"

	"axishotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminGate guards the admin routes. The decision is role == admin AND the
// authenticated address equals the one configured administrator address;
// it runs on every request, so an expired or revoked session loses access
// immediately. Runs after JWTAuth, which already rejected the signed-out
// case with a plain 401.
func AdminGate(adminEmail string) gin.HandlerFunc {
	adminEmail = strings.ToLower(strings.TrimSpace(adminEmail))

	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		email := c.GetString("email")
		if role.(string) != "admin" || !strings.EqualFold(email, adminEmail) {
			response.Error(c, http.StatusForbidden, "ACCESS_DENIED",
				"You do not have permission to view the Admin Dashboard.")
			c.Abort()
			return
		}

		c.Next()
	}
}
