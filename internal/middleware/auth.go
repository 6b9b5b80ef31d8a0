package middleware

import (
	"strings"

	"github.com/xyz-asif/mentionlookup/internal/pkg/response"
	"github.com/xyz-asif/mentionlookup/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

const (
	installationIDKey = "installationID"
	accountIDKey      = "accountID"
)

// HostAuth verifies the token the host signs for each panel call. An empty
// secret disables the check for local development.
func HostAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		// Support both "Bearer <token>" (case-insensitive) and raw token in header
		fields := strings.Fields(authHeader)
		var tokenString string
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		} else {
			tokenString = authHeader
		}

		claims, err := token.ValidateToken(tokenString, secret)
		if err != nil {
			response.AuthenticationError(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(installationIDKey, claims.InstallationID)
		c.Set(accountIDKey, claims.AccountID)
		c.Next()
	}
}

// InstallationKey keys per-request quotas by the authenticated installation
func InstallationKey(c *gin.Context) string {
	return c.GetString(installationIDKey)
}
