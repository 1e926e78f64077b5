package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homefix/utils"
)

// AdminTokenHeader carries the shared admin secret.
const AdminTokenHeader = "X-Admin-Token"

// Authorize reports whether presented matches the configured secret
// exactly. An unset secret authorizes nobody.
func Authorize(secret, presented string) bool {
	if secret == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(presented)) == 1
}

// presentedToken looks at the admin header, a bearer Authorization header
// and the "token" query parameter, in that order.
func presentedToken(c *gin.Context) string {
	if token := c.GetHeader(AdminTokenHeader); token != "" {
		return token
	}
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.Query("token")
}

// AdminTokenMiddleware rejects requests that do not present the shared
// admin secret. Missing and wrong tokens get the same 401.
func AdminTokenMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Authorize(secret, presentedToken(c)) {
			GetLogger(c).Warn("unauthorized admin request", zap.String("ip", getClientIP(c)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{OK: false, Error: "Unauthorized"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
