package middleware

import (
	"net/http"
	"strings"
	"time"

	"DevHub/models"
	"DevHub/pkg/context"
	"DevHub/pkg/jwt"
	"DevHub/pkg/response"

	"github.com/gin-gonic/gin"
)

// rotateBuffer is how close to expiry an access token may get before a fresh
// one is handed back in the X-New-Access-Token header.
const rotateBuffer = 5 * time.Minute

func Auth(secret []byte, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		if jwt.ShouldRotate(claims, rotateBuffer) {
			newToken, err := jwt.GenerateToken(secret, claims.UserID, claims.Role, "access", accessTTL)
			if err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxRole, claims.Role)

		c.Next()
	}
}

// OptionalAuth populates the viewer identity when a valid token is present
// but never rejects the request. Used on read endpoints that personalize
// their payload for signed-in users.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := jwt.ParseToken(secret, "access", parts[1]); err == nil {
				c.Set(context.CtxUserID, claims.UserID)
				c.Set(context.CtxRole, claims.Role)
			}
		}
		c.Next()
	}
}

// AdminOnly must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(context.CtxRole)
		if role != models.UserRoleAdmin {
			response.Abort(c, http.StatusForbidden, "admin privilege required")
			return
		}
		c.Next()
	}
}
