package middleware

import (
	"net/http"

	"transferhub/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// RequireConsole gates a route group behind the session cookie for one
// console. An admin session does not open the CMS and vice versa.
func RequireConsole(sessions *session.Service, cookieName string, console session.Console) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			abortUnauthorized(c, "Missing session cookie")
			return
		}

		claims, err := sessions.Validate(token)
		if err != nil {
			abortUnauthorized(c, "Invalid session")
			return
		}

		if claims.Console != console {
			abortUnauthorized(c, "Session not valid for this console")
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
