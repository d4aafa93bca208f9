package attribution

import (
	"github.com/gin-gonic/gin"
)

// Capture is mounted on public routes. Each request runs the write-once
// store against its own query string, so any landing URL that carries utm
// parameters pins the first-touch record for that browser.
func Capture(cookiePath string, cookieSecure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := NewStore(NewCookieStorage(c, cookiePath, cookieSecure))
		store.Capture(c.Request.URL.Query())
		c.Next()
	}
}

// FromRequest reads the attribution record carried by the request cookies.
func FromRequest(c *gin.Context) (*Record, bool) {
	store := NewStore(NewCookieStorage(c, "/", false))
	return store.Read()
}
