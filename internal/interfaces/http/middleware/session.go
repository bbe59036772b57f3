package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Cart session identification
const (
	// CartSessionKey is the gin context key holding the cart session ID
	CartSessionKey = "cart_session_id"
	// CartSessionHeader carries the session ID for API clients
	CartSessionHeader = "X-Cart-Session"
	// CartSessionCookie carries the session ID for browser clients
	CartSessionCookie = "cart_session"
	// cartSessionMaxAge is the cookie lifetime in seconds
	cartSessionMaxAge = 86400
)

// CartSession resolves the shopping session ID for the request.
// The header wins over the cookie; a fresh UUID is minted when neither is
// present. The resolved ID is echoed back in both the response header and
// the cookie so clients can keep their cart across requests.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(CartSessionHeader)
		if sessionID == "" {
			if cookie, err := c.Cookie(CartSessionCookie); err == nil {
				sessionID = cookie
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(CartSessionKey, sessionID)
		c.Writer.Header().Set(CartSessionHeader, sessionID)
		c.SetCookie(CartSessionCookie, sessionID, cartSessionMaxAge, "/", "", false, true)

		c.Next()
	}
}

// GetCartSessionID retrieves the cart session ID resolved for this request
func GetCartSessionID(c *gin.Context) string {
	return c.GetString(CartSessionKey)
}
