// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/raphaelcleo/storefront/internal/config"
	"github.com/raphaelcleo/storefront/internal/models"
	"github.com/raphaelcleo/storefront/internal/utils"
)

const sessionContextKey = "session_id"

// Session lazily assigns every visitor an opaque token in a cookie and
// exposes it request-scoped through the gin context. Once set, the token is
// stable for the lifetime of the cookie.
func Session(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.CookieName)
		if err != nil || token == "" {
			token = utils.GenerateSessionToken()
			c.SetCookie(cfg.CookieName, token, cfg.MaxAge, "/", "", cfg.Secure, true)
		}

		c.Set(sessionContextKey, models.SessionID(token))
		c.Next()
	}
}

func SessionFromContext(c *gin.Context) (models.SessionID, bool) {
	if value, exists := c.Get(sessionContextKey); exists {
		if sessionID, ok := value.(models.SessionID); ok {
			return sessionID, true
		}
	}
	return "", false
}
