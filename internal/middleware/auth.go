package middleware

import (
	"net/http"

	"github.com/Mellettan/invent/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireSession gates inventory pages behind a login session. Requests
// without a valid session are redirected to the login page instead of seeing
// any data.
func RequireSession(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(session.CookieName)
		if err != nil || sessionID == "" {
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}

		data, err := sessions.Get(sessionID)
		if err != nil {
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}

		c.Set("user_id", data.UserID)
		c.Set("username", data.Username)
		c.Next()
	}
}
