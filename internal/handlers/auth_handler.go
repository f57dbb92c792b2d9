package handlers

import (
	"net/http"
	"time"

	"github.com/Mellettan/invent/internal/services"
	"github.com/Mellettan/invent/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService services.UserService
	sessions    session.Store
	sessionTTL  time.Duration
}

func NewAuthHandler(userService services.UserService, sessions session.Store, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
	}
}

// ShowLogin renders the credential form, or sends already-authenticated
// visitors straight to the dashboard.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if h.isAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login validates the submitted credentials. Success establishes a session
// and redirects to the dashboard; failure re-renders the form with an error.
func (h *AuthHandler) Login(c *gin.Context) {
	if h.isAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.userService.Authenticate(username, password)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"error":    "Invalid username or password.",
			"username": username,
		})
		return
	}

	sessionID, err := h.sessions.New(&session.Data{UserID: user.ID, Username: user.Username}, h.sessionTTL)
	if err != nil {
		internalError(c, err)
		return
	}

	c.SetCookie(session.CookieName, sessionID, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Logout destroys the session and returns to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(session.CookieName); err == nil && sessionID != "" {
		h.sessions.Delete(sessionID)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login/")
}

func (h *AuthHandler) isAuthenticated(c *gin.Context) bool {
	sessionID, err := c.Cookie(session.CookieName)
	if err != nil || sessionID == "" {
		return false
	}
	_, err = h.sessions.Get(sessionID)
	return err == nil
}
