package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextKey = "session_id"

// Options controls the session cookie.
type Options struct {
	CookieName string
	Secure     bool
}

// Middleware ensures every request carries a browser-session id. The
// cookie has no Max-Age so it is dropped when the browser session ends.
func Middleware(opt Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := ""
		if raw, err := c.Cookie(opt.CookieName); err == nil {
			if parsed, err := uuid.Parse(raw); err == nil {
				sid = parsed.String()
			}
		}

		if sid == "" {
			sid = uuid.New().String()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     opt.CookieName,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				Secure:   opt.Secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(contextKey, sid)
		c.Next()
	}
}

// ID returns the session id stored by Middleware.
func ID(c *gin.Context) string {
	return c.GetString(contextKey)
}
