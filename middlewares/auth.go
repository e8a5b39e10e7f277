package middlewares

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// AdminRequired gates moderation and direct-add routes on the session
// admin flag. Anonymous visitors are sent to the login page with the
// original destination preserved for the post-login redirect.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if !sess.Admin {
			sess.Flash("Please log in as admin.", "warning")
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}
