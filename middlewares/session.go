package middlewares

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gautham-here/hackathon-centre/sessions"
)

const sessionKey = "session"

// SessionMiddleware attaches a server-side session to every request.
// An unknown, expired or forged cookie is replaced with a fresh session
// and a new signed cookie; mutations are persisted after the handler
// runs.
func SessionMiddleware(m *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *sessions.Session

		if raw, err := c.Cookie(sessions.CookieName); err == nil {
			if id, err := m.VerifyID(raw); err == nil {
				if stored, err := m.Store.Get(c.Request.Context(), id); err != nil {
					log.Printf("session store get failed: %v", err)
				} else {
					sess = stored
				}
			}
		}

		if sess == nil {
			sess = m.NewSession()
			signed, err := m.SignID(sess.ID)
			if err != nil {
				log.Printf("session cookie signing failed: %v", err)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.SetCookie(sessions.CookieName, signed, int(m.TTL().Seconds()), "/", "", false, true)
		}

		c.Set(sessionKey, sess)
		c.Next()

		if sess.Dirty() {
			if err := m.Store.Save(c.Request.Context(), sess); err != nil {
				log.Printf("session store save failed: %v", err)
			}
		}
	}
}

// CurrentSession returns the session attached by SessionMiddleware.
func CurrentSession(c *gin.Context) *sessions.Session {
	return c.MustGet(sessionKey).(*sessions.Session)
}
