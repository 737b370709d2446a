package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the anonymous session ID that
// flash messages are keyed by.
const SessionCookieName = "contacts_session"

// sessionIDKey is the gin context key the session ID is stored under
const sessionIDKey = "session_id"

// Session assigns each client a stable anonymous session ID. The ID only
// scopes flash messages; there is no authentication attached to it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookieName, sessionID, 30*24*3600, "/", "", false, true)
		}
		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session ID assigned by the Session middleware
func SessionID(c *gin.Context) string {
	value, exists := c.Get(sessionIDKey)
	if !exists {
		return ""
	}
	sessionID, _ := value.(string)
	return sessionID
}
