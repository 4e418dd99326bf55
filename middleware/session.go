package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the anonymous storefront session id. The shop has
// no accounts; a browser tab identifies itself with this opaque id and gets
// one issued on its first request.
const SessionHeader = "X-Session-ID"

// EnsureSession resolves the session id for the request, minting a fresh
// one when the client has none yet. The id is echoed back so the client can
// persist it.
func EnsureSession(c *gin.Context) {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Set("session_id", sessionID)
	c.Header(SessionHeader, sessionID)
	c.Next()
}

// SessionID reads the id placed by EnsureSession.
func SessionID(c *gin.Context) string {
	return c.GetString("session_id")
}
