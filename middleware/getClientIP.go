package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the caller's address, preferring proxy headers. The
// board usually sits behind a reverse proxy, so RemoteAddr alone would rate
// limit the proxy instead of the viewer.
func getClientIP(c *gin.Context) string {
	// X-Forwarded-For may hold a comma-separated chain; the first entry is
	// the original client.
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}

	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is usually "ip:port".
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
