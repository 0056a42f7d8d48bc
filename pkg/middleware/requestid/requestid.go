package requestid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	headerName = "X-Request-ID"
	ctxKey     = "request_id"
)

// Middleware tags every request with an ID, reusing the caller's
// X-Request-ID header when one is supplied.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerName)
		if id == "" {
			id = newID()
		}

		c.Set(ctxKey, id)
		c.Writer.Header().Set(headerName, id)

		c.Next()
	}
}

// Value returns the request ID for the current request, or "" when unset.
func Value(c *gin.Context) string {
	if v, ok := c.Get(ctxKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func newID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("req-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
