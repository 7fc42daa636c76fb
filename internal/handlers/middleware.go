package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	ctxKeyRequestID = "requestID"
)

// requestID tags every request with a v4 uuid. An id supplied by the client
// is kept so callers can correlate across hops.
func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(headerRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(ctxKeyRequestID, id)
	c.Writer.Header().Set(headerRequestID, id)
	c.Next()
}

// requestLogger logs method/path before handling and status/latency after.
// Observability only: it never touches request or response content.
func (h *Handler) requestLogger(c *gin.Context) {
	if h.log == nil {
		c.Next()
		return
	}

	start := time.Now()
	h.log.Infow("request_received",
		"request_id", c.GetString(ctxKeyRequestID),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.Next()

	h.log.Infow("request_completed",
		"request_id", c.GetString(ctxKeyRequestID),
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}
