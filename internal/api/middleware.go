package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"searchscout/internal/common/observability"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches an id to each request, propagating an incoming
// header when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// Metrics records per-route request counts and durations.
func Metrics(obs *observability.Observability) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		obs.RecordRequest(c.Request.Context(), route, strconv.Itoa(c.Writer.Status()))
		obs.RecordDuration(c.Request.Context(), route, time.Since(start))
	}
}
