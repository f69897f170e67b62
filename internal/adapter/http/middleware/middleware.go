package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CorrelationIDHeader carries the request id across logs and
// responses so a client-reported failure can be traced.
const CorrelationIDHeader = "X-Correlation-ID"

// CorrelationID assigns a request id when the client did not send one
// and echoes it back on the response.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("correlation_id", id)
		c.Writer.Header().Set(CorrelationIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one structured line per request with timing and
// outcome.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("correlation_id", c.GetString("correlation_id")).
			Msg("http request")
	}
}
