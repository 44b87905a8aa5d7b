package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// requestLogger logs each HTTP request after it completes.
func requestLogger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("http request")
	}
}
