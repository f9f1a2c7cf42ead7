package middleware

import (
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/bhekani17/Eargleevents2/internal/auth"
	"github.com/bhekani17/Eargleevents2/internal/dto"
	"github.com/bhekani17/Eargleevents2/internal/metrics"
)

func LoggingMiddleware() func(*ginext.Context) {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())
		elapsed := time.Since(start)

		metrics.RecordHTTPRequest(c.Request.Method, path, status, elapsed)
		zlog.Logger.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Str("status", status).
			Dur("duration", elapsed).
			Msg("request handled")
	}
}

// AuthMiddleware guards the back-office routes with a bearer token.
func AuthMiddleware(secret string) func(*ginext.Context) {
	return func(c *ginext.Context) {
		token := auth.ExtractBearer(c.GetHeader("Authorization"))
		if token == "" {
			dto.UnauthorizedError(c, "Missing bearer token")
			c.Abort()
			return
		}

		adminID, err := auth.ParseToken(token, secret)
		if err != nil {
			dto.UnauthorizedError(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("admin_id", adminID)
		c.Next()
	}
}
