package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/truongteam/medusa-admin/internal/platform/logging"
)

// HealthPathPrefix prefixes the operational endpoints that Logging skips.
const HealthPathPrefix = "/-/"

// ContextLogger stores logger in the request context. It runs before
// RequestID and CorrelationID so the ids enrich this logger.
func ContextLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		c.Next()
	}
}

// Logging logs every request once it completes. Paths under
// HealthPathPrefix and any of skipPrefixes are not logged.
func Logging(logger *slog.Logger, skipPrefixes ...string) gin.HandlerFunc {
	skip := append([]string{HealthPathPrefix}, skipPrefixes...)

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range skip {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		if q := c.Request.URL.RawQuery; q != "" {
			path += "?" + q
		}

		start := time.Now()
		log := logging.FromContextOr(c.Request.Context(), logger)

		log.DebugContext(c.Request.Context(), "request started",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
		}

		if claims := GetClaims(c); claims != nil && claims.Subject != "" {
			attrs = append(attrs, slog.String("subject", claims.Subject))
		}

		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			attrs = append(attrs, slog.String("errors", errs.String()))
		}

		log.LogAttrs(c.Request.Context(), statusLevel(status), "request completed", attrs...)
	}
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
