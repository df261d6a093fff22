// Package middleware holds the gin middleware of the editor API.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/truongteam/medusa-admin/internal/platform/logging"
)

// Propagated id headers.
const (
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID spans a whole business transaction across services.
	HeaderCorrelationID = "X-Correlation-ID"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyCorrelationID
)

// RequestID takes the request id from the header or generates one. The id
// is echoed in the response and stored in the request context, where the
// logger and the store client pick it up.
func RequestID() gin.HandlerFunc {
	return propagateID(HeaderRequestID, ContextWithRequestID)
}

// CorrelationID does for the correlation id what RequestID does for the
// request id.
func CorrelationID() gin.HandlerFunc {
	return propagateID(HeaderCorrelationID, ContextWithCorrelationID)
}

func propagateID(header string, store func(context.Context, string) context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(header, id)
		c.Request = c.Request.WithContext(store(c.Request.Context(), id))
		c.Next()
	}
}

// ContextWithRequestID stores the request id in ctx and in its logger.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return logging.WithRequestID(context.WithValue(ctx, ctxKeyRequestID, id), id)
}

// ContextWithCorrelationID stores the correlation id in ctx and in its logger.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return logging.WithCorrelationID(context.WithValue(ctx, ctxKeyCorrelationID, id), id)
}

// RequestIDFromContext returns the request id, or "".
func RequestIDFromContext(ctx context.Context) string {
	return idFrom(ctx, ctxKeyRequestID)
}

// CorrelationIDFromContext returns the correlation id, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return idFrom(ctx, ctxKeyCorrelationID)
}

func idFrom(ctx context.Context, key ctxKey) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(key).(string)

	return id
}
