package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// untracedPaths are excluded from tracing.
var untracedPaths = map[string]bool{
	"/healthz": true,
}

// OTELGinMiddleware traces every request except health checks.
func OTELGinMiddleware(serviceName string, opts ...otelgin.Option) gin.HandlerFunc {
	opts = append([]otelgin.Option{otelgin.WithFilter(traced)}, opts...)
	return otelgin.Middleware(serviceName, opts...)
}

func traced(r *http.Request) bool {
	return !untracedPaths[r.URL.Path]
}
