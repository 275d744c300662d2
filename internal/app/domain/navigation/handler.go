package navigation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-siacom/internal/app/domain"
	"github.com/FACorreiaa/go-siacom/internal/app/domain/session"
	"github.com/FACorreiaa/go-siacom/internal/app/middleware"
	"github.com/FACorreiaa/go-siacom/internal/app/observability/metrics"
)

// Handler serves every page navigation not claimed by another route.
type Handler struct {
	*domain.BaseHandler
}

func NewHandler(base *domain.BaseHandler) *Handler {
	return &Handler{BaseHandler: base}
}

// Navigate resolves the requested path against the session state read by
// SessionMiddleware and renders or redirects accordingly.
func (h *Handler) Navigate(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Header("Allow", "GET, HEAD")
		c.String(http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	st := middleware.GetSessionState(c)
	d := session.Resolve(c.Request.URL.Path, st)

	ctx := c.Request.Context()
	attrs := []attribute.KeyValue{
		attribute.String("session", st.Kind.String()),
		attribute.String("action", d.Action.String()),
		attribute.String("shell", d.Shell.String()),
		attribute.String("page", d.Page.String()),
	}
	trace.SpanFromContext(ctx).SetAttributes(attrs...)
	metrics.Get().RouteDecisionsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))

	h.Logger.Debug("Navigation resolved",
		zap.String("path", c.Request.URL.Path),
		zap.String("session", st.Kind.String()),
		zap.String("action", d.Action.String()),
		zap.String("page", d.Page.String()),
	)

	if d.Action == session.Redirect {
		h.Redirect(c, d.Location)
		return
	}
	h.RenderDecision(c, http.StatusOK, d, "")
}
