package domain

import (
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-siacom/internal/app/domain/session"
	"github.com/FACorreiaa/go-siacom/internal/app/middleware"
	"github.com/FACorreiaa/go-siacom/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-siacom/internal/app/pages"
)

type BaseHandler struct {
	Logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BaseHandler{Logger: logger}
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// Render writes component as an HTML response.
func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	start := time.Now()
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		h.Logger.Error("Failed to render component", zap.String("path", c.Request.URL.Path), zap.Error(err))
		return
	}
	metrics.Get().TemplateRenderDuration.Record(c.Request.Context(), time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("path", c.FullPath())))
}

// RenderDecision renders the page chosen by the resolver inside its shell.
func (h *BaseHandler) RenderDecision(c *gin.Context, status int, d session.Decision, notice string) {
	layout := pages.Compose(d, middleware.GetUserFromContext(c), notice)
	h.Render(c, status, pages.LayoutPage(layout))
}

// Redirect navigates the browser to location, through HX-Redirect for htmx
// requests so the whole page is replaced.
func (h *BaseHandler) Redirect(c *gin.Context, location string) {
	if IsHTMX(c) {
		c.Header("HX-Redirect", location)
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}
