package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-siacom/internal/app/domain/session"
	"github.com/FACorreiaa/go-siacom/internal/app/models"
	"github.com/FACorreiaa/go-siacom/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-siacom/internal/pkg/config"
)

type contextKey string

const (
	SessionStateKey contextKey = "sessionState"
	UserContextKey  contextKey = "user"
)

const RequestIDHeader = "X-Request-Id"

// Sessions installs the signed cookie session that backs the credential store.
func Sessions(cfg config.SessionConfig) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(cfg.CookieName, store)
}

// SessionMiddleware reads the credential snapshot once per request and stores
// the resulting session state, plus the display identity when the token can
// be decoded.
func SessionMiddleware(store session.CredentialStore, identities *session.IdentityDecoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := session.FromCredentials(store.Load(c))
		c.Set(string(SessionStateKey), st)
		if identities != nil {
			if user := identities.Decode(st); user != nil {
				c.Set(string(UserContextKey), user)
			}
		}
		c.Next()
	}
}

// GetSessionState returns the state stored by SessionMiddleware, anonymous if
// the middleware did not run.
func GetSessionState(c *gin.Context) session.State {
	v, exists := c.Get(string(SessionStateKey))
	if !exists {
		return session.AnonymousState()
	}
	st, ok := v.(session.State)
	if !ok {
		return session.AnonymousState()
	}
	return st
}

// GetUserFromContext extracts user information from Gin context
func GetUserFromContext(c *gin.Context) *models.User {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}

	userModel, ok := user.(*models.User)
	if !ok {
		return nil
	}

	return userModel
}

// RequestIDMiddleware propagates an incoming X-Request-Id or assigns one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, requestID)
		if span := trace.SpanFromContext(c.Request.Context()); span.IsRecording() {
			span.SetAttributes(attribute.String("http.request_id", requestID))
		}
		c.Next()
	}
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		csp := "default-src 'self'; " +
			"script-src 'self' https://unpkg.com; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data:; " +
			"connect-src 'self'; " +
			"form-action 'self'; " +
			"frame-ancestors 'none'"
		c.Writer.Header().Set("Content-Security-Policy", csp)

		c.Next()
	}
}

// ObservabilityMiddleware records request counts and latencies. The route
// template is used as the path label so catch-all navigations do not explode
// label cardinality.
func ObservabilityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "navigation"
		}
		ctx := c.Request.Context()
		m := metrics.Get()
		m.HTTPRequestsTotal.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("method", c.Request.Method),
				attribute.String("route", route),
				attribute.String("status", strconv.Itoa(c.Writer.Status())),
			))
		m.HTTPRequestDuration.Record(ctx, time.Since(start).Seconds(),
			metric.WithAttributes(
				attribute.String("method", c.Request.Method),
				attribute.String("route", route),
			))
	}
}
