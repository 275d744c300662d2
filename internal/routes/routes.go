package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-siacom/internal/app/domain"
	"github.com/FACorreiaa/go-siacom/internal/app/domain/auth"
	"github.com/FACorreiaa/go-siacom/internal/app/domain/navigation"
	"github.com/FACorreiaa/go-siacom/internal/app/domain/session"
	"github.com/FACorreiaa/go-siacom/internal/app/middleware"
	"github.com/FACorreiaa/go-siacom/internal/app/models"
	"github.com/FACorreiaa/go-siacom/internal/pkg/cache"
	"github.com/FACorreiaa/go-siacom/internal/pkg/config"
)

// identityTTL bounds how long a decoded token identity is reused.
const identityTTL = 5 * time.Minute

type AppHandlers struct {
	Navigation *navigation.Handler
	Auth       *auth.AuthHandlers
}

// Dependencies are the collaborators the handlers are built from.
type Dependencies struct {
	Authenticator auth.Authenticator
	Store         session.CredentialStore
	Identities    *session.IdentityDecoder
}

// Setup wires the production dependencies and registers every route.
// The cookie session middleware must already be installed on r.
func Setup(r *gin.Engine, cfg *config.Config, log *zap.Logger) {
	deps := Dependencies{
		Authenticator: auth.NewAPIClient(cfg.API, log),
		Store:         session.NewCookieStore(log),
		Identities: session.NewIdentityDecoder(
			cache.NewTTLCache[*models.User](identityTTL, "identities", log),
			log,
		),
	}
	Register(r, deps, log)
}

// Register attaches handlers built from deps to r.
func Register(r *gin.Engine, deps Dependencies, log *zap.Logger) {
	baseHandler := domain.NewBaseHandler(log)
	h := &AppHandlers{
		Navigation: navigation.NewHandler(baseHandler),
		Auth:       auth.NewAuthHandlers(baseHandler, deps.Authenticator, deps.Store),
	}
	setupRouter(r, h, deps)
}

func setupRouter(r *gin.Engine, h *AppHandlers, deps Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.Use(middleware.SessionMiddleware(deps.Store, deps.Identities))

	r.POST("/login", h.Auth.LoginHandler)
	r.POST("/family/login", h.Auth.FamilyLoginHandler)
	r.POST("/logout", h.Auth.LogoutHandler)

	// Every other navigation goes through the session resolver.
	r.NoRoute(h.Navigation.Navigate)
}
