package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-siacom/internal/app/domain"
	"github.com/FACorreiaa/go-siacom/internal/app/domain/session"
	"github.com/FACorreiaa/go-siacom/internal/app/models"
	"github.com/FACorreiaa/go-siacom/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-siacom/internal/app/pages"
)

// Notices shown for any failed login, whatever the cause.
const (
	InvalidCredentialsNotice = "Credenciales inválidas"
	InvalidFamilyCodesNotice = "Códigos inválidos"
)

type AuthHandlers struct {
	*domain.BaseHandler
	authenticator Authenticator
	store         session.CredentialStore
}

func NewAuthHandlers(base *domain.BaseHandler, authenticator Authenticator, store session.CredentialStore) *AuthHandlers {
	return &AuthHandlers{
		BaseHandler:   base,
		authenticator: authenticator,
		store:         store,
	}
}

// loginFlow describes one kind of login submission.
type loginFlow struct {
	kind     session.Kind
	page     session.Page
	noticeID string
	notice   string
	landing  string
	submit   func(ctx context.Context) (*TokenResponse, error)
	persist  func(c *gin.Context, token string) error
}

// LoginHandler handles the staff sign-in form. Fields are passed through
// unvalidated; empty values are the API's problem.
func (h *AuthHandlers) LoginHandler(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	h.handle(c, loginFlow{
		kind:     session.Admin,
		page:     session.PageAdminLogin,
		noticeID: pages.LoginNoticeID,
		notice:   InvalidCredentialsNotice,
		landing:  session.PathDashboard,
		submit: func(ctx context.Context) (*TokenResponse, error) {
			return h.authenticator.Login(ctx, username, password)
		},
		persist: h.store.SetAdmin,
	})
}

// FamilyLoginHandler handles the family portal form.
func (h *AuthHandlers) FamilyLoginHandler(c *gin.Context) {
	patientCode := c.PostForm("patient_code")
	familyCode := c.PostForm("family_code")

	h.handle(c, loginFlow{
		kind:     session.Family,
		page:     session.PageFamilyLogin,
		noticeID: pages.FamilyLoginNoticeID,
		notice:   InvalidFamilyCodesNotice,
		landing:  session.PathFamilyDashboard,
		submit: func(ctx context.Context) (*TokenResponse, error) {
			return h.authenticator.FamilyLogin(ctx, patientCode, familyCode)
		},
		persist: h.store.SetFamily,
	})
}

func (h *AuthHandlers) handle(c *gin.Context, flow loginFlow) {
	ctx := c.Request.Context()

	token, err := flow.submit(ctx)
	if err != nil {
		h.Logger.Warn("Login rejected",
			zap.String("session", flow.kind.String()),
			zap.String("remote_addr", c.ClientIP()),
			zap.String("reason", failureReason(err)),
			zap.Error(err),
		)
		recordAuth(ctx, flow.kind, failureReason(err))
		h.renderFailure(c, flow)
		return
	}

	if err := flow.persist(c, token.AccessToken); err != nil {
		h.Logger.Error("Failed to persist credentials", zap.String("session", flow.kind.String()), zap.Error(err))
		recordAuth(ctx, flow.kind, "store_error")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Logger.Info("Successful login",
		zap.String("session", flow.kind.String()),
		zap.String("user_type", token.UserType),
	)
	recordAuth(ctx, flow.kind, "success")
	h.Redirect(c, flow.landing)
}

// renderFailure shows the generic notice. htmx only gets the notice swapped
// into the form; plain posts get the whole login page back.
func (h *AuthHandlers) renderFailure(c *gin.Context, flow loginFlow) {
	if domain.IsHTMX(c) {
		c.Header("HX-Retarget", "#"+flow.noticeID)
		c.Header("HX-Reswap", "innerHTML")
		// htmx ignores error statuses unless configured otherwise.
		h.Render(c, http.StatusOK, pages.LoginNotice(flow.notice))
		return
	}
	d := session.Decision{Action: session.Render, Shell: session.ShellPublic, Page: flow.page}
	h.RenderDecision(c, http.StatusUnauthorized, d, flow.notice)
}

// LogoutHandler drops both credentials and returns to the root path.
func (h *AuthHandlers) LogoutHandler(c *gin.Context) {
	if err := h.store.Clear(c); err != nil {
		h.Logger.Error("Failed to clear credentials", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	h.Logger.Info("Logged out")
	h.Redirect(c, session.PathRoot)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		return "rejected"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, models.ErrMalformedResponse):
		return "malformed_response"
	default:
		return "upstream_error"
	}
}

func recordAuth(ctx context.Context, kind session.Kind, outcome string) {
	metrics.Get().AuthRequestsTotal.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("session", kind.String()),
			attribute.String("outcome", outcome),
		))
}
