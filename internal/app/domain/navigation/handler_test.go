package navigation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-siacom/internal/app/domain"
	"github.com/FACorreiaa/go-siacom/internal/app/domain/session"
	"github.com/FACorreiaa/go-siacom/internal/app/middleware"
)

func newRouter(st session.State) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(string(middleware.SessionStateKey), st)
		c.Next()
	})
	h := NewHandler(domain.NewBaseHandler(zap.NewNop()))
	r.NoRoute(h.Navigate)
	return r
}

func navigate(t *testing.T, r http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parse(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return doc
}

func TestNavigateAnonymous(t *testing.T) {
	r := newRouter(session.AnonymousState())

	for _, p := range []string{"/", "/dashboard", "/pacientes", "/nope"} {
		w := navigate(t, r, http.MethodGet, p, nil)
		require.Equal(t, http.StatusOK, w.Code, p)
		doc := parse(t, w)
		assert.Equal(t, 1, doc.Find("form#login-form").Length(), p)
		assert.Equal(t, 0, doc.Find("#sidebar").Length(), p)
	}

	w := navigate(t, r, http.MethodGet, "/family/login", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, parse(t, w).Find("form#family-login-form").Length())
}

func TestNavigateAdmin(t *testing.T) {
	r := newRouter(session.AdminState("tok"))

	w := navigate(t, r, http.MethodGet, "/cirugias", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc := parse(t, w)
	assert.Equal(t, 1, doc.Find("#sidebar").Length())
	assert.Equal(t, 1, doc.Find(`section[data-page="surgeries"]`).Length())
	assert.Equal(t, "/cirugias", doc.Find(`#sidebar a[aria-current="page"]`).AttrOr("href", ""))

	w = navigate(t, r, http.MethodGet, "/unknown", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, parse(t, w).Find(`section[data-page="dashboard"]`).Length())
}

func TestNavigateFamilyRedirects(t *testing.T) {
	r := newRouter(session.FamilyState("fam"))

	w := navigate(t, r, http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/family/dashboard", w.Header().Get("Location"))

	w = navigate(t, r, http.MethodGet, "/dashboard", map[string]string{"HX-Request": "true"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/family/dashboard", w.Header().Get("HX-Redirect"))
	assert.Empty(t, w.Body.String())

	w = navigate(t, r, http.MethodGet, "/family/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, parse(t, w).Find("#sidebar").Length())
}

func TestNavigateLandingForEveryState(t *testing.T) {
	for _, st := range []session.State{session.AnonymousState(), session.AdminState("a"), session.FamilyState("f")} {
		w := navigate(t, newRouter(st), http.MethodGet, "/home", nil)
		require.Equal(t, http.StatusOK, w.Code, st.Kind.String())
		assert.Equal(t, 1, parse(t, w).Find("a#family-access").Length(), st.Kind.String())
	}
}

func TestNavigateRejectsOtherMethods(t *testing.T) {
	r := newRouter(session.AdminState("tok"))

	w := navigate(t, r, http.MethodPut, "/dashboard", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))

	w = navigate(t, r, http.MethodHead, "/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
