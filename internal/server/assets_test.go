package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupAssets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, SetupAssets(r))

	tests := []struct {
		name       string
		path       string
		wantStatus int
		assert     func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:       "serves the stylesheet",
			path:       "/assets/css/siacom.css",
			wantStatus: http.StatusOK,
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
				assert.Contains(t, w.Body.String(), ".bg-destructive")
			},
		},
		{
			name:       "does not list a directory",
			path:       "/assets/css/",
			wantStatus: http.StatusNotFound,
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.NotContains(t, w.Body.String(), "siacom.css")
			},
		},
		{
			name:       "does not list the root",
			path:       "/assets/",
			wantStatus: http.StatusNotFound,
			assert: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.NotContains(t, w.Body.String(), "css/")
			},
		},
		{
			name:       "missing file",
			path:       "/assets/css/missing.css",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.assert != nil {
				tt.assert(t, w)
			}
		})
	}
}
