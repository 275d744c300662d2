package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-siacom/internal/app/models"
	"github.com/FACorreiaa/go-siacom/internal/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAPIClient(config.APIConfig{BaseURL: srv.URL}, zap.NewNop())
}

func TestAPIClientLogin(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
		assert  func(*testing.T, *TokenResponse)
	}{
		{
			name: "returns token on success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/login", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var body LoginRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "admin", body.Username)
				assert.Equal(t, "secret", body.Password)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"access_token":"abc","token_type":"bearer","user_type":"admin","user_id":7}`))
			},
			assert: func(t *testing.T, tok *TokenResponse) {
				assert.Equal(t, "abc", tok.AccessToken)
				assert.Equal(t, "bearer", tok.TokenType)
				assert.Equal(t, "admin", tok.UserType)
				assert.Equal(t, int64(7), tok.UserID)
			},
		},
		{
			name: "401 is unauthenticated",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"detail":"bad credentials"}`, http.StatusUnauthorized)
			},
			wantErr: models.ErrUnauthenticated,
		},
		{
			name: "5xx is upstream failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: models.ErrUpstream,
		},
		{
			name: "non-json body is malformed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>ok</html>"))
			},
			wantErr: models.ErrMalformedResponse,
		},
		{
			name: "empty token is malformed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"access_token":""}`))
			},
			wantErr: models.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			tok, err := client.Login(context.Background(), "admin", "secret")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tok)
				return
			}
			require.NoError(t, err)
			tt.assert(t, tok)
		})
	}
}

func TestAPIClientFamilyLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/family/login", r.URL.Path)

		var body FamilyLoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "P-1", body.PatientCode)
		assert.Equal(t, "F-9", body.FamilyCode)

		_, _ = w.Write([]byte(`{"access_token":"fam","user_type":"familiar","patient_id":1,"family_id":9}`))
	})

	tok, err := client.FamilyLogin(context.Background(), "P-1", "F-9")
	require.NoError(t, err)
	assert.Equal(t, "fam", tok.AccessToken)
	assert.Equal(t, int64(1), tok.PatientID)
	assert.Equal(t, int64(9), tok.FamilyID)
}

func TestAPIClientTransportErrors(t *testing.T) {
	t.Run("unreachable server", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		client := NewAPIClient(config.APIConfig{BaseURL: url}, nil)
		_, err := client.Login(context.Background(), "a", "b")
		assert.ErrorIs(t, err, models.ErrUpstream)
	})

	t.Run("configured timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		t.Cleanup(srv.Close)
		t.Cleanup(func() { close(release) })

		client := NewAPIClient(config.APIConfig{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, nil)
		_, err := client.Login(context.Background(), "a", "b")
		assert.ErrorIs(t, err, models.ErrUpstream)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, "canceled", failureReason(err))
	})

	t.Run("cancelled request context", func(t *testing.T) {
		called := false
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.Login(ctx, "a", "b")
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrUpstream)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, "canceled", failureReason(err))
		assert.False(t, called)
	})

	t.Run("unreachable server is an upstream error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewAPIClient(config.APIConfig{BaseURL: url}, nil).FamilyLogin(context.Background(), "p", "f")
		assert.Equal(t, "upstream_error", failureReason(err))
	})
}
