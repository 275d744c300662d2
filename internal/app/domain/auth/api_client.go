package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-siacom/internal/app/models"
	"github.com/FACorreiaa/go-siacom/internal/pkg/config"
)

// LoginRequest is the admin credential payload of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// FamilyLoginRequest is the payload of POST /family/login.
type FamilyLoginRequest struct {
	PatientCode string `json:"patient_code"`
	FamilyCode  string `json:"family_code"`
}

// TokenResponse covers both login responses. Only AccessToken is required.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	UserType    string `json:"user_type,omitempty"`
	UserID      int64  `json:"user_id,omitempty"`
	PatientID   int64  `json:"patient_id,omitempty"`
	FamilyID    int64  `json:"family_id,omitempty"`
}

// Authenticator exchanges credentials for bearer tokens.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*TokenResponse, error)
	FamilyLogin(ctx context.Context, patientCode, familyCode string) (*TokenResponse, error)
}

// APIClient talks to the SIACOM authentication API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAPIClient builds a client for cfg. A zero cfg.Timeout leaves the request
// bounded only by the caller's context.
func NewAPIClient(cfg config.APIConfig, logger *zap.Logger) *APIClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// SetHTTPClient sets a custom HTTP client
func (c *APIClient) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

func (c *APIClient) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	return c.post(ctx, "/login", LoginRequest{Username: username, Password: password})
}

func (c *APIClient) FamilyLogin(ctx context.Context, patientCode, familyCode string) (*TokenResponse, error) {
	return c.post(ctx, "/family/login", FamilyLoginRequest{PatientCode: patientCode, FamilyCode: familyCode})
}

func (c *APIClient) post(ctx context.Context, endpoint string, body any) (*TokenResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", models.ErrUpstream, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a bounded amount so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, fmt.Errorf("%w: %s returned %d", models.ErrUnauthenticated, endpoint, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %s returned %d", models.ErrUpstream, endpoint, resp.StatusCode)
	}

	var token TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", models.ErrMalformedResponse, endpoint, err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: %s: missing access_token", models.ErrMalformedResponse, endpoint)
	}

	c.logger.Debug("Token issued", zap.String("endpoint", endpoint), zap.String("user_type", token.UserType))
	return &token, nil
}
