package session

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Keys of the two credential entries in the session cookie.
const (
	AdminTokenKey  = "token"
	FamilyTokenKey = "family_token"
)

// CredentialStore persists the admin and family tokens between navigations.
type CredentialStore interface {
	Load(c *gin.Context) Credentials
	SetAdmin(c *gin.Context, token string) error
	SetFamily(c *gin.Context, token string) error
	Clear(c *gin.Context) error
}

// CookieStore keeps credentials in the signed cookie session installed by the
// sessions middleware.
type CookieStore struct {
	logger *zap.Logger
}

func NewCookieStore(logger *zap.Logger) *CookieStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CookieStore{logger: logger}
}

func (s *CookieStore) Load(c *gin.Context) Credentials {
	sess := sessions.Default(c)
	return Credentials{
		AdminToken:  stringValue(sess.Get(AdminTokenKey)),
		FamilyToken: stringValue(sess.Get(FamilyTokenKey)),
	}
}

func (s *CookieStore) SetAdmin(c *gin.Context, token string) error {
	return s.set(c, AdminTokenKey, token)
}

func (s *CookieStore) SetFamily(c *gin.Context, token string) error {
	return s.set(c, FamilyTokenKey, token)
}

// Clear drops both entries in a single write.
func (s *CookieStore) Clear(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Delete(AdminTokenKey)
	sess.Delete(FamilyTokenKey)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	s.logger.Debug("Credentials cleared")
	return nil
}

func (s *CookieStore) set(c *gin.Context, key, token string) error {
	sess := sessions.Default(c)
	sess.Set(key, token)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	s.logger.Debug("Credential stored", zap.String("key", key))
	return nil
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
