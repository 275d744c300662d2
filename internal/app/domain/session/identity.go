package session

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-siacom/internal/app/models"
	"github.com/FACorreiaa/go-siacom/internal/pkg/cache"
)

// tokenClaims mirrors the payload issued by the SIACOM API for both admin and
// family tokens.
type tokenClaims struct {
	UserID    int64  `json:"user_id,omitempty"`
	UserType  string `json:"user_type,omitempty"`
	PatientID int64  `json:"patient_id,omitempty"`
	FamilyID  int64  `json:"family_id,omitempty"`
	Type      string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// IdentityDecoder reads display details out of a bearer token. Signatures and
// expiry are not checked: the result only decorates the chrome.
type IdentityDecoder struct {
	cache  *cache.TTLCache[*models.User]
	parser *jwt.Parser
	logger *zap.Logger
}

func NewIdentityDecoder(c *cache.TTLCache[*models.User], logger *zap.Logger) *IdentityDecoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IdentityDecoder{cache: c, parser: jwt.NewParser(), logger: logger}
}

// Decode returns the user for st, or nil when st is anonymous or the token is
// not a readable JWT.
func (d *IdentityDecoder) Decode(st State) *models.User {
	if !st.IsAuthenticated() {
		return nil
	}
	if d.cache != nil {
		if u, ok := d.cache.Get(st.Token); ok {
			return u
		}
	}

	claims := &tokenClaims{}
	if _, _, err := d.parser.ParseUnverified(st.Token, claims); err != nil {
		d.logger.Debug("Token is not a readable JWT", zap.String("session", st.Kind.String()), zap.Error(err))
		return nil
	}

	u := userFromClaims(st.Kind, claims)
	if d.cache != nil {
		d.cache.Set(st.Token, u)
	}
	return u
}

func userFromClaims(kind Kind, claims *tokenClaims) *models.User {
	u := &models.User{Name: claims.Subject, Role: claims.UserType}
	if claims.UserID != 0 {
		u.ID = strconv.FormatInt(claims.UserID, 10)
	}
	if kind == Family {
		if claims.FamilyID != 0 {
			u.ID = strconv.FormatInt(claims.FamilyID, 10)
		}
		if claims.PatientID != 0 {
			u.PatientID = strconv.FormatInt(claims.PatientID, 10)
		}
		if u.Role == "" {
			u.Role = "familiar"
		}
	}
	return u
}
