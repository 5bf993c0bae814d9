// Package token mints and checks the signed bearer tokens that gate the
// mutation endpoints. Tokens are not persisted; every request is verified
// statelessly against the signature and expiry.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed input, missing subject, or expiry reached.
var ErrInvalidToken = errors.New("invalid token")

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Key        string
	Issuer     string
	ExpireDays int
}

// Claims carried by an issued token. Subject is the account email; UserID is
// the stable identifier assigned by the credential store.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

type Manager struct {
	key        []byte
	issuer     string
	validity   time.Duration
	timeSource func() time.Time
}

func New(cfg Config) *Manager {
	return &Manager{
		key:        []byte(cfg.Key),
		issuer:     cfg.Issuer,
		validity:   time.Duration(cfg.ExpireDays) * 24 * time.Hour,
		timeSource: time.Now,
	}
}

// Issue signs an HS256 token for the subject email with a fresh jti and the
// configured validity window.
func (m *Manager) Issue(email, userID string) (string, error) {
	now := m.timeSource()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.issuer},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.key)
}

// Verify parses and validates a token string. There is no clock-skew
// allowance: a token is rejected from its expiry instant onwards.
func (m *Manager) Verify(raw string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (interface{}, error) { return m.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.timeSource),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
