package sessions

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName carries the signed session id.
const CookieName = "hackhub_session"

// Manager issues and verifies the signed session-id cookie and fronts
// the configured Store.
type Manager struct {
	Store  Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{Store: store, secret: []byte(secret), ttl: ttl}
}

func (m *Manager) TTL() time.Duration { return m.ttl }

type sidClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// NewSession mints a fresh session with a random id. It is not
// persisted until Save.
func (m *Manager) NewSession() *Session {
	return &Session{ID: uuid.NewString(), dirty: true}
}

// SignID wraps a session id in an HS256 token for the cookie value.
func (m *Manager) SignID(id string) (string, error) {
	claims := sidClaims{
		SID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyID extracts the session id from a cookie value. Any forgery,
// expiry or malformed input is reported as an error; callers fall back
// to a fresh session.
func (m *Manager) VerifyID(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sidClaims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*sidClaims)
	if !ok || !token.Valid || claims.SID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.SID, nil
}
