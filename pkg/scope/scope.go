package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrRevokedToken = errors.New("token has been revoked")
)

// Payload is the request-scoped identity carried by a session token.
type Payload struct {
	UserID string
	Email  string
}

// Manager issues and verifies session tokens.
//
//go:generate mockery --name Manager
type Manager interface {
	IssueToken(payload Payload) (string, error)
	Verify(token string) (Payload, error)
	Revoke(token string)
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// cachedPayload remembers the token's own deadline alongside the identity,
// since the LRU TTL may outlive a token cached near its expiry.
type cachedPayload struct {
	payload   Payload
	expiresAt time.Time
}

type jwtManager struct {
	secret []byte
	ttl    time.Duration

	// cache keeps recently verified tokens so a hot session doesn't pay
	// signature verification on every request. Hits recheck the token
	// expiry stored in the entry.
	cache   *expirable.LRU[string, cachedPayload]
	revoked *expirable.LRU[string, struct{}]
}

const verifyCacheSize = 1024

// NewJWTManager creates a Manager backed by HMAC-SHA256 JWTs.
func NewJWTManager(secret string, ttl time.Duration) Manager {
	cacheTTL := 5 * time.Minute
	if ttl < cacheTTL {
		cacheTTL = ttl
	}
	return &jwtManager{
		secret:  []byte(secret),
		ttl:     ttl,
		cache:   expirable.NewLRU[string, cachedPayload](verifyCacheSize, nil, cacheTTL),
		revoked: expirable.NewLRU[string, struct{}](verifyCacheSize, nil, ttl),
	}
}

func (m *jwtManager) IssueToken(payload Payload) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: payload.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	return token.SignedString(m.secret)
}

func (m *jwtManager) Verify(tokenString string) (Payload, error) {
	if _, isRevoked := m.revoked.Get(tokenString); isRevoked {
		return Payload{}, ErrRevokedToken
	}
	if entry, ok := m.cache.Get(tokenString); ok {
		if time.Now().Before(entry.expiresAt) {
			return entry.payload, nil
		}
		m.cache.Remove(tokenString)
		return Payload{}, ErrInvalidToken
	}

	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || c.Subject == "" || c.ExpiresAt == nil {
		return Payload{}, ErrInvalidToken
	}

	payload := Payload{UserID: c.Subject, Email: c.Email}
	m.cache.Add(tokenString, cachedPayload{payload: payload, expiresAt: c.ExpiresAt.Time})
	return payload, nil
}

func (m *jwtManager) Revoke(tokenString string) {
	m.cache.Remove(tokenString)
	m.revoked.Add(tokenString, struct{}{})
}
